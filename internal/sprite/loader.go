package sprite

import (
	"fmt"
	"path"

	"github.com/gdamore/tcell/v2"
)

// Load reads and parses a sprite from the embedded art directory.
func Load(name string) (Sprite, error) {
	content, err := artFS.ReadFile(path.Join("art", name+".txt"))
	if err != nil {
		return Sprite{}, fmt.Errorf("failed to read embedded sprite %s: %w", name, err)
	}

	s := Parse(string(content))
	if s.Height == 0 {
		return Sprite{}, fmt.Errorf("sprite %s is empty", name)
	}
	s.Name = name
	return s, nil
}

// MustLoad reads a sprite, panicking on error.
// Use this for art that must be present for the program to function.
func MustLoad(name string) Sprite {
	s, err := Load(name)
	if err != nil {
		panic(err)
	}
	return s
}

// MustLoadStyled is MustLoad with a display style attached.
func MustLoadStyled(name string, style tcell.Style) Sprite {
	s := MustLoad(name)
	s.Style = style
	return s
}
