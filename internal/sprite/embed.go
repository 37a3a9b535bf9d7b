// Package sprite provides the embedded ASCII art and helpers for clipping it.
package sprite

import "embed"

// artFS embeds all sprite art from the art directory at build time.
//
//go:embed art/*.txt
var artFS embed.FS
