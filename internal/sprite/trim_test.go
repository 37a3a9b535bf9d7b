package sprite

import (
	"strings"
	"testing"
)

func TestTrimLongLine(t *testing.T) {
	line := strings.Repeat("x", 20)

	if got := TrimEnd(line, 12); got != strings.Repeat("x", 12) {
		t.Errorf("TrimEnd(20 x, 12) = %q, want 12 x", got)
	}
	if got := TrimStart(line, 12); got != strings.Repeat("x", 12) {
		t.Errorf("TrimStart(20 x, 12) = %q, want 12 x", got)
	}
}

func TestTrimKeepsCorrectEnd(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string, int) string
		in    string
		width int
		want  string
	}{
		{"end keeps head", TrimEnd, "abcdefghij", 4, "abcd"},
		{"start keeps tail", TrimStart, "abcdefghij", 4, "ghij"},
		{"end exact fit", TrimEnd, "abcd", 4, "abcd"},
		{"start exact fit", TrimStart, "abcd", 4, "abcd"},
		{"end shorter", TrimEnd, "ab", 4, "ab"},
		{"start shorter", TrimStart, "ab", 4, "ab"},
		{"end zero width", TrimEnd, "abc", 0, ""},
		{"start negative width", TrimStart, "abc", -3, ""},
		{"end empty", TrimEnd, "", 5, ""},
	}

	for _, tt := range tests {
		got := tt.fn(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTrimMultiLine(t *testing.T) {
	in := "0123456789\nab\nABCDEFGHIJ"

	end := strings.Split(TrimEnd(in, 5), "\n")
	wantEnd := []string{"01234", "ab", "ABCDE"}
	if len(end) != len(wantEnd) {
		t.Fatalf("TrimEnd line count = %d, want %d", len(end), len(wantEnd))
	}
	for i := range wantEnd {
		if end[i] != wantEnd[i] {
			t.Errorf("TrimEnd line %d = %q, want %q", i, end[i], wantEnd[i])
		}
	}

	start := strings.Split(TrimStart(in, 5), "\n")
	wantStart := []string{"56789", "ab", "FGHIJ"}
	if len(start) != len(wantStart) {
		t.Fatalf("TrimStart line count = %d, want %d", len(start), len(wantStart))
	}
	for i := range wantStart {
		if start[i] != wantStart[i] {
			t.Errorf("TrimStart line %d = %q, want %q", i, start[i], wantStart[i])
		}
	}
}

func TestTrimMultiByte(t *testing.T) {
	// U+203E is narrow; it must count as one cell and never be split.
	line := "/_)‾\\_)"
	if got := TrimEnd(line, 4); got != "/_)‾" {
		t.Errorf("TrimEnd(%q, 4) = %q, want %q", line, got, "/_)‾")
	}
	if got := TrimStart(line, 4); got != "‾\\_)" {
		t.Errorf("TrimStart(%q, 4) = %q, want %q", line, got, "‾\\_)")
	}

	// A wide rune that would straddle the cut is dropped whole.
	wide := "a💩b"
	if got := TrimEnd(wide, 2); got != "a" {
		t.Errorf("TrimEnd(%q, 2) = %q, want %q", wide, got, "a")
	}
	if got := TrimStart(wide, 2); got != "b" {
		t.Errorf("TrimStart(%q, 2) = %q, want %q", wide, got, "b")
	}
}
