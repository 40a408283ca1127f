package md2html

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{name: "monokai", style: "monokai"},
		{name: "case insensitive", style: "GitHub"},
		{name: "surrounding spaces", style: " dracula "},
		{name: "unknown style", style: "no-such-style", wantErr: ErrStyleNotFound},
		{name: "empty", style: "", wantErr: ErrStyleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := HighlightCSS(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("HighlightCSS(%q) error: %v", tt.style, err)
			}
			if !strings.Contains(css, ".chroma") {
				t.Errorf("CSS should target .chroma, got: %.200s", css)
			}
		})
	}
}

func TestHighlightStyles(t *testing.T) {
	t.Parallel()

	names := HighlightStyles()
	for _, want := range []string{"monokai", "github"} {
		if !slices.Contains(names, want) {
			t.Errorf("HighlightStyles() missing %q", want)
		}
	}
}
