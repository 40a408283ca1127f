package md2html

import (
	"errors"
	"testing"
)

func TestNewAssetLoader(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		loader, err := NewAssetLoader("")
		if err != nil {
			t.Fatalf("NewAssetLoader() error: %v", err)
		}
		for _, name := range []string{ThemeStyle, HighlightStyle} {
			css, err := loader.LoadStyle(name)
			if err != nil || css == "" {
				t.Errorf("LoadStyle(%q) = %d bytes, err %v", name, len(css), err)
			}
		}
		if _, err := loader.LoadTemplate(PageTemplate); err != nil {
			t.Errorf("LoadTemplate() error: %v", err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "styles/theme.css", "custom")

		loader, err := NewAssetLoader(dir)
		if err != nil {
			t.Fatalf("NewAssetLoader() error: %v", err)
		}
		if css, _ := loader.LoadStyle(ThemeStyle); css != "custom" {
			t.Errorf("LoadStyle(theme) = %q, want custom", css)
		}
		if css, err := loader.LoadStyle(HighlightStyle); err != nil || css == "" {
			t.Errorf("LoadStyle(highlight) should fall back to embedded, err %v", err)
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetLoader("/nonexistent/path/to/assets")
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("error = %v, want ErrInvalidAssetPath", err)
		}
	})
}

func TestAssetLoader_Errors(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader() error: %v", err)
	}

	tests := []struct {
		name    string
		load    func(string) (string, error)
		asset   string
		wantErr error
	}{
		{"missing style", loader.LoadStyle, "nonexistent", ErrStyleNotFound},
		{"missing template", loader.LoadTemplate, "nonexistent", ErrTemplateNotFound},
		{"invalid name", loader.LoadStyle, "../etc/passwd", ErrStyleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.load(tt.asset)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
