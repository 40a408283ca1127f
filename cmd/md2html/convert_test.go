package main

// Notes:
// - mergeFlags: we test that CLI values override config values and that
//   extension lists move between enable and disable.
// - streamOptions/converterOptions: we test the translation of config into
//   library options through a real Converter.
// - hintFor: we test that each error class gets the matching hint.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI overrides config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("CLI values win", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Title = "Config"
		cfg.CSS.Theme = "config.css"
		cfg.CSS.HighlightStyle = "dracula"

		flags := &cliFlags{title: "Flag", sanitize: true}
		flags.styles.themeCSS = "flag.css"
		flags.styles.highlightStyle = "monokai"
		flags.styles.assetPath = "/assets"

		mergeFlags(flags, cfg)

		if cfg.Title != "Flag" {
			t.Errorf("Title = %q, want Flag", cfg.Title)
		}
		if !cfg.Sanitize {
			t.Error("Sanitize = false, want true")
		}
		if cfg.CSS.Theme != "flag.css" {
			t.Errorf("CSS.Theme = %q, want flag.css", cfg.CSS.Theme)
		}
		if cfg.CSS.HighlightStyle != "monokai" {
			t.Errorf("CSS.HighlightStyle = %q, want monokai", cfg.CSS.HighlightStyle)
		}
		if cfg.Assets.BasePath != "/assets" {
			t.Errorf("Assets.BasePath = %q, want /assets", cfg.Assets.BasePath)
		}
	})

	t.Run("empty flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Title = "Config"
		cfg.CSS.Highlight = "h.css"

		mergeFlags(&cliFlags{}, cfg)

		if cfg.Title != "Config" {
			t.Errorf("Title = %q, want Config", cfg.Title)
		}
		if cfg.CSS.Highlight != "h.css" {
			t.Errorf("CSS.Highlight = %q, want h.css", cfg.CSS.Highlight)
		}
	})

	t.Run("extension lists", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Extensions.Enable = []string{"emoji", "linkify"}
		cfg.Extensions.Disable = []string{"math"}

		flags := &cliFlags{}
		flags.extensions.enable = []string{"math"}
		flags.extensions.disable = []string{"emoji"}

		mergeFlags(flags, cfg)

		if want := []string{"linkify", "math"}; !slices.Equal(cfg.Extensions.Enable, want) {
			t.Errorf("Enable = %v, want %v", cfg.Extensions.Enable, want)
		}
		if want := []string{"emoji"}; !slices.Equal(cfg.Extensions.Disable, want) {
			t.Errorf("Disable = %v, want %v", cfg.Extensions.Disable, want)
		}
	})
}

// ---------------------------------------------------------------------------
// TestStreamOptions - Config to stream options
// ---------------------------------------------------------------------------

func TestStreamOptions(t *testing.T) {
	t.Parallel()

	off := false
	tests := []struct {
		name string
		cfg  *config.Config
		want md2html.StreamOptions
	}{
		{
			name: "defaults",
			cfg:  config.DefaultConfig(),
			want: md2html.StreamOptions{Standalone: true},
		},
		{
			name: "all set",
			cfg: &config.Config{
				Standalone: &off,
				CSS:        config.CSSConfig{Theme: "t.css", Highlight: "h.css", HighlightStyle: "monokai"},
			},
			want: md2html.StreamOptions{ThemeCSSPath: "t.css", HighlightCSSPath: "h.css", HighlightStyle: "monokai"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := streamOptions(tt.cfg); got != tt.want {
				t.Errorf("streamOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConverterOptions - Config to converter options
// ---------------------------------------------------------------------------

func TestConverterOptions(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Extensions.Enable = []string{"emoji"}
	cfg.Extensions.Disable = []string{"mermaid"}
	cfg.Extensions.Options = map[string]map[string]any{
		"toc": {"title": "Contents"},
	}

	conv, err := md2html.NewConverter(converterOptions(cfg)...)
	if err != nil {
		t.Fatalf("NewConverter() error: %v", err)
	}

	exts := conv.Extensions()
	if !slices.Contains(exts, "emoji") {
		t.Errorf("Extensions() = %v, want emoji enabled", exts)
	}
	if slices.Contains(exts, "mermaid") {
		t.Errorf("Extensions() = %v, want mermaid disabled", exts)
	}
	if got := conv.ExtensionConfigs()["toc"]["title"]; got != "Contents" {
		t.Errorf("toc title = %v, want Contents", got)
	}
}

func TestConverterOptions_InvalidOption(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Extensions.Options = map[string]map[string]any{
		"toc": {"nope": true},
	}

	_, err := md2html.NewConverter(converterOptions(cfg)...)
	if !errors.Is(err, md2html.ErrInvalidOption) {
		t.Errorf("NewConverter() error = %v, want ErrInvalidOption", err)
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Actionable hints
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		flags func() *cliFlags
		want  string
	}{
		{
			name:  "write output",
			err:   fmt.Errorf("%w: boom", md2html.ErrWriteOutput),
			flags: func() *cliFlags { return &cliFlags{} },
			want:  "check parent directory",
		},
		{
			name: "unknown extension",
			err:  fmt.Errorf("%w: %q", md2html.ErrUnknownExtension, "tabels"),
			flags: func() *cliFlags {
				f := &cliFlags{}
				f.extensions.enable = []string{"tabels"}
				return f
			},
			want: `did you mean "tables"?`,
		},
		{
			name: "unknown highlight style",
			err:  fmt.Errorf("%w: highlight style %q", md2html.ErrStyleNotFound, "draculla"),
			flags: func() *cliFlags {
				f := &cliFlags{}
				f.styles.highlightStyle = "draculla"
				return f
			},
			want: `did you mean "dracula"?`,
		},
		{
			name: "config path",
			err:  config.ErrConfigNotFound,
			flags: func() *cliFlags {
				f := &cliFlags{}
				f.common.config = "/etc/md2html.yaml"
				return f
			},
			want: "use --config",
		},
		{
			name:  "no hint",
			err:   errors.New("other"),
			flags: func() *cliFlags { return &cliFlags{} },
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := testEnv(nil)
			got := hintFor(tt.err, tt.flags(), env)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFirstUnknownExtension
// ---------------------------------------------------------------------------

func TestFirstUnknownExtension(t *testing.T) {
	t.Parallel()

	f := &cliFlags{}
	f.extensions.enable = []string{"emoji"}
	f.extensions.disable = []string{"mathh", "zzz"}

	if got := firstUnknownExtension(f); got != "mathh" {
		t.Errorf("firstUnknownExtension() = %q, want mathh", got)
	}
}
