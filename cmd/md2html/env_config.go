package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envPrefix starts every variable read by md2html.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // MD2HTML_CONFIG: config file name or path
	AssetPath      string // MD2HTML_ASSET_PATH: custom asset directory
	HighlightStyle string // MD2HTML_HIGHLIGHT_STYLE: chroma style name
	MermaidURL     string // MD2HTML_MERMAID_URL: Mermaid script location
	MathJaxURL     string // MD2HTML_MATHJAX_URL: MathJax script location
}

// knownEnvVars lists valid MD2HTML_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":          true,
	"MD2HTML_ASSET_PATH":      true,
	"MD2HTML_HIGHLIGHT_STYLE": true,
	"MD2HTML_MERMAID_URL":     true,
	"MD2HTML_MATHJAX_URL":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath:     getenv("MD2HTML_CONFIG"),
		AssetPath:      getenv("MD2HTML_ASSET_PATH"),
		HighlightStyle: getenv("MD2HTML_HIGHLIGHT_STYLE"),
		MermaidURL:     getenv("MD2HTML_MERMAID_URL"),
		MathJaxURL:     getenv("MD2HTML_MATHJAX_URL"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config values with the variables that are set.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.HighlightStyle != "" {
		cfg.CSS.HighlightStyle = env.HighlightStyle
	}
	if env.MermaidURL != "" {
		cfg.Scripts.MermaidURL = env.MermaidURL
	}
	if env.MathJaxURL != "" {
		cfg.Scripts.MathJaxURL = env.MathJaxURL
	}
}
