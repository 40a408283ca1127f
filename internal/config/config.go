// Package config loads the YAML configuration file of the md2html command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file too large")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-md2html"

// MaxConfigSize limits config files to prevent memory exhaustion (1MB).
const MaxConfigSize = 1 << 20

// Field length limits.
const (
	MaxTitleLength         = 200
	MaxPathLength          = 4096
	MaxURLLength           = 2048 // Browser limit
	MaxExtensionNameLength = 64
	MaxStyleNameLength     = 64
)

// Config holds the settings a config file may provide. Zero values mean
// "not set" so that command-line flags and library defaults apply.
type Config struct {
	Standalone *bool            `yaml:"standalone"` // nil = default (true)
	Title      string           `yaml:"title"`
	Sanitize   bool             `yaml:"sanitize"`
	CSS        CSSConfig        `yaml:"css"`
	Assets     AssetsConfig     `yaml:"assets"`
	Extensions ExtensionsConfig `yaml:"extensions"`
	Scripts    ScriptsConfig    `yaml:"scripts"`
}

// CSSConfig selects the stylesheets embedded in standalone pages.
type CSSConfig struct {
	Theme          string `yaml:"theme"`          // theme stylesheet path
	Highlight      string `yaml:"highlight"`      // highlight stylesheet path
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name, used when Highlight is empty
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ExtensionsConfig adjusts the Markdown extension set.
type ExtensionsConfig struct {
	Enable  []string                  `yaml:"enable"`
	Disable []string                  `yaml:"disable"`
	Options map[string]map[string]any `yaml:"options"` // extension name -> option overrides
}

// ScriptsConfig overrides client-side script locations.
type ScriptsConfig struct {
	MermaidURL string `yaml:"mermaidURL"`
	MathJaxURL string `yaml:"mathjaxURL"`
}

// DefaultConfig returns a configuration with nothing set.
func DefaultConfig() *Config {
	return &Config{}
}

// StandaloneOr returns the configured standalone mode, or fallback when unset.
func (c *Config) StandaloneOr(fallback bool) bool {
	if c.Standalone == nil {
		return fallback
	}
	return *c.Standalone
}

// Validate checks field lengths and extension lists.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"title", c.Title, MaxTitleLength},
		{"css.theme", c.CSS.Theme, MaxPathLength},
		{"css.highlight", c.CSS.Highlight, MaxPathLength},
		{"css.highlightStyle", c.CSS.HighlightStyle, MaxStyleNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"scripts.mermaidURL", c.Scripts.MermaidURL, MaxURLLength},
		{"scripts.mathjaxURL", c.Scripts.MathJaxURL, MaxURLLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if err := validateNames("extensions.enable", c.Extensions.Enable); err != nil {
		return err
	}
	if err := validateNames("extensions.disable", c.Extensions.Disable); err != nil {
		return err
	}
	for _, name := range c.Extensions.Enable {
		for _, disabled := range c.Extensions.Disable {
			if name == disabled {
				return fmt.Errorf("%w: extension %q is both enabled and disabled", ErrInvalidField, name)
			}
		}
	}
	for name := range c.Extensions.Options {
		if err := validateNames("extensions.options", []string{name}); err != nil {
			return err
		}
	}
	return nil
}

func validateNames(field string, names []string) error {
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidField, field, i)
		}
		if err := validateFieldLength(fmt.Sprintf("%s[%d]", field, i), name, MaxExtensionNameLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or a YAML extension, it's treated
// as a file path. Otherwise, it's searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data. Unknown fields are rejected.
// Empty data yields the default configuration.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsFilePath reports whether s is used as a path rather than a config name.
func IsFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// current directory, then <user config dir>/go-md2html/, .yaml before .yml.
func SearchPaths(name string) []string {
	dirs := []string{"."}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, AppDirName))
	}

	var paths []string
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, candidate := range tried {
		if fileutil.FileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
