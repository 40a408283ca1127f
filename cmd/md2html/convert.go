package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
)

// runConvert orchestrates one conversion.
func runConvert(flags *cliFlags, env *Environment) error {
	if err := flags.validateRequired(); err != nil {
		return err
	}
	standalone, standaloneSet, err := flags.standaloneValue()
	if err != nil {
		return err
	}

	warnUnknownEnvVars(env.Environ(), env.Stderr)
	envCfg := loadEnvConfig(env.Getenv)

	// Load configuration
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Merge environment and CLI flags into config (CLI wins)
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if standaloneSet {
		cfg.Standalone = &standalone
	}

	conv, err := md2html.NewConverter(converterOptions(cfg)...)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Extensions: %v\n", conv.Extensions())
	}

	start := env.Now()
	if err := conv.ConvertFromFile(flags.input, flags.output, streamOptions(cfg)); err != nil {
		return err
	}

	printResult(flags, env.Now().Sub(start), env)
	return nil
}

// loadConfig loads the config named by the flag, or by MD2HTML_CONFIG when
// the flag is empty. Without either, the default config is returned.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags merges CLI flags into config. CLI values override config values;
// extension lists are appended.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.title != "" {
		cfg.Title = flags.title
	}
	if flags.sanitize {
		cfg.Sanitize = true
	}
	if flags.styles.themeCSS != "" {
		cfg.CSS.Theme = flags.styles.themeCSS
	}
	if flags.styles.highlightCSS != "" {
		cfg.CSS.Highlight = flags.styles.highlightCSS
	}
	if flags.styles.highlightStyle != "" {
		cfg.CSS.HighlightStyle = flags.styles.highlightStyle
	}
	if flags.styles.assetPath != "" {
		cfg.Assets.BasePath = flags.styles.assetPath
	}

	// An extension named on the command line leaves the opposite config list.
	for _, name := range flags.extensions.enable {
		cfg.Extensions.Disable = slices.DeleteFunc(cfg.Extensions.Disable, func(s string) bool { return s == name })
	}
	for _, name := range flags.extensions.disable {
		cfg.Extensions.Enable = slices.DeleteFunc(cfg.Extensions.Enable, func(s string) bool { return s == name })
	}
	cfg.Extensions.Enable = append(cfg.Extensions.Enable, flags.extensions.enable...)
	cfg.Extensions.Disable = append(cfg.Extensions.Disable, flags.extensions.disable...)
}

// converterOptions translates config into Converter options.
func converterOptions(cfg *config.Config) []md2html.Option {
	opts := []md2html.Option{
		md2html.WithExtensions(cfg.Extensions.Enable...),
		md2html.WithoutExtensions(cfg.Extensions.Disable...),
		md2html.WithTitle(cfg.Title),
		md2html.WithSanitize(cfg.Sanitize),
		md2html.WithAssetPath(cfg.Assets.BasePath),
		md2html.WithScriptURLs(cfg.Scripts.MermaidURL, cfg.Scripts.MathJaxURL),
	}
	for name, values := range cfg.Extensions.Options {
		opts = append(opts, md2html.WithExtensionConfig(name, md2html.Options(values)))
	}
	return opts
}

// streamOptions translates config into per-conversion options.
func streamOptions(cfg *config.Config) md2html.StreamOptions {
	return md2html.StreamOptions{
		Standalone:       cfg.StandaloneOr(true),
		ThemeCSSPath:     cfg.CSS.Theme,
		HighlightCSSPath: cfg.CSS.Highlight,
		HighlightStyle:   cfg.CSS.HighlightStyle,
	}
}

// printResult reports a successful conversion. Nothing is printed in quiet
// mode or when the page went to stdout.
func printResult(flags *cliFlags, elapsed time.Duration, env *Environment) {
	if flags.common.quiet || flags.output == md2html.StdioPath {
		return
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", flags.input, flags.output, elapsed.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *cliFlags, env *Environment) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		name := flags.common.config
		if name == "" {
			name = env.Getenv("MD2HTML_CONFIG")
		}
		var searched []string
		if !config.IsFilePath(name) {
			searched = config.SearchPaths(name)
		}
		return hints.ForConfigNotFound(searched, config.AppDirName)
	case errors.Is(err, md2html.ErrUnknownExtension):
		if name := firstUnknownExtension(flags); name != "" {
			return hints.ForUnknownName(name, md2html.AvailableExtensions())
		}
	case errors.Is(err, md2html.ErrStyleNotFound) && flags.styles.highlightStyle != "":
		return hints.ForUnknownName(flags.styles.highlightStyle, md2html.HighlightStyles())
	case errors.Is(err, md2html.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// firstUnknownExtension returns the first extension named on the command
// line that does not exist.
func firstUnknownExtension(flags *cliFlags) string {
	available := md2html.AvailableExtensions()
	for _, name := range slices.Concat(flags.extensions.enable, flags.extensions.disable) {
		if !slices.Contains(available, name) {
			return name
		}
	}
	return ""
}
