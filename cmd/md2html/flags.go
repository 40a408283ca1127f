package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for command-line parsing.
var (
	ErrMissingFlag = errors.New("missing required flag")
	ErrInvalidFlag = errors.New("invalid flag")
)

// commonFlags holds flags shared by every invocation.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	help    bool
	version bool
}

// styleFlags holds stylesheet selection flags.
type styleFlags struct {
	standalone     string // "true" or "false"; parsed by standaloneValue
	themeCSS       string
	highlightCSS   string
	highlightStyle string
	assetPath      string
}

// extensionFlags holds extension selection flags.
type extensionFlags struct {
	enable  []string
	disable []string
}

// cliFlags holds all flags of one invocation.
type cliFlags struct {
	common     commonFlags
	input      string
	output     string
	title      string
	sanitize   bool
	styles     styleFlags
	extensions extensionFlags

	changed map[string]bool // flags set on the command line
}

// normalizeFlagName makes "_" and "-" interchangeable in flag names.
func normalizeFlagName(_ *flag.FlagSet, name string) flag.NormalizedName {
	return flag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.standalone, "standalone", "true", "embed stylesheets in the page: true, false")
	fs.StringVar(&f.themeCSS, "theme-css", "", "theme stylesheet path")
	fs.StringVar(&f.highlightCSS, "highlight-css", "", "highlight stylesheet path")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "generate highlight CSS from a chroma style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addExtensionFlags adds extension selection flags to a FlagSet.
func addExtensionFlags(fs *flag.FlagSet, f *extensionFlags) {
	fs.StringArrayVarP(&f.enable, "extension", "e", nil, "enable an extension (repeatable)")
	fs.StringArrayVar(&f.disable, "disable-extension", nil, "disable an extension (repeatable)")
}

// parseFlags parses command-line arguments (without the program name).
// A fresh FlagSet is built per call, so no state leaks between invocations.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetNormalizeFunc(normalizeFlagName)

	f := &cliFlags{changed: make(map[string]bool)}

	// I/O flags
	fs.StringVarP(&f.input, "input", "i", "", "markdown file, or - for stdin")
	fs.StringVarP(&f.output, "output", "o", "", "HTML file, or - for stdout")
	fs.StringVar(&f.title, "title", "", "page title (overrides front matter)")
	fs.BoolVar(&f.sanitize, "sanitize", false, "strip unsafe HTML from the body")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.styles)
	addExtensionFlags(fs, &f.extensions)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlag, fs.Arg(0))
	}
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	return f, nil
}

// validateRequired checks that input and output were given.
func (f *cliFlags) validateRequired() error {
	var missing []string
	if f.input == "" {
		missing = append(missing, "--input")
	}
	if f.output == "" {
		missing = append(missing, "--output")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFlag, strings.Join(missing, ", "))
	}
	return nil
}

// standaloneValue parses --standalone. The second result reports whether
// the flag was given on the command line.
func (f *cliFlags) standaloneValue() (value, set bool, err error) {
	v, err := strconv.ParseBool(strings.TrimSpace(f.styles.standalone))
	if err != nil {
		return false, false, fmt.Errorf("%w: --standalone must be true or false, got %q", ErrInvalidFlag, f.styles.standalone)
	}
	return v, f.changed["standalone"], nil
}
