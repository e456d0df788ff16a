package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// imageFlags holds raster output flags. Zero values defer to the config.
type imageFlags struct {
	format  string
	quality int
	width   int
	height  int
	scale   float64
}

// assetFlags holds styling and asset flags.
type assetFlags struct {
	style     string // Style name, CSS file path, or CSS content
	assetPath string // Override asset directory
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // Output HTML alongside the image
	htmlOnly bool // Output HTML only, skip rasterization
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common     commonFlags
	output     string
	workers    int
	timeout    string
	theme      string
	title      string
	icons      string
	markdown   bool
	autoFormat bool
	lexicon    string
	image      imageFlags
	assets     assetFlags
	outputMode outputFlags
	changed    map[string]bool // flags set on the command line
}

// formatFlags holds flags for the format command.
type formatFlags struct {
	output    string
	lexicon   string
	assetPath string
	noHeaders bool
	noBold    bool
	noLists   bool
	noSteps   bool
	noInfo    bool
}

// tableFlags holds flags for the table command.
type tableFlags struct {
	output    string
	cols      int
	rows      int
	header    bool
	from      string
	sep       string
	align     bool
	lexicon   string
	assetPath string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addImageFlags adds raster output flags to a FlagSet.
func addImageFlags(fs *flag.FlagSet, f *imageFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "image format: png, jpeg")
	fs.IntVar(&f.quality, "quality", 0, "JPEG quality (1-100)")
	fs.IntVar(&f.width, "width", 0, "canvas width in CSS pixels (100-4000)")
	fs.IntVar(&f.height, "height", 0, "minimum canvas height in CSS pixels")
	fs.Float64Var(&f.scale, "scale", 0, "device scale factor (0.5-4)")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "extra CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside the image")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip the image")
}

// newFlagSet returns a FlagSet that reports errors to the caller instead of
// printing them, and prints usage to w on --help.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseArgs parses args and wraps parse failures in ErrUsage.
// flag.ErrHelp is returned unwrapped.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	fs := newFlagSet("render", w, printRenderUsage)
	f := &renderFlags{changed: map[string]bool{}}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout (e.g., 30s, 2m)")

	// Document flags
	fs.StringVar(&f.theme, "theme", "", "theme: light, dark (default: saved preference)")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.icons, "icons", "", "icon font stylesheet URL for step boxes")
	fs.BoolVar(&f.markdown, "markdown", false, "read input as Markdown instead of markup")
	fs.BoolVarP(&f.autoFormat, "auto-format", "a", false, "auto-format plain text before rendering")
	fs.StringVar(&f.lexicon, "lexicon", "", "auto-format lexicon name (default: en)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addImageFlags(fs, &f.image)
	addAssetFlags(fs, &f.assets)
	addOutputFlags(fs, &f.outputMode)

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	return f, fs.Args(), nil
}

// parseFormatFlags parses format command flags and returns positional args.
func parseFormatFlags(args []string, w io.Writer) (*formatFlags, []string, error) {
	fs := newFlagSet("format", w, printFormatUsage)
	f := &formatFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&f.lexicon, "lexicon", "", "lexicon name (default: en)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noHeaders, "no-headers", false, "do not promote heading-like lines")
	fs.BoolVar(&f.noBold, "no-bold", false, "do not bold keywords and quantities")
	fs.BoolVar(&f.noLists, "no-lists", false, "do not convert numbered and bulleted lines")
	fs.BoolVar(&f.noSteps, "no-steps", false, "do not create step boxes")
	fs.BoolVar(&f.noInfo, "no-info", false, "do not create info boxes")

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTableFlags parses table command flags and returns positional args.
func parseTableFlags(args []string, w io.Writer) (*tableFlags, []string, error) {
	fs := newFlagSet("table", w, printTableUsage)
	f := &tableFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.IntVar(&f.cols, "cols", 3, "number of columns")
	fs.IntVar(&f.rows, "rows", 3, "number of rows, header included")
	fs.BoolVar(&f.header, "header", false, "first row is a header")
	fs.StringVar(&f.from, "from", "", "build the table from delimited text (file or -)")
	fs.StringVar(&f.sep, "sep", "auto", "delimiter for --from: auto, |, tab, ;, ,")
	fs.BoolVar(&f.align, "align", false, "pad cells to align columns")
	fs.StringVar(&f.lexicon, "lexicon", "", "lexicon for placeholder labels (default: en)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	if f.sep == "tab" {
		f.sep = "\t"
	}
	return f, fs.Args(), nil
}

// parseSimpleFlags parses a command that takes only positional arguments.
func parseSimpleFlags(name string, args []string, w io.Writer, usage func(io.Writer)) ([]string, error) {
	fs := newFlagSet(name, w, usage)
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, w io.Writer) (string, error) {
	fs := newFlagSet("config", w, printConfigUsage)
	var name string
	fs.StringVarP(&name, "config", "c", "", "config file name or path")
	if err := parseArgs(fs, args); err != nil {
		return "", err
	}
	return name, nil
}
