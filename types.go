package md2png

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2png/internal/autoformat"
)

// Syntax selects how Input.Content is read.
type Syntax string

// Supported input syntaxes.
const (
	SyntaxMarkup   Syntax = "markup"   // line-oriented markup (default)
	SyntaxMarkdown Syntax = "markdown" // CommonMark with GFM extensions
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ImageFormat is the encoding of the rasterized image.
type ImageFormat string

// Image formats.
const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
)

// ParseImageFormat maps a user-supplied name ("png", "jpg", "jpeg", any
// case) to an ImageFormat.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q (must be png or jpeg)", ErrInvalidImageFormat, s)
	}
}

// Extension returns the file extension for the format, with the dot.
func (f ImageFormat) Extension() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// Image defaults match the preview canvas: 900 logical pixels wide, at
// least 600 tall, captured at twice the device scale.
const (
	DefaultImageWidth     = 900
	DefaultImageMinHeight = 600
	DefaultImageScale     = 2.0
	DefaultJPEGQuality    = 92
)

// Image bounds.
const (
	MinImageWidth  = 100
	MaxImageWidth  = 4000
	MaxImageHeight = 20000
	MinImageScale  = 0.5
	MaxImageScale  = 4.0
)

// ImageSettings configures rasterization. Zero fields take the defaults.
type ImageSettings struct {
	Format    ImageFormat // png (default) or jpeg
	Quality   int         // 1-100, JPEG only
	Width     int         // viewport width in CSS pixels
	MinHeight int         // minimum canvas height in CSS pixels
	Scale     float64     // device scale factor
}

// DefaultImageSettings returns image settings with default values.
func DefaultImageSettings() *ImageSettings {
	return &ImageSettings{
		Format:    FormatPNG,
		Quality:   DefaultJPEGQuality,
		Width:     DefaultImageWidth,
		MinHeight: DefaultImageMinHeight,
		Scale:     DefaultImageScale,
	}
}

// Validate checks that image settings are valid.
// Returns nil if s is nil (nil means use defaults).
// Zero values are valid and mean "use the default".
func (s *ImageSettings) Validate() error {
	if s == nil {
		return nil
	}

	switch s.Format {
	case "", FormatPNG, FormatJPEG:
	default:
		return fmt.Errorf("%w: %q (must be png or jpeg)", ErrInvalidImageFormat, s.Format)
	}

	if s.Quality < 0 || s.Quality > 100 {
		return fmt.Errorf("%w: %d (must be between 1 and 100)", ErrInvalidQuality, s.Quality)
	}

	if s.Width != 0 && (s.Width < MinImageWidth || s.Width > MaxImageWidth) {
		return fmt.Errorf("%w: width %d (must be between %d and %d)", ErrInvalidDimensions, s.Width, MinImageWidth, MaxImageWidth)
	}
	if s.MinHeight < 0 || s.MinHeight > MaxImageHeight {
		return fmt.Errorf("%w: minimum height %d (must be between 0 and %d)", ErrInvalidDimensions, s.MinHeight, MaxImageHeight)
	}
	if s.Scale != 0 && (s.Scale < MinImageScale || s.Scale > MaxImageScale) {
		return fmt.Errorf("%w: scale %.2f (must be between %.1f and %.1f)", ErrInvalidDimensions, s.Scale, MinImageScale, MaxImageScale)
	}

	return nil
}

// resolved returns a copy of s with zero fields replaced by defaults.
func (s *ImageSettings) resolved() ImageSettings {
	out := *DefaultImageSettings()
	if s == nil {
		return out
	}
	if s.Format != "" {
		out.Format = s.Format
	}
	if s.Quality != 0 {
		out.Quality = s.Quality
	}
	if s.Width != 0 {
		out.Width = s.Width
	}
	if s.MinHeight != 0 {
		out.MinHeight = s.MinHeight
	}
	if s.Scale != 0 {
		out.Scale = s.Scale
	}
	return out
}

// FormatOptions selects the auto-formatter heuristics.
type FormatOptions struct {
	Headers bool // promote heading-like lines
	Bold    bool // bold emphasis keywords and quantities
	Lists   bool // turn numbered and bulleted lines into list items
	Steps   bool // turn lines numbered 1-4 into step boxes
	Info    bool // turn notice lead-ins into info boxes
}

// AllFormatOptions enables every heuristic.
func AllFormatOptions() FormatOptions {
	return FormatOptions(autoformat.AllOptions())
}

// Input contains conversion parameters.
type Input struct {
	Content   string // Source text (required)
	SourceDir string // Directory for resolving relative image paths (optional)
	Syntax    Syntax // Content syntax (optional, empty = markup)
	Theme     string // "light" or "dark" (optional, empty = converter theme)
	CSS       string // Custom CSS applied last (optional)
	Title     string // Document title (optional)

	// AutoFormat runs the auto-formatter on Content before conversion.
	AutoFormat bool

	// FormatOptions selects the heuristics when AutoFormat is set.
	// Nil enables all of them.
	FormatOptions *FormatOptions

	// HTMLOnly skips rasterization and returns only the HTML document.
	HTMLOnly bool

	// Image configures rasterization (optional, nil = defaults).
	Image *ImageSettings
}

// formatOptions returns the heuristics to apply.
func (in Input) formatOptions() autoformat.Options {
	if in.FormatOptions == nil {
		return autoformat.AllOptions()
	}
	return autoformat.Options(*in.FormatOptions)
}

// ConvertResult contains the output of a successful conversion.
type ConvertResult struct {
	HTML   []byte      // Themed HTML document
	Image  []byte      // Encoded image, nil when Input.HTMLOnly is set
	Format ImageFormat // Encoding of Image
	Width  int         // Image width in device pixels
	Height int         // Image height in device pixels
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	styleInput    string // name, path, or CSS content (resolved in NewConverter)
	resolvedStyle string // CSS content after resolution
	assetPath     string
	theme         string
	lexicon       string
	iconsHref     string
	title         string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2png: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle adds a stylesheet on top of the theme. The value is a style
// name from the asset loader, a path to a CSS file, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath loads styles and lexicons from a directory, falling back
// to the embedded assets for anything it does not contain.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithTheme sets the default theme ("light" or "dark").
func WithTheme(name string) Option {
	return func(c *Converter) {
		c.cfg.theme = name
	}
}

// WithLexicon selects the auto-formatter lexicon by name.
func WithLexicon(name string) Option {
	return func(c *Converter) {
		c.cfg.lexicon = name
	}
}

// WithIcons links an icon font stylesheet so step box icons render.
// Without it no network resource is referenced.
func WithIcons(href string) Option {
	return func(c *Converter) {
		c.cfg.iconsHref = href
	}
}

// WithTitle sets the default document title.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}
