package md2png

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2png/internal/assets"
	"github.com/alnah/go-md2png/internal/autoformat"
	"github.com/alnah/go-md2png/internal/fileutil"
	"github.com/alnah/go-md2png/internal/pipeline"
	"github.com/alnah/go-md2png/internal/theme"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Preprocessor  = (*pipeline.MarkupPreprocessor)(nil)
	_ pipeline.Preprocessor  = (*pipeline.MarkdownPreprocessor)(nil)
	_ pipeline.HTMLConverter = (*pipeline.MarkupConverter)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector   = (*pipeline.CSSInjection)(nil)
	_ imageConverter         = (*rodConverter)(nil)
)

// Converter orchestrates the text-to-image pipeline.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
// A Converter owns one browser and is not safe for concurrent use; use
// ConverterPool for parallel work.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	lexicon           *autoformat.Lexicon
	themes            map[theme.Name]themeAssets
	baseCSS           string
	exportCSS         string
	head              string
	goldmark          *pipeline.GoldmarkConverter
	htmlConverter     pipeline.HTMLConverter // overrides the syntax converters when set
	cssInjector       pipeline.CSSInjector
	imageConverter    imageConverter
}

// themeAssets is a theme's palette stylesheet and its parsed variables.
type themeAssets struct {
	css     string
	palette theme.Palette
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithTheme, WithStyle).
// Returns error if asset loading or lexicon parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:         converterConfig{timeout: defaultTimeout},
		assetLoader: assets.NewEmbeddedLoader(),
		goldmark:    pipeline.NewGoldmarkConverter(),
		cssInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.theme != "" && !theme.IsKnown(strings.ToLower(c.cfg.theme)) {
		return nil, fmt.Errorf("%w: %q (must be light or dark)", ErrInvalidTheme, c.cfg.theme)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface)
	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	}

	if err := c.loadStyles(); err != nil {
		return nil, err
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if err := c.loadLexicon(); err != nil {
		return nil, err
	}

	c.head = pipeline.StylesheetLink(c.cfg.iconsHref)

	// Create image converter if not injected (e.g., by tests)
	if c.imageConverter == nil {
		c.imageConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// loadStyles loads the base, export and theme stylesheets and parses the
// theme palettes.
func (c *Converter) loadStyles() error {
	var err error
	if c.baseCSS, err = c.loadStyle(assets.BaseStyleName); err != nil {
		return err
	}
	if c.exportCSS, err = c.loadStyle(assets.ExportStyleName); err != nil {
		return err
	}

	c.themes = make(map[theme.Name]themeAssets, 2)
	for _, name := range []theme.Name{theme.Light, theme.Dark} {
		css, err := c.loadStyle(name.StyleName())
		if err != nil {
			return err
		}
		palette, err := theme.LoadPalette(css)
		if err != nil {
			return fmt.Errorf("parsing %s palette: %w", name, err)
		}
		c.themes[name] = themeAssets{css: css, palette: palette}
	}
	return nil
}

func (c *Converter) loadStyle(name string) (string, error) {
	css, err := c.assetLoader.LoadStyle(name)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", name, convertAssetError(err))
	}
	return css, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter() after options are applied and asset loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.loadStyle(input)
	if err != nil {
		return err
	}
	c.cfg.resolvedStyle = css
	return nil
}

// loadLexicon loads the auto-formatter lexicon through the asset loader so
// a custom asset path can override or add lexicons.
func (c *Converter) loadLexicon() error {
	name := c.cfg.lexicon
	if name == "" {
		name = assets.DefaultLexiconName
	}
	lex, err := autoformat.Load(c.assetLoader, name)
	if err != nil {
		return fmt.Errorf("loading lexicon %q: %w", name, convertAssetError(err))
	}
	c.lexicon = lex
	return nil
}

// Convert runs the full pipeline and returns the result containing HTML and image.
// The context is used for cancellation and timeout.
// If input.HTMLOnly is true, rasterization is skipped.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	content := input.Content
	if input.AutoFormat {
		content = autoformat.Format(content, input.formatOptions(), c.lexicon)
	}

	syntax := input.Syntax
	if syntax == "" {
		syntax = SyntaxMarkup
	}

	content = preprocessorFor(syntax).Preprocess(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := c.htmlConverterFor(syntax, c.title(input)).ToHTML(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Rewrite relative paths to absolute file:// URLs (if source directory provided)
	if input.SourceDir != "" {
		htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	name := c.themeName(input)
	settings := input.Image.resolved()

	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, c.stylesheet(name, input, &settings))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Inline styles carry var() references that must hold concrete colors
	// once the document leaves the page that defines them.
	htmlContent, err = theme.Resolve(htmlContent, c.themes[name].palette)
	if err != nil {
		return nil, fmt.Errorf("resolving theme colors: %w", err)
	}

	res := &ConvertResult{
		HTML: []byte(htmlContent),
	}

	if input.HTMLOnly {
		return res, nil
	}

	img, err := c.imageConverter.ToImage(ctx, htmlContent, &settings)
	if err != nil {
		return nil, fmt.Errorf("rendering image: %w", err)
	}

	res.Image = img.Data
	res.Format = settings.Format
	res.Width = img.Width
	res.Height = img.Height
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.imageConverter != nil {
		return c.imageConverter.Close()
	}
	return nil
}

// Lexicon returns the name of the loaded auto-formatter lexicon.
func (c *Converter) Lexicon() string {
	return c.lexicon.Name
}

// preprocessorFor returns the preprocessor for a syntax.
func preprocessorFor(syntax Syntax) pipeline.Preprocessor {
	if syntax == SyntaxMarkdown {
		return &pipeline.MarkdownPreprocessor{}
	}
	return &pipeline.MarkupPreprocessor{}
}

// htmlConverterFor returns the HTML converter for a syntax. Converters are
// built per call because the document title varies per input.
func (c *Converter) htmlConverterFor(syntax Syntax, title string) pipeline.HTMLConverter {
	if c.htmlConverter != nil {
		return c.htmlConverter
	}
	if syntax == SyntaxMarkdown {
		gm := *c.goldmark
		gm.Title = title
		gm.Head = c.head
		return &gm
	}
	return &pipeline.MarkupConverter{Title: title, Head: c.head}
}

// title picks the document title: input, then converter default.
func (c *Converter) title(input Input) string {
	if input.Title != "" {
		return input.Title
	}
	return c.cfg.title
}

// themeName picks the theme: input, then converter default, then light.
func (c *Converter) themeName(input Input) theme.Name {
	if input.Theme != "" {
		return theme.ParseName(input.Theme)
	}
	return theme.ParseName(c.cfg.theme)
}

// stylesheet builds the document CSS in cascade order: palette, base
// layout, export overrides and canvas size (rasterization only), converter
// style, then input CSS.
func (c *Converter) stylesheet(name theme.Name, input Input, settings *ImageSettings) string {
	var exportCSS, canvasCSS string
	if !input.HTMLOnly {
		exportCSS = c.exportCSS
		canvasCSS = buildCanvasCSS(settings)
	}
	return pipeline.JoinCSS(
		c.themes[name].css,
		c.baseCSS,
		exportCSS,
		canvasCSS,
		c.cfg.resolvedStyle,
		input.CSS,
	)
}

// buildCanvasCSS pins the canvas width and enforces the minimum height. A
// full-page capture shrinks to the content otherwise.
func buildCanvasCSS(settings *ImageSettings) string {
	return "html, body { width: " + strconv.Itoa(settings.Width) + "px; min-height: " +
		strconv.Itoa(settings.MinHeight) + "px; }"
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config load time.
// Both paths converge here, ensuring all inputs are validated before processing.
func (c *Converter) validateInput(input Input) error {
	if strings.TrimSpace(input.Content) == "" {
		return ErrEmptyInput
	}
	switch input.Syntax {
	case "", SyntaxMarkup, SyntaxMarkdown:
	default:
		return fmt.Errorf("%w: %q (must be markup or markdown)", ErrUnknownSyntax, input.Syntax)
	}
	if input.Theme != "" && !theme.IsKnown(strings.ToLower(input.Theme)) {
		return fmt.Errorf("%w: %q (must be light or dark)", ErrInvalidTheme, input.Theme)
	}
	if err := input.Image.Validate(); err != nil {
		return err
	}
	return nil
}

// IsBrowserError reports whether err comes from launching or driving the
// browser rather than from the input.
func IsBrowserError(err error) bool {
	return errors.Is(err, ErrBrowserConnect) ||
		errors.Is(err, ErrPageCreate) ||
		errors.Is(err, ErrPageLoad) ||
		errors.Is(err, ErrImageGeneration)
}
