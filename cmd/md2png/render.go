package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	md2png "github.com/alnah/go-md2png"
	"github.com/alnah/go-md2png/internal/config"
	"github.com/alnah/go-md2png/internal/theme"
)

// ErrInvalidTimeout is returned for unparsable or non-positive timeouts.
var ErrInvalidTimeout = errors.New("invalid timeout")

// batchError reports failed conversions after each was printed. With a
// single failure it unwraps to that failure so the exit code reflects it.
type batchError struct {
	failed int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() error {
	if e.failed == 1 {
		return e.first
	}
	return nil
}

// runRender orchestrates the conversion process.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	if flags.common.verbose {
		warnUnknownEnvVars(env.Environ(), env.Stderr)
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	timeout, err := resolveTimeout(cfg)
	if err != nil {
		return err
	}

	themeName, err := resolveTheme(cfg, env)
	if err != nil {
		return err
	}

	image, err := buildImageSettings(cfg)
	if err != nil {
		return err
	}

	files, err := resolveFiles(positional, cfg, image.Format, env)
	if err != nil {
		return err
	}

	params := &conversionParams{
		syntax:        md2png.SyntaxMarkup,
		title:         cfg.Document.Title,
		autoFormat:    cfg.AutoFormat.Enabled,
		formatOptions: formatOptionsFromConfig(cfg.AutoFormat),
		image:         image,
		htmlOutput:    flags.outputMode.html,
		htmlOnly:      flags.outputMode.htmlOnly,
	}
	if cfg.Input.Markdown {
		params.syntax = md2png.SyntaxMarkdown
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(verboseLogger(flags.common.verbose, env.Stderr)))
	defer undo()

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := min(md2png.ResolvePoolSize(workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d, theme: %s\n", poolSize, themeName)
	}

	pool := env.NewPool(poolSize, converterOptions(cfg, themeName, timeout, env)...)
	defer pool.Close()

	results := convertBatch(ctx, pool, files, params)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return &batchError{failed: failed, first: firstError(results)}
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.timeout != "" {
		cfg.Image.Timeout = flags.timeout
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.icons != "" {
		cfg.Document.Icons = flags.icons
	}
	if flags.markdown {
		cfg.Input.Markdown = true
	}
	if flags.autoFormat {
		cfg.AutoFormat.Enabled = true
	}
	if flags.lexicon != "" {
		cfg.AutoFormat.Lexicon = flags.lexicon
	}
	if flags.assets.style != "" {
		cfg.CSS.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	// Image flags
	if flags.image.format != "" {
		cfg.Image.Format = flags.image.format
	}
	if flags.changed["quality"] {
		cfg.Image.Quality = flags.image.quality
	}
	if flags.changed["width"] {
		cfg.Image.Width = flags.image.width
	}
	if flags.changed["height"] {
		cfg.Image.Height = flags.image.height
	}
	if flags.changed["scale"] {
		cfg.Image.Scale = flags.image.scale
	}
}

// resolveTimeout returns the configured render timeout, 0 for the default.
func resolveTimeout(cfg *config.Config) (time.Duration, error) {
	d, err := cfg.Image.TimeoutDuration()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTimeout, err)
	}
	return d, nil
}

// resolveTheme picks the configured theme, falling back to the saved
// preference.
func resolveTheme(cfg *config.Config, env *Environment) (string, error) {
	if cfg.Theme != "" {
		return strings.ToLower(cfg.Theme), nil
	}
	pref, err := theme.NewPreference(env.ConfigDir)
	if err != nil {
		return md2png.ThemeLight, nil
	}
	name, err := pref.Load()
	if err != nil {
		return "", err
	}
	return name.String(), nil
}

// buildImageSettings converts the image section of the config.
func buildImageSettings(cfg *config.Config) (*md2png.ImageSettings, error) {
	format, err := md2png.ParseImageFormat(cfg.Image.Format)
	if err != nil {
		return nil, err
	}
	settings := &md2png.ImageSettings{
		Format:    format,
		Quality:   cfg.Image.Quality,
		Width:     cfg.Image.Width,
		MinHeight: cfg.Image.Height,
		Scale:     cfg.Image.Scale,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// formatOptionsFromConfig enables every heuristic not listed in Disable.
func formatOptionsFromConfig(af config.AutoFormatConfig) *md2png.FormatOptions {
	return &md2png.FormatOptions{
		Headers: !af.Disabled("headers"),
		Bold:    !af.Disabled("bold"),
		Lists:   !af.Disabled("lists"),
		Steps:   !af.Disabled("steps"),
		Info:    !af.Disabled("info"),
	}
}

// converterOptions builds the options shared by every pooled converter.
func converterOptions(cfg *config.Config, themeName string, timeout time.Duration, env *Environment) []md2png.Option {
	opts := []md2png.Option{md2png.WithTheme(themeName)}
	if timeout > 0 {
		opts = append(opts, md2png.WithTimeout(timeout))
	}
	if cfg.CSS.Style != "" {
		opts = append(opts, md2png.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2png.WithAssetPath(cfg.Assets.BasePath))
	}
	if env.AssetLoader != nil {
		opts = append(opts, md2png.WithAssetLoader(env.AssetLoader))
	}
	if cfg.AutoFormat.Lexicon != "" {
		opts = append(opts, md2png.WithLexicon(cfg.AutoFormat.Lexicon))
	}
	if cfg.Document.Icons != "" {
		opts = append(opts, md2png.WithIcons(cfg.Document.Icons))
	}
	return opts
}

// resolveFiles turns the positional argument (or the configured input
// directory) into files to convert. "-" reads standard input.
func resolveFiles(args []string, cfg *config.Config, format md2png.ImageFormat, env *Environment) ([]FileToConvert, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	}

	input := cfg.Input.DefaultDir
	if len(args) == 1 {
		input = args[0]
	}
	if input == "" {
		return nil, ErrNoInput
	}

	if input != stdinArg {
		files, err := discoverFiles(input, cfg.Output.DefaultDir, format)
		if err != nil {
			return nil, fmt.Errorf("discovering files: %w", err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%w: no input files found in %s", ErrNoInput, input)
		}
		return files, nil
	}

	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
	}
	out, err := stdinOutputPath(cfg.Output.DefaultDir, format, env.Now())
	if err != nil {
		return nil, err
	}
	return []FileToConvert{{InputPath: stdinArg, OutputPath: out, Content: content}}, nil
}

// firstError returns the first failure in results.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// verboseLogger returns a printf-style logger writing to w when verbose is
// set and discarding otherwise.
func verboseLogger(verbose bool, w io.Writer) func(string, ...interface{}) {
	if !verbose {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}
