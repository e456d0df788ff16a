package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2png/internal/fileutil"
	"github.com/alnah/go-md2png/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config dir holding named
// configs, the theme preference and custom assets.
const AppDirName = "go-md2png"

// Field length limits.
const (
	MaxPathLength    = 4096
	MaxNameLength    = 64
	MaxTitleLength   = 200
	MaxURLLength     = 2048
	MaxTimeoutLength = 20
)

// Image limits.
const (
	MinImageWidth  = 100
	MaxImageWidth  = 4000
	MaxImageHeight = 20000
	MinImageScale  = 0.5
	MaxImageScale  = 4
)

// Config holds all configuration for image generation.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Theme      string           `yaml:"theme"` // "light", "dark"; empty = stored preference
	CSS        CSSConfig        `yaml:"css"`
	Assets     AssetsConfig     `yaml:"assets"`
	Image      ImageConfig      `yaml:"image"`
	AutoFormat AutoFormatConfig `yaml:"autoFormat"`
	Document   DocumentConfig   `yaml:"document"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Markdown   bool   `yaml:"markdown"`   // Treat input as Markdown instead of markup
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// CSSConfig defines user styling applied on top of the theme.
type CSSConfig struct {
	Style string `yaml:"style"` // Style name or .css path (empty = theme only)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ImageConfig defines raster output settings. Zero values use the
// rasterizer defaults.
type ImageConfig struct {
	Format  string  `yaml:"format"`  // "png" (default), "jpeg"
	Quality int     `yaml:"quality"` // JPEG quality 1-100
	Width   int     `yaml:"width"`   // Viewport width in CSS pixels
	Height  int     `yaml:"height"`  // Minimum canvas height in CSS pixels
	Scale   float64 `yaml:"scale"`   // Device scale factor
	Timeout string  `yaml:"timeout"` // Go duration, e.g. "30s"
}

// AutoFormatConfig controls the raw text formatter.
type AutoFormatConfig struct {
	Enabled bool     `yaml:"enabled"`
	Lexicon string   `yaml:"lexicon"` // Lexicon name (empty = "en")
	Disable []string `yaml:"disable"` // Heuristics to skip: headers, bold, lists, steps, info
}

// DocumentConfig defines the HTML document around the rendered fragment.
type DocumentConfig struct {
	Title string `yaml:"title"`
	Icons string `yaml:"icons"` // Icon font stylesheet URL (empty = no icon font)
}

// Heuristic names accepted in autoFormat.disable.
var heuristicNames = map[string]bool{
	"headers": true,
	"bold":    true,
	"lists":   true,
	"steps":   true,
	"info":    true,
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"css.style", c.CSS.Style, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"autoFormat.lexicon", c.AutoFormat.Lexicon, MaxNameLength},
		{"image.timeout", c.Image.Timeout, MaxTimeoutLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.icons", c.Document.Icons, MaxURLLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Theme) {
	case "", "light", "dark":
	default:
		return fmt.Errorf("%w: theme %q (must be light or dark)", ErrInvalidValue, c.Theme)
	}

	if err := c.Image.validate(); err != nil {
		return err
	}

	for _, h := range c.AutoFormat.Disable {
		if !heuristicNames[strings.ToLower(h)] {
			return fmt.Errorf("%w: autoFormat.disable %q (must be headers, bold, lists, steps or info)", ErrInvalidValue, h)
		}
	}

	return nil
}

func (i *ImageConfig) validate() error {
	switch strings.ToLower(i.Format) {
	case "", "png", "jpeg", "jpg":
	default:
		return fmt.Errorf("%w: image.format %q (must be png or jpeg)", ErrInvalidValue, i.Format)
	}
	if i.Quality < 0 || i.Quality > 100 {
		return fmt.Errorf("%w: image.quality must be between 1 and 100, got %d", ErrInvalidValue, i.Quality)
	}
	if i.Width != 0 && (i.Width < MinImageWidth || i.Width > MaxImageWidth) {
		return fmt.Errorf("%w: image.width must be between %d and %d, got %d", ErrInvalidValue, MinImageWidth, MaxImageWidth, i.Width)
	}
	if i.Height < 0 || i.Height > MaxImageHeight {
		return fmt.Errorf("%w: image.height must be between 0 and %d, got %d", ErrInvalidValue, MaxImageHeight, i.Height)
	}
	if i.Scale != 0 && (i.Scale < MinImageScale || i.Scale > MaxImageScale) {
		return fmt.Errorf("%w: image.scale must be between %.1f and %.1f, got %.2f", ErrInvalidValue, MinImageScale, float64(MaxImageScale), i.Scale)
	}
	if _, err := i.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout. Empty returns 0, meaning the default.
func (i *ImageConfig) TimeoutDuration() (time.Duration, error) {
	if i.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(i.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: image.timeout %q: %v", ErrInvalidValue, i.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: image.timeout must be positive, got %s", ErrInvalidValue, i.Timeout)
	}
	return d, nil
}

// Disabled reports whether the named heuristic is listed in Disable.
func (a *AutoFormatConfig) Disabled(heuristic string) bool {
	for _, h := range a.Disable {
		if strings.EqualFold(h, heuristic) {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: light theme from the
// stored preference, embedded assets, PNG output, no auto-formatting.
func DefaultConfig() *Config {
	return &Config{}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(configPath, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2png/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if dir, err := UserDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(dir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// UserDir returns the per-user application directory. It is not created.
func UserDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName), nil
}
