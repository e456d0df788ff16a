package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2png/internal/config"
)

// envPrefix starts every environment variable the CLI reads.
const envPrefix = "MD2PNG_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2PNG_CONFIG: config file name or path
	Timeout    string // MD2PNG_TIMEOUT: render timeout
	Workers    int    // MD2PNG_WORKERS: parallel workers

	InputDir  string // MD2PNG_INPUT_DIR: default input directory
	OutputDir string // MD2PNG_OUTPUT_DIR: default output directory

	Theme   string // MD2PNG_THEME: light or dark
	Style   string // MD2PNG_STYLE: CSS style name or path
	Format  string // MD2PNG_FORMAT: png or jpeg
	Lexicon string // MD2PNG_LEXICON: auto-format lexicon
	Assets  string // MD2PNG_ASSET_PATH: custom asset directory
}

// knownEnvVars lists valid MD2PNG_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2PNG_CONFIG":     true,
	"MD2PNG_TIMEOUT":    true,
	"MD2PNG_WORKERS":    true,
	"MD2PNG_INPUT_DIR":  true,
	"MD2PNG_OUTPUT_DIR": true,
	"MD2PNG_THEME":      true,
	"MD2PNG_STYLE":      true,
	"MD2PNG_FORMAT":     true,
	"MD2PNG_LEXICON":    true,
	"MD2PNG_ASSET_PATH": true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numbers are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2PNG_CONFIG"),
		Timeout:    getenv("MD2PNG_TIMEOUT"),
		InputDir:   getenv("MD2PNG_INPUT_DIR"),
		OutputDir:  getenv("MD2PNG_OUTPUT_DIR"),
		Theme:      getenv("MD2PNG_THEME"),
		Style:      getenv("MD2PNG_STYLE"),
		Format:     getenv("MD2PNG_FORMAT"),
		Lexicon:    getenv("MD2PNG_LEXICON"),
		Assets:     getenv("MD2PNG_ASSET_PATH"),
	}

	if workers := getenv("MD2PNG_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2PNG_* variables.
// Helps catch typos like MD2PNG_THEMES instead of MD2PNG_THEME.
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

// applyEnvConfig fills config fields the config file left empty.
// Precedence: CLI flags > config file > env vars > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Theme != "" && cfg.Theme == "" {
		cfg.Theme = env.Theme
	}
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	if env.Format != "" && cfg.Image.Format == "" {
		cfg.Image.Format = env.Format
	}
	if env.Timeout != "" && cfg.Image.Timeout == "" {
		cfg.Image.Timeout = env.Timeout
	}
	if env.Lexicon != "" && cfg.AutoFormat.Lexicon == "" {
		cfg.AutoFormat.Lexicon = env.Lexicon
	}
	if env.Assets != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.Assets
	}
}

// loadConfig loads the named config, or the defaults when name is empty,
// and applies the environment.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}
