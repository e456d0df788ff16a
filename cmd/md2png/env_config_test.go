package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2png/internal/config"
)

// mapEnv returns a getenv function backed by m.
func mapEnv(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	env := loadEnvConfig(mapEnv(map[string]string{
		"MD2PNG_CONFIG":     "team",
		"MD2PNG_THEME":      "dark",
		"MD2PNG_WORKERS":    "3",
		"MD2PNG_FORMAT":     "jpeg",
		"MD2PNG_ASSET_PATH": "/assets",
	}))

	if env.ConfigPath != "team" || env.Theme != "dark" || env.Workers != 3 || env.Format != "jpeg" || env.Assets != "/assets" {
		t.Errorf("loadEnvConfig() = %+v", env)
	}

	for _, bad := range []string{"zero", "0", "-2"} {
		if got := loadEnvConfig(mapEnv(map[string]string{"MD2PNG_WORKERS": bad})); got.Workers != 0 {
			t.Errorf("MD2PNG_WORKERS=%q gave %d workers, want 0", bad, got.Workers)
		}
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars([]string{"MD2PNG_THEME=dark", "MD2PNG_THEMES=dark", "HOME=/root", "OTHER_STYLE=x"}, &buf)

	out := buf.String()
	if !strings.Contains(out, "MD2PNG_THEMES") {
		t.Errorf("missing warning for typo: %q", out)
	}
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("want exactly one warning, got %q", out)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{Theme: "dark", Style: "brand", Format: "jpeg", Lexicon: "pl", OutputDir: "out", Timeout: "1m"}

	t.Run("fills empty fields", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)
		if cfg.Theme != "dark" || cfg.CSS.Style != "brand" || cfg.Image.Format != "jpeg" ||
			cfg.AutoFormat.Lexicon != "pl" || cfg.Output.DefaultDir != "out" || cfg.Image.Timeout != "1m" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("config file wins", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Theme: "light", Image: config.ImageConfig{Format: "png"}}
		applyEnvConfig(env, cfg)
		if cfg.Theme != "light" || cfg.Image.Format != "png" {
			t.Errorf("cfg = %+v, env should not override the file", cfg)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\nimage:\n  width: 1200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, &envConfig{Format: "jpeg"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Theme != "dark" || cfg.Image.Width != 1200 || cfg.Image.Format != "jpeg" {
		t.Errorf("cfg = %+v", cfg)
	}

	t.Run("name from environment", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("", &envConfig{ConfigPath: path})
		if err != nil || cfg.Theme != "dark" {
			t.Errorf("loadConfig() = %+v, %v", cfg, err)
		}
	})

	t.Run("invalid environment value", func(t *testing.T) {
		t.Parallel()

		if _, err := loadConfig("", &envConfig{Theme: "sepia"}); !errors.Is(err, config.ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("", &envConfig{})
		if err != nil || cfg.Theme != "" {
			t.Errorf("loadConfig(\"\") = %+v, %v", cfg, err)
		}
	})
}
