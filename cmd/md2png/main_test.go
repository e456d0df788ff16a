package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"md2png"}, ExitUsage, "", "Usage: md2png"},
		{"version", []string{"md2png", "version"}, ExitSuccess, "go-md2png dev", ""},
		{"help", []string{"md2png", "help"}, ExitSuccess, "Commands:", ""},
		{"help for command", []string{"md2png", "help", "table"}, ExitSuccess, "--from", ""},
		{"help flag on command", []string{"md2png", "render", "--help"}, ExitSuccess, "Usage: md2png render", ""},
		{"unknown command", []string{"md2png", "frobnicate"}, ExitUsage, "", "unknown command"},
		{"unknown help topic", []string{"md2png", "help", "nope"}, ExitUsage, "", "unknown command"},
		{"bad flag", []string{"md2png", "stats", "--nope"}, ExitUsage, "", "error:"},
		{"missing input file", []string{"md2png", "render", "missing.md"}, ExitIO, "", "error:"},
		{"implicit render", []string{"md2png", "missing.md"}, ExitIO, "", "no such file"},
		{"stats from stdin", []string{"md2png", "stats"}, ExitSuccess, "Words: 0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(t)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d (stderr: %s)", tt.args, code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunMain_HintOnError(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(t)
	code := runMain([]string{"md2png", "format", "--lexicon", "klingon"}, env)

	if code != ExitUsage {
		t.Errorf("code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "hint: available lexicons: en, pl") {
		t.Errorf("stderr = %q, want lexicon hint", stderr.String())
	}
}

func TestLooksLikeInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "notes"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		arg  string
		want bool
	}{
		{"-", true},
		{"--theme", true},
		{"doc.md", true},
		{"doc.MARKDOWN", true},
		{"list.txt", true},
		{"recipe.mk", true},
		{filepath.Join(dir, "notes"), true},
		{"render", false},
		{"doc.pdf", false},
		{filepath.Join(dir, "absent"), false},
	}

	for _, tt := range tests {
		if got := looksLikeInput(tt.arg); got != tt.want {
			t.Errorf("looksLikeInput(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	if env.Stdout != os.Stdout || env.Stderr != os.Stderr || env.Stdin != os.Stdin {
		t.Error("DefaultEnv should use the process streams")
	}
	if env.Now == nil || env.Getenv == nil || env.Environ == nil || env.NewPool == nil {
		t.Error("DefaultEnv leaves a dependency nil")
	}
	if env.AssetLoader != nil {
		t.Error("DefaultEnv should leave asset loading to the converter")
	}
}
