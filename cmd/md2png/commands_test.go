package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2png "github.com/alnah/go-md2png"
)

func TestRunFormat(t *testing.T) {
	t.Parallel()

	t.Run("stdin to stdout", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(t)
		env.Stdin = strings.NewReader("SAFETY RULES\n1. Wash hands - before work")
		if err := runFormat(nil, env); err != nil {
			t.Fatal(err)
		}
		want := "# SAFETY RULES\n[#1] Wash hands | before work\n"
		if stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
	})

	t.Run("disabled heuristics", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(t)
		env.Stdin = strings.NewReader("1. Wash hands")
		if err := runFormat([]string{"-", "--no-steps"}, env); err != nil {
			t.Fatal(err)
		}
		// Without step boxes the ordinal becomes a plain bullet.
		if stdout.String() != "- Wash hands\n" {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("file to file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(t)
		dir := t.TempDir()
		in := filepath.Join(dir, "in.txt")
		out := filepath.Join(dir, "out.md")
		if err := os.WriteFile(in, []byte("• milk"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := runFormat([]string{in, "-o", out}, env); err != nil {
			t.Fatal(err)
		}
		data, _ := os.ReadFile(out)
		if string(data) != "- milk\n" {
			t.Errorf("output = %q", data)
		}
	})

	t.Run("lexicon from environment", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(t)
		env.Getenv = mapEnv(map[string]string{"MD2PNG_LEXICON": "pl"})
		env.Stdin = strings.NewReader("pamiętaj o kasku")
		if err := runFormat(nil, env); err != nil {
			t.Fatal(err)
		}
		if stdout.String() != "[INFO] o kasku\n" {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("unknown lexicon", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(t)
		if err := runFormat([]string{"--lexicon", "xx"}, env); !errors.Is(err, md2png.ErrLexiconNotFound) {
			t.Errorf("error = %v, want ErrLexiconNotFound", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(t)
		if err := runFormat([]string{filepath.Join(t.TempDir(), "x")}, env); !errors.Is(err, ErrReadInput) {
			t.Errorf("error = %v, want ErrReadInput", err)
		}
	})
}

func TestRunTable(t *testing.T) {
	t.Parallel()

	t.Run("placeholder grid", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(t)
		if err := runTable([]string{"--cols", "2", "--rows", "2", "--header"}, env); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
		if len(lines) != 3 || !strings.Contains(lines[0], "Header 1") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("from stdin", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(t)
		env.Stdin = strings.NewReader("name\tqty\nmilk\t2\n")
		if err := runTable([]string{"--from", "-", "--sep", "tab", "--header"}, env); err != nil {
			t.Fatal(err)
		}
		want := "| name | qty |\n|-----------|-----------|\n| milk | 2 |\n"
		if stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
	})

	t.Run("from blank input", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(t)
		env.Stdin = strings.NewReader("  \n")
		if err := runTable([]string{"--from", "-"}, env); !errors.Is(err, ErrNoTableData) {
			t.Errorf("error = %v, want ErrNoTableData", err)
		}
	})

	t.Run("size bounds", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(t)
		for _, args := range [][]string{{"--cols", "0"}, {"--rows", "51"}} {
			if err := runTable(args, env); !errors.Is(err, ErrUsage) {
				t.Errorf("runTable(%v) error = %v, want ErrUsage", args, err)
			}
		}
	})

	t.Run("positional argument", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(t)
		if err := runTable([]string{"data.csv"}, env); !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})
}

func TestRunStats(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(t)
	env.Stdin = strings.NewReader("hello big world")
	if err := runStats([]string{"-"}, env); err != nil {
		t.Fatal(err)
	}
	want := "Words: 3\nCharacters: 15\nCharacters (no spaces): 13\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}

	if err := runStats([]string{"a", "b"}, env); !errors.Is(err, ErrUsage) {
		t.Errorf("two inputs error = %v, want ErrUsage", err)
	}
}

func TestRunTheme(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(t)

	if err := runTheme(nil, env); err != nil || strings.TrimSpace(stdout.String()) != "light" {
		t.Fatalf("initial theme = %q, %v", stdout.String(), err)
	}

	stdout.Reset()
	if err := runTheme([]string{"Dark"}, env); err != nil {
		t.Fatal(err)
	}
	stdout.Reset()
	if err := runTheme(nil, env); err != nil || strings.TrimSpace(stdout.String()) != "dark" {
		t.Errorf("theme after save = %q, %v", stdout.String(), err)
	}

	if err := runTheme([]string{"sepia"}, env); !errors.Is(err, md2png.ErrInvalidTheme) {
		t.Errorf("error = %v, want ErrInvalidTheme", err)
	}
}

func TestRunConfig(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(t)
	env.Getenv = mapEnv(map[string]string{"MD2PNG_THEME": "dark"})

	if err := runConfig(nil, env); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "theme: dark") {
		t.Errorf("stdout = %q, want the environment theme", stdout.String())
	}
}
