package autoformat

import (
	"strings"
	"testing"

	"github.com/alnah/go-md2png/internal/assets"
	"github.com/alnah/go-md2png/internal/markup"
)

func TestFormat_RoundTripStep(t *testing.T) {
	t.Parallel()

	got := Format("1. Check cables - inspect all connections", AllOptions(), nil)
	want := "[#1] Check cables | inspect all connections"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}

	html := markup.Transform(got)
	if !strings.Contains(html, `class="step-box step-box-1"`) {
		t.Errorf("Transform() missing step 1 box: %s", html)
	}
	if !strings.Contains(html, markup.StepIcon("1")) {
		t.Errorf("Transform() missing step 1 icon: %s", html)
	}
	if !strings.Contains(html, "#1: Check cables") || !strings.Contains(html, "inspect all connections") {
		t.Errorf("Transform() lost title or description: %s", html)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	headers := Options{Headers: true}
	bold := Options{Bold: true}
	lists := Options{Lists: true}
	steps := Options{Steps: true}
	listsSteps := Options{Lists: true, Steps: true}
	info := Options{Info: true}

	tests := []struct {
		name     string
		input    string
		opts     Options
		expected string
	}{
		// Normalization
		{"empty", "", AllOptions(), ""},
		{"lines are trimmed", "a\r\n\tb   c\r\n", Options{}, "a\nb c"},
		{"blank lines pass through", "a\n\n\nb", AllOptions(), "a\n\n\nb"},
		{"no options leaves text", "IMPORTANT GUIDE\n1. x", Options{}, "IMPORTANT GUIDE\n1. x"},

		// Headers
		{"header keyword", "user guide for setup", headers, "# user guide for setup"},
		{"header keyword case-insensitive", "The MANUAL", headers, "# The MANUAL"},
		{"uppercase line", "SAFETY FIRST", headers, "## SAFETY FIRST"},
		{"too short", "ABC", headers, "ABC"},
		{"too few letters", "A1 2 3 4", headers, "A1 2 3 4"},
		{"already a header", "# NOTICE", headers, "# NOTICE"},
		{"bracket line", "[INFO] MANUAL", headers, "[INFO] MANUAL"},
		{"long uppercase line", strings.Repeat("ABCDE ", 10), headers, strings.TrimSpace(strings.Repeat("ABCDE ", 10))},
		{"mixed case", "Nothing Special here", headers, "Nothing Special here"},

		// Bold
		{"emphasis keyword", "this is important now", bold, "this is **important** now"},
		{"emphasis keeps case", "URGENT call", bold, "**URGENT** call"},
		{"whole words only", "unstoppable force", bold, "unstoppable force"},
		{"already bold", "**urgent** call", bold, "**urgent** call"},
		{"quantity with unit", "Price 20 EUR today", bold, "Price **20 EUR** today"},
		{"decimal percent", "Save 15,5% now", bold, "Save **15,5%** now"},
		{"number without unit", "Room 101", bold, "Room 101"},

		// Lists
		{"ordinal becomes bullet", "5. fifth", lists, "- fifth"},
		{"paren ordinal", "2) second", lists, "- second"},
		{"ordinal kept for steps", "2) second", listsSteps, "[#2] second | Follow the instructions"},
		{"high ordinal with steps", "7. seventh", listsSteps, "- seventh"},
		{"bullet glyph", "• dot", lists, "- dot"},
		{"arrow glyph", "► arrow", lists, "- arrow"},
		{"star bullet", "* star", lists, "- star"},
		{"dash without space", "-no space", lists, "-no space"},

		// Steps
		{"arrow separator", "3: Calibrate → follow the menu", steps, "[#3] Calibrate | follow the menu"},
		{"step word", "step 2 Power on - press the button", steps, "[#2] Power on | press the button"},
		{"pipe kept", "4. Test | run test mode", steps, "[#4] Test | run test mode"},
		{"split after four words", "1. one two three four five six", steps, "[#1] one two three four | five six"},
		{"short content gets placeholder", "1. Reboot", steps, "[#1] Reboot | Follow the instructions"},
		{"first separator wins", "2. a: b - c", steps, "[#2] a: b | c"},
		{"out of range", "5. too high", steps, "5. too high"},
		{"zero", "0. zero", steps, "0. zero"},
		{"leading zero normalized", "01. padded - x", steps, "[#1] padded | x"},
		{"overflow", "99999999999999999999. big", steps, "99999999999999999999. big"},

		// Info
		{"lead-in with colon", "Note: back up first", info, "[INFO] back up first"},
		{"lead-in with space", "TIP remember this", info, "[INFO] remember this"},
		{"lead-in needs a break", "Notebook is here", info, "Notebook is here"},
		{"alert punctuation", "!!! warning: hot", info, "[INFO] warning: hot"},
		{"alert stars", "** attention please", info, "[INFO] attention please"},
		{"bold lead-in", "Important: read first", Options{Bold: true, Info: true}, "[INFO] read first"},
		{"headers win over info", "WARNING: hot surface", AllOptions(), "# **WARNING**: hot surface"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Format(tt.input, tt.opts, nil)
			if got != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormat_PolishLexicon(t *testing.T) {
	t.Parallel()

	lex, err := Load(assets.NewEmbeddedLoader(), "pl")
	if err != nil {
		t.Fatalf("Load(pl) error = %v", err)
	}

	tests := []struct {
		name     string
		input    string
		opts     Options
		expected string
	}{
		{"info lead-in", "UWAGA: Przed użyciem", Options{Info: true}, "[INFO] Przed użyciem"},
		{"units", "Koszt serwisu: 150 zł + 23% VAT", Options{Bold: true}, "Koszt serwisu: **150 zł** + **23%** VAT"},
		{"step word", "Krok 2 Włączenie zasilania - naciśnij przycisk POWER", Options{Steps: true}, "[#2] Włączenie zasilania | naciśnij przycisk POWER"},
		{"placeholder", "3. Kalibracja", Options{Steps: true}, "[#3] Kalibracja | Wykonaj zgodnie z instrukcją"},
		{"substring emphasis", "niebezpieczeństwo!", Options{Bold: true}, "**niebezpieczeństwo**!"},
		{"header keyword", "INSTRUKCJA OBSŁUGI URZĄDZENIA", Options{Headers: true}, "# INSTRUKCJA OBSŁUGI URZĄDZENIA"},
		{"uppercase folding", "WAŻNE informacje", Options{Bold: true}, "**WAŻNE** informacje"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Format(tt.input, tt.opts, lex)
			if got != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"lone cr", "a\rb", "a\nb"},
		{"tabs", "a\tb", "a b"},
		{"space runs", "a    b", "a b"},
		{"trim", "  a  ", "a"},
		{"nfc", "e\u0301", "\u00e9"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tt.name, tt.input, got, tt.expected)
		}
	}
}

func TestFormat_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"1. Check cables - inspect all connections",
		"SAFETY FIRST\n\nNote: back up first\n• dot",
		"this is important now, pay 20 EUR",
	}

	for _, input := range inputs {
		once := Format(input, AllOptions(), nil)
		twice := Format(once, AllOptions(), nil)
		if once != twice {
			t.Errorf("Format not idempotent for %q:\n once: %q\ntwice: %q", input, once, twice)
		}
	}
}

func FuzzFormat(f *testing.F) {
	for _, s := range []string{"", "1. a - b", "UWAGA: x", "** alert", "• x", "12,5% VAT"} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		out := Format(input, AllOptions(), nil)
		if !strings.HasPrefix(markup.Transform(out), `<div class="preview-content">`) {
			t.Fatalf("Transform(Format(%q)) lost its wrapper", input)
		}
	})
}
