package pipeline

import (
	"context"
	"testing"
)

func TestMarkupPreprocessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "a\nb", "a\nb"},
		{"CRLF", "a\r\nb\r\n", "a\nb\n"},
		{"lone CR", "a\rb", "a\nb"},
		{"BOM stripped", "\uFEFF# Title", "# Title"},
		{"blank lines kept", "a\n\n\n\nb", "a\n\n\n\nb"},
		{"highlight untouched", "==x==", "==x=="},
	}

	p := &MarkupPreprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.Preprocess(context.Background(), tt.input); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMarkdownPreprocessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"highlight", "==x==", MarkStartPlaceholder + "x" + MarkEndPlaceholder},
		{"two highlights", "==a== and ==b==", MarkStartPlaceholder + "a" + MarkEndPlaceholder + " and " + MarkStartPlaceholder + "b" + MarkEndPlaceholder},
		{"unterminated", "==a", "==a"},
		{"blank lines compressed", "a\n\n\n\nb", "a\n\nb"},
		{"CRLF then compress", "a\r\n\r\n\r\nb", "a\n\nb"},
		{"BOM stripped", "\uFEFFx", "x"},
	}

	p := &MarkdownPreprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.Preprocess(context.Background(), tt.input); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocess_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := "a\r\n==b=="
	if got := (&MarkdownPreprocessor{}).Preprocess(ctx, in); got != in {
		t.Errorf("cancelled Preprocess changed content: %q", got)
	}
	if got := (&MarkupPreprocessor{}).Preprocess(ctx, in); got != in {
		t.Errorf("cancelled Preprocess changed content: %q", got)
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	in := "<p>" + MarkStartPlaceholder + "x" + MarkEndPlaceholder + "</p>"
	if got := ConvertMarkPlaceholders(in); got != "<p><mark>x</mark></p>" {
		t.Errorf("ConvertMarkPlaceholders() = %q", got)
	}
}
