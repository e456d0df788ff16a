package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged (no WithUnsafe needed) and are
// turned into <mark> tags after HTML generation.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

// byteOrderMark is stripped from the start of input files.
const byteOrderMark = "\uFEFF"

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// Preprocessor prepares source text before HTML conversion.
type Preprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// MarkupPreprocessor normalizes markup input. Blank lines are kept since the
// transformer already tolerates them.
type MarkupPreprocessor struct{}

// Preprocess strips a byte order mark and normalizes line endings.
func (p *MarkupPreprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return NormalizeLineEndings(strings.TrimPrefix(content, byteOrderMark))
}

// MarkdownPreprocessor applies transformations before Goldmark conversion.
type MarkdownPreprocessor struct{}

// Preprocess normalizes line endings, converts ==highlight== syntax to
// placeholders and compresses runs of blank lines.
func (p *MarkdownPreprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(strings.TrimPrefix(content, byteOrderMark))
	content = highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}

// Compile-time interface checks.
var (
	_ Preprocessor = (*MarkupPreprocessor)(nil)
	_ Preprocessor = (*MarkdownPreprocessor)(nil)
)
