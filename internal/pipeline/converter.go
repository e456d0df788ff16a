package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2png/internal/markup"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// previewOpen and previewClose wrap Markdown output in the same container
// the markup transformer emits, so one stylesheet serves both syntaxes.
const (
	previewOpen  = `<div class="preview-content">`
	previewClose = `</div>`
)

// HTMLConverter abstracts source text to HTML document conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// MarkupConverter converts markup text with the markup transformer.
type MarkupConverter struct {
	// Title is the document title. Empty uses DefaultTitle.
	Title string

	// Head is inserted into <head>, e.g. an icon font stylesheet link.
	Head string
}

// ToHTML converts markup to a standalone HTML5 document. The transformer
// cannot fail; only cancellation returns an error.
func (c *MarkupConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Document(c.Title, c.Head, markup.Transform(content)), nil
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md    goldmark.Markdown
	Title string
	Head  string
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline colors, no extra stylesheet to ship
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		body := previewOpen + ConvertMarkPlaceholders(buf.String()) + previewClose
		done <- result{html: Document(c.Title, c.Head, body)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*MarkupConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)
