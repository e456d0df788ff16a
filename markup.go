package md2png

import (
	"fmt"

	"github.com/alnah/go-md2png/internal/assets"
	"github.com/alnah/go-md2png/internal/autoformat"
	"github.com/alnah/go-md2png/internal/markup"
	"github.com/alnah/go-md2png/internal/tablegen"
)

// Transform converts markup to an HTML fragment wrapped in a single
// <div class="preview-content">. It never fails and is safe for concurrent
// use. The output is not escaped: raw HTML in the input passes through.
func Transform(text string) string {
	return markup.Transform(text)
}

// AutoFormat rewrites unstructured text into markup with the built-in
// English lexicon.
func AutoFormat(raw string, opts FormatOptions) string {
	return autoformat.Format(raw, autoformat.Options(opts), autoformat.DefaultLexicon())
}

// AutoFormatWith rewrites text with a lexicon loaded by name through
// loader. A nil loader uses the embedded lexicons.
func AutoFormatWith(raw string, opts FormatOptions, loader AssetLoader, lexicon string) (string, error) {
	lex, err := loadLexicon(loader, lexicon)
	if err != nil {
		return "", err
	}
	return autoformat.Format(raw, autoformat.Options(opts), lex), nil
}

// TableOptions configures table generation.
type TableOptions struct {
	Columns   int    // grid columns, default 3
	Rows      int    // grid rows, default 3
	Header    bool   // first row is a header, followed by a separator row
	Separator string // delimiter for TableFromText, "auto" to detect
	Align     bool   // pad cells to their column's display width
	Lexicon   string // lexicon providing the placeholder labels
}

// BasicTable returns a placeholder table. Labels come from the options'
// lexicon, loaded through loader (nil uses the embedded lexicons).
func BasicTable(opts TableOptions, loader AssetLoader) (string, error) {
	lex, err := loadLexicon(loader, opts.Lexicon)
	if err != nil {
		return "", err
	}
	return tablegen.Basic(opts.Columns, opts.Rows, opts.Header, lex.Table), nil
}

// TableFromText converts delimited text into table markup. It returns ""
// when text holds no non-blank line.
func TableFromText(text string, opts TableOptions) string {
	sep := opts.Separator
	if sep == "" {
		sep = tablegen.SeparatorAuto
	}
	return tablegen.FromText(text, sep, opts.Header, tablegen.Options{Align: opts.Align})
}

// loadLexicon loads a lexicon by name, the default one when name is empty.
func loadLexicon(loader AssetLoader, name string) (*autoformat.Lexicon, error) {
	if name == "" {
		name = assets.DefaultLexiconName
	}
	var l autoformat.LexiconLoader = assets.NewEmbeddedLoader()
	if loader != nil {
		l = loader
	}
	lex, err := autoformat.Load(l, name)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon %q: %w", name, convertAssetError(err))
	}
	return lex, nil
}
