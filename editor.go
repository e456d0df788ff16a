package md2png

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Editor is the text surface edit actions operate on. Offsets are byte
// offsets into Text.
type Editor interface {
	Text() string
	Selection() Range
	ApplyEdit(r Range, text string)
}

// Range is a half-open byte range [Start, End). An empty range is a caret.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range selects nothing.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Buffer is an in-memory Editor.
type Buffer struct {
	text string
	sel  Range
}

// NewBuffer returns a Buffer holding text with the caret at the end.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text, sel: Range{Start: len(text), End: len(text)}}
}

// Text returns the buffer content.
func (b *Buffer) Text() string {
	return b.text
}

// Selection returns the current selection.
func (b *Buffer) Selection() Range {
	return b.sel
}

// Select sets the selection, clamped to the content.
func (b *Buffer) Select(r Range) {
	b.sel = b.clamp(r)
}

// ApplyEdit replaces r with text and leaves the caret after the inserted
// text.
func (b *Buffer) ApplyEdit(r Range, text string) {
	r = b.clamp(r)
	b.text = b.text[:r.Start] + text + b.text[r.End:]
	end := r.Start + len(text)
	b.sel = Range{Start: end, End: end}
}

// clamp orders r and keeps it inside the content.
func (b *Buffer) clamp(r Range) Range {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	r.Start = min(max(r.Start, 0), len(b.text))
	r.End = min(max(r.End, 0), len(b.text))
	return r
}

// selected returns the text under the selection.
func selected(e Editor) (Range, string) {
	r := e.Selection()
	text := e.Text()
	if r.Start < 0 || r.End > len(text) || r.Start > r.End {
		return r, ""
	}
	return r, text[r.Start:r.End]
}

// Insert replaces the selection with text.
func Insert(e Editor, text string) {
	e.ApplyEdit(e.Selection(), text)
}

// Wrap surrounds the selection with marker and its closing counterpart.
func Wrap(e Editor, marker string) {
	r, sel := selected(e)
	e.ApplyEdit(r, marker+sel+ClosingMarker(marker))
}

// ClosingMarker returns the text that closes marker: the end tag for
// <span>, <div> and <u> openers, the marker itself otherwise ("**", "~~").
func ClosingMarker(marker string) string {
	switch {
	case strings.HasPrefix(marker, "<span"):
		return "</span>"
	case strings.HasPrefix(marker, "<div"):
		return "</div>"
	case strings.HasPrefix(marker, "<u>"):
		return "</u>"
	default:
		return marker
	}
}

// Case is a letter case transformation.
type Case int

// Case transformations.
const (
	CaseUpper Case = iota
	CaseLower
	CaseCapitalize
)

// ParseCase maps "upper", "lower" or "capitalize" to a Case.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(s) {
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	case "capitalize":
		return CaseCapitalize, nil
	default:
		return 0, fmt.Errorf("unknown case %q (must be upper, lower or capitalize)", s)
	}
}

// ChangeCase rewrites the selection's letter case. An empty selection is
// left alone.
func ChangeCase(e Editor, c Case) {
	r, sel := selected(e)
	if r.Empty() {
		return
	}
	e.ApplyEdit(r, ApplyCase(sel, c))
}

// ApplyCase transforms s. Capitalize lowercases everything, then uppercases
// the first character of s and of every run following whitespace.
func ApplyCase(s string, c Case) string {
	switch c {
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	case CaseCapitalize:
		return capitalize(cases.Lower(language.Und).String(s))
	default:
		return s
	}
}

func capitalize(s string) string {
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	start := true
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(r)
			start = true
		case start:
			b.WriteString(upper.String(s[:size]))
			start = false
		default:
			b.WriteString(s[:size])
		}
		s = s[size:]
	}
	return b.String()
}

// InsertTable inserts generated table markup on its own lines. Empty
// markup inserts nothing.
func InsertTable(e Editor, table string) {
	if table == "" {
		return
	}
	e.ApplyEdit(e.Selection(), "\n"+strings.TrimRight(table, "\n")+"\n\n")
}

// InsertLink replaces the selection with a [text](url) link. Both fields
// are required.
func InsertLink(e Editor, text, linkURL string) error {
	if text == "" || linkURL == "" {
		return ErrInvalidLink
	}
	e.ApplyEdit(e.Selection(), "["+text+"]("+linkURL+")")
	return nil
}

// DefaultImageAlt is the alt text used when none is given.
const DefaultImageAlt = "Image"

// InsertImage replaces the selection with an image line. The URL is
// required; alt defaults to DefaultImageAlt.
func InsertImage(e Editor, imageURL, alt string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidImageURL)
	}
	if alt = strings.TrimSpace(alt); alt == "" {
		alt = DefaultImageAlt
	}
	e.ApplyEdit(e.Selection(), "!["+alt+"]("+imageURL+")\n")
	return nil
}

// Clear empties the editor.
func Clear(e Editor) {
	e.ApplyEdit(Range{Start: 0, End: len(e.Text())}, "")
}

// ValidImageURL reports whether s is an absolute http or https URL.
func ValidImageURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
