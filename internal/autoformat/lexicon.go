package autoformat

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-md2png/internal/tablegen"
	"github.com/alnah/go-md2png/internal/yamlutil"
)

// Category groups keywords by the heuristic that consumes them.
type Category string

// Keyword categories.
const (
	CategoryHeader   Category = "header"   // promotes a line to H1
	CategoryEmphasis Category = "emphasis" // wrapped in bold
	CategoryInfo     Category = "info"     // lead-in replaced by an info box
	CategoryAlert    Category = "alert"    // info box after alert punctuation
)

// ErrInvalidLexicon indicates a lexicon that cannot drive the heuristics.
var ErrInvalidLexicon = errors.New("invalid lexicon")

// Lexicon holds the language-specific word lists used by Format. Localizing
// the formatter means writing a new lexicon, not changing code.
type Lexicon struct {
	Name string `yaml:"name"`

	// WholeWords restricts emphasis keywords to whole-word matches. When
	// false a keyword also matches inside a longer word.
	WholeWords bool `yaml:"wholeWords"`

	Keywords        map[Category][]string `yaml:"keywords"`
	Units           []string              `yaml:"units"`
	Bullets         []string              `yaml:"bullets"`
	StepSeparators  []string              `yaml:"stepSeparators"`
	StepWords       []string              `yaml:"stepWords"`
	StepPlaceholder string                `yaml:"stepPlaceholder"`

	Table tablegen.Labels `yaml:"table"`

	patterns *patterns
}

// patterns are the expressions compiled from a lexicon.
type patterns struct {
	header   *regexp.Regexp // nil when the category is empty
	emphasis *regexp.Regexp
	quantity *regexp.Regexp
	bullet   *regexp.Regexp
	step     *regexp.Regexp
	info     *regexp.Regexp
	infoHead *regexp.Regexp
	alert    *regexp.Regexp
	alertRun *regexp.Regexp
}

// ParseLexicon parses and compiles a YAML lexicon. Unknown fields are
// rejected.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yamlutil.UnmarshalStrict(data, &lex); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	if err := lex.Compile(); err != nil {
		return nil, err
	}
	return &lex, nil
}

// Validate checks the lexicon for values Format cannot use.
func (l *Lexicon) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidLexicon)
	}
	for cat := range l.Keywords {
		switch cat {
		case CategoryHeader, CategoryEmphasis, CategoryInfo, CategoryAlert:
		default:
			return fmt.Errorf("%w: unknown keyword category %q", ErrInvalidLexicon, cat)
		}
	}
	for _, sep := range l.StepSeparators {
		if strings.TrimSpace(sep) == "" {
			return fmt.Errorf("%w: blank step separator", ErrInvalidLexicon)
		}
	}
	for _, b := range l.Bullets {
		if b == "" {
			return fmt.Errorf("%w: empty bullet", ErrInvalidLexicon)
		}
	}
	return nil
}

// Compile validates the lexicon and prepares its patterns. It must be
// called before a hand-built Lexicon is passed to Format.
func (l *Lexicon) Compile() error {
	if err := l.Validate(); err != nil {
		return err
	}

	p := &patterns{}
	if alt := alternation(l.Keywords[CategoryHeader]); alt != "" {
		p.header = regexp.MustCompile(`(?i)` + alt)
	}
	if alt := alternation(l.Keywords[CategoryEmphasis]); alt != "" {
		p.emphasis = regexp.MustCompile(`(?i)` + alt)
	}
	if alt := alternation(l.Units); alt != "" {
		p.quantity = regexp.MustCompile(`(?i)\d+(?:[.,]\d+)?\s*(?:` + alt + `)`)
	}
	if alt := alternation(l.Bullets); alt != "" {
		p.bullet = regexp.MustCompile(`^\s*(?:` + alt + `)\s+`)
	}

	stepWord := ""
	if alt := alternation(l.StepWords); alt != "" {
		stepWord = `(?:(?:` + alt + `)\s*)?`
	}
	p.step = regexp.MustCompile(`(?i)^(?:-\s*)?` + stepWord + `(\d+)[.):\s]+(.+)`)

	// A lead-in may already be bold when the emphasis pass ran first.
	if alt := alternation(l.Keywords[CategoryInfo]); alt != "" {
		p.info = regexp.MustCompile(`(?i)^\s*(?:\*\*)?(?:` + alt + `)(?:\*\*)?[:.!\s]`)
		p.infoHead = regexp.MustCompile(`(?i)^\s*(?:\*\*)?(?:` + alt + `)(?:\*\*)?[:.!\s]*`)
	}
	if alt := alternation(l.Keywords[CategoryAlert]); alt != "" {
		p.alert = regexp.MustCompile(`(?i)^\s*(?:\*{1,3}|!{1,3})\s*(?:\*\*)?(?:` + alt + `).`)
		p.alertRun = regexp.MustCompile(`^\s*(?:\*{1,3}|!{1,3})\s*`)
	}

	l.patterns = p
	return nil
}

// alternation quotes words and joins them longest first, so a keyword that
// prefixes another never shadows it.
func alternation(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			quoted = append(quoted, w)
		}
	}
	sort.SliceStable(quoted, func(i, j int) bool {
		return len(quoted[i]) > len(quoted[j])
	})
	for i, w := range quoted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
