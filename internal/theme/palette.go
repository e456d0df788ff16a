package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ErrInvalidPalette indicates palette CSS that cannot be parsed.
var ErrInvalidPalette = errors.New("invalid palette")

// Palette maps custom property names, including the leading "--", to their
// values.
type Palette map[string]string

// LoadPalette collects every custom property declared in css. Later
// declarations override earlier ones, as in the cascade. Rules nested in
// at-rules are included.
func LoadPalette(source string) (Palette, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}

	p := Palette{}
	collect(p, sheet.Rules)
	return p, nil
}

func collect(p Palette, rules []*css.Rule) {
	for _, rule := range rules {
		for _, decl := range rule.Declarations {
			if strings.HasPrefix(decl.Property, "--") {
				p[decl.Property] = decl.Value
			}
		}
		collect(p, rule.Rules)
	}
}

// Lookup returns the value of a custom property. The name may be given
// with or without the leading "--".
func (p Palette) Lookup(name string) (string, bool) {
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	v, ok := p[name]
	return v, ok
}

// Names returns the property names in sorted order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new palette with the entries of other overriding p.
func (p Palette) Merge(other Palette) Palette {
	out := make(Palette, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
