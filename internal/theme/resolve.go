package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrResolve indicates HTML that could not be parsed or rendered.
var ErrResolve = errors.New("resolving theme colors")

var (
	// styledSelector matches elements whose inline style uses a variable.
	styledSelector = cascadia.MustCompile(`[style*="var("]`)

	// varPattern matches var(--name) and var(--name, fallback). Fallbacks
	// holding parentheses are not supported.
	varPattern = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)\s*(?:,\s*([^()]*?))?\s*\)`)
)

// Resolve substitutes palette values for var() references in inline
// styles. content may be a fragment or a full document; a document keeps its
// doctype and head. A variable missing from the palette takes its fallback
// when one is given and is left untouched otherwise.
func Resolve(content string, p Palette) (string, error) {
	if len(p) == 0 || !strings.Contains(content, "var(") {
		return content, nil
	}

	if isDocument(content) {
		doc, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return "", fmt.Errorf("%w: parsing: %v", ErrResolve, err)
		}
		resolveTree(doc, p)

		var b strings.Builder
		b.Grow(len(content))
		if err := html.Render(&b, doc); err != nil {
			return "", fmt.Errorf("%w: rendering: %v", ErrResolve, err)
		}
		return b.String(), nil
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), ctx)
	if err != nil {
		return "", fmt.Errorf("%w: parsing: %v", ErrResolve, err)
	}

	var b strings.Builder
	b.Grow(len(content))
	for _, n := range nodes {
		resolveTree(n, p)
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("%w: rendering: %v", ErrResolve, err)
		}
	}
	return b.String(), nil
}

// isDocument reports whether content starts like a full HTML document.
func isDocument(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

// resolveTree rewrites the style attribute of every matching element under
// root, root included.
func resolveTree(root *html.Node, p Palette) {
	if root.Type != html.ElementNode && root.Type != html.DocumentNode {
		return
	}
	targets := styledSelector.MatchAll(root)
	for _, n := range targets {
		for i, attr := range n.Attr {
			if attr.Key == "style" {
				n.Attr[i].Val = ResolveValue(attr.Val, p)
			}
		}
	}
}

// ResolveValue substitutes var() references in a single CSS value.
func ResolveValue(value string, p Palette) string {
	return varPattern.ReplaceAllStringFunc(value, func(ref string) string {
		m := varPattern.FindStringSubmatch(ref)
		if v, ok := p[m[1]]; ok {
			return v
		}
		if m[2] != "" {
			return strings.TrimSpace(m[2])
		}
		return ref
	})
}
