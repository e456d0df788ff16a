package markup

import (
	"regexp"
	"strings"
)

// inlineCodeStyle is the inline style applied to `code` spans.
const inlineCodeStyle = "background-color: var(--card-bg); padding: 0.2rem 0.4rem; border-radius: 0px; font-family: monospace;"

// inlineRule rewrites one kind of inline span across the whole text.
type inlineRule struct {
	name    string
	rewrite func(string) string
}

// Precompiled inline patterns.
var (
	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	strikePattern = regexp.MustCompile(`~~([^~]+)~~`)
	imagePattern  = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	codePattern   = regexp.MustCompile("`([^`]+)`")
)

// inlineRules is the ordered inline pipeline. Images must run before links
// because ![alt](url) contains [alt](url), and both must run before inline
// code so that URLs are not split by code spans.
var inlineRules = []inlineRule{
	{name: "bold", rewrite: replaceWith(boldPattern, "<strong>$1</strong>")},
	{name: "italic", rewrite: replaceItalic},
	{name: "strikethrough", rewrite: replaceWith(strikePattern, "<s>$1</s>")},
	{name: "image", rewrite: replaceWith(imagePattern, `<img src="$2" alt="$1" class="content-image" loading="lazy" />`)},
	{name: "link", rewrite: replaceWith(linkPattern, `<a href="$2" target="_blank" rel="noopener noreferrer">$1</a>`)},
	{name: "code", rewrite: replaceWith(codePattern, `<code style="`+inlineCodeStyle+`">$1</code>`)},
}

// replaceWith returns a pass that replaces every match of re with tmpl.
func replaceWith(re *regexp.Regexp, tmpl string) func(string) string {
	return func(s string) string {
		return re.ReplaceAllString(s, tmpl)
	}
}

// ApplyInline runs every inline pass over text in pipeline order.
func ApplyInline(text string) string {
	for _, rule := range inlineRules {
		text = rule.rewrite(text)
	}
	return text
}

// replaceItalic wraps *X* in <em>, where X contains no '*', the opening star
// is not preceded by a star and the closing star is not followed by one.
// Adjacency is checked against the input, not the rewritten output.
func replaceItalic(s string) string {
	if strings.IndexByte(s, '*') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	last := 0
	i := 0
	for i < len(s) {
		if s[i] != '*' || (i > 0 && s[i-1] == '*') {
			i++
			continue
		}

		end := strings.IndexByte(s[i+1:], '*')
		if end <= 0 {
			// No closing star, or an empty body ("**").
			i++
			continue
		}
		closing := i + 1 + end
		if closing+1 < len(s) && s[closing+1] == '*' {
			i++
			continue
		}

		b.WriteString(s[last:i])
		b.WriteString("<em>")
		b.WriteString(s[i+1 : closing])
		b.WriteString("</em>")
		last = closing + 1
		i = closing + 1
	}

	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}
