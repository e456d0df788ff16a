package autoformat

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Options selects the heuristics Format applies.
type Options struct {
	Headers bool
	Bold    bool
	Lists   bool
	Steps   bool
	Info    bool
}

// AllOptions enables every heuristic.
func AllOptions() Options {
	return Options{Headers: true, Bold: true, Lists: true, Steps: true, Info: true}
}

// Header promotion limits.
const (
	minHeaderRunes   = 4  // shorter lines are never headers
	minHeaderLetters = 3  // letters needed before the case ratio means anything
	maxH2Runes       = 50 // uppercase lines at least this long stay paragraphs
)

// Step numbers reserved for step boxes.
const (
	minStep = 1
	maxStep = 4
)

// defaultPlaceholder is the step description used when a lexicon has none.
const defaultPlaceholder = "Follow the instructions"

var (
	multiSpace    = regexp.MustCompile(`[ ]{2,}`)
	orderedMarker = regexp.MustCompile(`^\s*(\d+)[.)]\s`)
	orderedPrefix = regexp.MustCompile(`^\s*\d+[.)]\s*`)
)

// Normalize applies the cleanup every Format call starts with: line endings
// become LF, tabs become spaces, space runs collapse to one, the text is
// trimmed and put in Unicode NFC.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	text = multiSpace.ReplaceAllString(text, " ")
	return norm.NFC.String(strings.TrimSpace(text))
}

// formatter runs the heuristics of one Format call.
type formatter struct {
	opts Options
	lex  *Lexicon
	p    *patterns
}

// Format rewrites raw text into markup. A nil lexicon selects
// DefaultLexicon. A lexicon that was never compiled is compiled on a copy;
// one that fails to compile is replaced by DefaultLexicon.
func Format(raw string, opts Options, lex *Lexicon) string {
	lex = ready(lex)
	f := &formatter{opts: opts, lex: lex, p: lex.patterns}

	lines := strings.Split(Normalize(raw), "\n")
	for i, line := range lines {
		lines[i] = f.line(strings.TrimSpace(line))
	}
	return strings.Join(lines, "\n")
}

func ready(lex *Lexicon) *Lexicon {
	if lex == nil {
		return DefaultLexicon()
	}
	if lex.patterns != nil {
		return lex
	}
	cp := *lex
	if err := cp.Compile(); err != nil {
		return DefaultLexicon()
	}
	return &cp
}

// line applies the enabled heuristics to one trimmed line.
func (f *formatter) line(line string) string {
	if line == "" {
		return ""
	}
	if f.opts.Headers {
		line = f.header(line)
	}
	if f.opts.Bold {
		line = f.bold(line)
	}
	if f.opts.Lists {
		line = f.list(line)
	}
	if f.opts.Steps {
		line = f.step(line)
	}
	if f.opts.Info {
		line = f.info(line)
	}
	return line
}

// header promotes keyword lines to H1 and mostly-uppercase short lines to H2.
func (f *formatter) header(line string) string {
	runes := utf8.RuneCountInString(line)
	if runes < minHeaderRunes || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
		return line
	}

	letters, upper := 0, 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters < minHeaderLetters {
		return line
	}

	if f.p.header != nil && f.p.header.MatchString(line) {
		return "# " + line
	}
	if upper*2 > letters && runes < maxH2Runes {
		return "## " + line
	}
	return line
}

// bold wraps emphasis keywords and quantities with units.
func (f *formatter) bold(line string) string {
	if f.p.emphasis != nil {
		line = wrapBold(line, f.p.emphasis.FindAllStringIndex(line, -1), f.lex.WholeWords)
	}
	if f.p.quantity != nil {
		line = wrapBold(line, f.p.quantity.FindAllStringIndex(line, -1), false)
	}
	return line
}

// wrapBold surrounds each match with **. Matches already wrapped are left
// alone; with wholeWords, so are matches inside a longer word.
func wrapBold(s string, matches [][]int, wholeWords bool) string {
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4*len(matches))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if strings.HasSuffix(s[:start], "**") && strings.HasPrefix(s[end:], "**") {
			continue
		}
		if wholeWords && !isWordBoundary(s, start, end) {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString("**")
		b.WriteString(s[start:end])
		b.WriteString("**")
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

// isWordBoundary reports whether s[start:end] is not glued to a letter or
// digit on either side.
func isWordBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// list turns ordinals and bullet glyphs into dash bullets. Ordinals 1-4 are
// kept for the step pass when it is enabled.
func (f *formatter) list(line string) string {
	if m := orderedMarker.FindStringSubmatch(line); m != nil {
		if f.opts.Steps && isStepNumber(m[1]) {
			return line
		}
		return "- " + line[len(orderedPrefix.FindString(line)):]
	}
	if f.p.bullet != nil {
		if prefix := f.p.bullet.FindString(line); prefix != "" {
			return "- " + line[len(prefix):]
		}
	}
	return line
}

// step rewrites a leading step number 1-4 into a step box line.
func (f *formatter) step(line string) string {
	m := f.p.step.FindStringSubmatch(line)
	if m == nil || !isStepNumber(m[1]) {
		return line
	}

	n, _ := strconv.Atoi(m[1])
	head := "[#" + strconv.Itoa(n) + "] "
	content := strings.TrimSpace(m[2])
	if strings.Contains(content, "|") {
		return head + content
	}

	title, description := f.splitStep(content)
	return head + title + " | " + description
}

// splitStep divides step content into a title and a description.
func (f *formatter) splitStep(content string) (title, description string) {
	for _, sep := range f.lex.StepSeparators {
		if before, after, ok := strings.Cut(content, sep); ok {
			return strings.TrimSpace(before), strings.TrimSpace(after)
		}
	}

	words := strings.Split(content, " ")
	if len(words) > 5 {
		return strings.Join(words[:4], " "), strings.Join(words[4:], " ")
	}

	placeholder := f.lex.StepPlaceholder
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}
	return content, placeholder
}

// info replaces a lead-in word, or alert punctuation before an alert
// keyword, with an info box prefix.
func (f *formatter) info(line string) string {
	if f.p.info != nil && f.p.info.MatchString(line) {
		return "[INFO] " + line[len(f.p.infoHead.FindString(line)):]
	}
	if f.p.alert != nil && f.p.alert.MatchString(line) {
		return "[INFO] " + line[len(f.p.alertRun.FindString(line)):]
	}
	return line
}

// isStepNumber reports whether digits name a step 1-4. Overflowing
// numbers are not steps.
func isStepNumber(digits string) bool {
	n, err := strconv.Atoi(digits)
	return err == nil && n >= minStep && n <= maxStep
}
