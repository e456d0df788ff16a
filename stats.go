package md2png

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Counts holds text statistics. Characters are user-perceived characters
// (grapheme clusters), so an emoji with modifiers counts once.
type Counts struct {
	Words         int
	Chars         int
	CharsNoSpaces int
}

// Stats counts the words and characters of text. Words are runs of
// non-whitespace.
func Stats(text string) Counts {
	counts := Counts{Words: len(strings.Fields(text))}

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		counts.Chars++
		if !isSpaceCluster(g.Runes()) {
			counts.CharsNoSpaces++
		}
	}
	return counts
}

// isSpaceCluster reports whether a grapheme cluster is whitespace. "\r\n"
// is a single cluster.
func isSpaceCluster(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
