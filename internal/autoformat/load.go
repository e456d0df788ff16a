package autoformat

import (
	"fmt"
	"sync"

	"github.com/alnah/go-md2png/internal/assets"
)

// LexiconLoader loads raw lexicon YAML by name. assets.AssetLoader
// satisfies it.
type LexiconLoader interface {
	LoadLexicon(name string) (string, error)
}

// Load reads the named lexicon through loader and compiles it.
func Load(loader LexiconLoader, name string) (*Lexicon, error) {
	data, err := loader.LoadLexicon(name)
	if err != nil {
		return nil, err
	}
	lex, err := ParseLexicon([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("lexicon %q: %w", name, err)
	}
	return lex, nil
}

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	lex, err := Load(assets.NewEmbeddedLoader(), assets.DefaultLexiconName)
	if err != nil {
		panic("autoformat: embedded default lexicon: " + err.Error())
	}
	return lex
})

// DefaultLexicon returns the built-in English lexicon. The value is shared
// and must not be modified.
func DefaultLexicon() *Lexicon {
	return defaultLexicon()
}
