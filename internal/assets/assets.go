package assets

import (
	"io/fs"
	"strings"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadLexicon loads a formatter lexicon by name using the default embedded
// loader. The content is raw YAML; internal/autoformat parses it.
// Returns ErrLexiconNotFound if the lexicon does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadLexicon(name string) (string, error) {
	return defaultLoader.LoadLexicon(name)
}

// EmbeddedStyles returns the names of the built-in styles, sorted.
func EmbeddedStyles() []string {
	return listNames(styles, "styles", ".css")
}

// EmbeddedLexicons returns the names of the built-in lexicons, sorted.
func EmbeddedLexicons() []string {
	return listNames(lexicons, "lexicons", ".yaml")
}

// listNames returns the file names in dir with ext stripped. fs.ReadDir
// returns entries sorted by name.
func listNames(fsys fs.FS, dir, ext string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ext); ok && !e.IsDir() {
			names = append(names, name)
		}
	}
	return names
}
