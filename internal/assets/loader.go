package assets

// AssetLoader defines the contract for loading CSS styles and formatter
// lexicons. Implementations may load from embedded assets, filesystem, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadLexicon loads a YAML lexicon by name (without .yaml extension).
	// Returns ErrLexiconNotFound if the lexicon doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadLexicon(name string) (string, error)
}
