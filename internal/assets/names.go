package assets

// Built-in style names. Base carries layout and typography, the theme
// styles carry only custom properties, and export holds the overrides
// applied when rasterizing.
const (
	BaseStyleName   = "base"
	LightStyleName  = "light"
	DarkStyleName   = "dark"
	ExportStyleName = "export"
)

// DefaultLexiconName is the name of the built-in formatter lexicon.
const DefaultLexiconName = "en"
