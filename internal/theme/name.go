package theme

import (
	"strings"

	"github.com/alnah/go-md2png/internal/assets"
)

// Name identifies a theme.
type Name string

// Known themes.
const (
	Light Name = "light"
	Dark  Name = "dark"
)

// ParseName maps a stored or user-supplied value to a theme. Only "dark"
// (any case, surrounding space ignored) selects Dark; everything else,
// including the empty string, is Light.
func ParseName(s string) Name {
	if strings.EqualFold(strings.TrimSpace(s), string(Dark)) {
		return Dark
	}
	return Light
}

// IsKnown reports whether s names a theme exactly, for validating input
// that should not silently fall back to Light.
func IsKnown(s string) bool {
	return s == string(Light) || s == string(Dark)
}

// StyleName returns the asset style holding the theme's palette.
func (n Name) StyleName() string {
	if n == Dark {
		return assets.DarkStyleName
	}
	return assets.LightStyleName
}

// String implements fmt.Stringer.
func (n Name) String() string {
	return string(n)
}
