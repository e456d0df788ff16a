// Package theme handles the light and dark color themes: palette parsing,
// resolution of CSS custom properties in rendered HTML and the persisted
// theme preference.
//
// Rendered markup colors elements through custom properties such as
// var(--highlight-color). Chrome resolves those from the palette style
// sheet, but HTML written to disk or handed to another renderer has no
// palette, so Resolve substitutes the concrete values into inline styles.
package theme
