// Package pipeline implements the text-to-HTML stages of rendering:
//   - Input preprocessing (line endings, ==highlight== for Markdown)
//   - Conversion to an HTML document, from markup or from Markdown
//   - Relative image path rewriting
//   - CSS injection into HTML documents
//
// Rasterization is handled separately by the root md2png package using
// headless Chrome (go-rod). Theme color resolution lives in internal/theme.
package pipeline
