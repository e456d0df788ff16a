// Package markup converts the line-oriented preview markup into HTML.
//
// The conversion runs in two stages:
//   - Inline spans (bold, italic, strikethrough, images, links, inline code)
//     are rewritten over the whole text by an ordered list of passes.
//   - The result is split into lines, each line is classified into a block
//     element, and a small state machine opens and closes list, table and
//     blockquote containers while the lines are emitted.
//
// Supported grammar:
//
//	**bold**  *italic*  ~~strike~~  `code`  ![alt](url)  [text](url)
//	# H1   ## H2   ### H3   [INFO] text   [#N] Title | Description
//	- item   1. item   > quote   ---   | a | b |
//
// Transform never fails: anything that does not match a construct is emitted
// as a paragraph, and unterminated inline markers pass through literally.
// Output is not escaped; callers treat the input as trusted.
package markup
