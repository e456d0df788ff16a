// Package md2png renders a compact line-oriented markup to styled HTML and
// rasterizes it into PNG or JPEG images using headless Chrome.
//
// # Quick Start
//
// Create a converter, convert markup, and close when done:
//
//	conv, err := md2png.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, md2png.Input{
//	    Content: "# Hello\n[INFO] Rendered as an image",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.png", result.Image, 0644)
//
// The result contains both the image bytes (result.Image) and the themed
// HTML (result.HTML). Use Input.HTMLOnly to skip rasterization.
//
// # Markup
//
// Each line is classified on its own:
//
//	# Title             header with decorative stars
//	## Section          section header
//	### Subsection      subsection header with an accent border
//	[INFO] text         info box
//	[#1] Title | Text   step box, icons for steps 1 to 4
//	- item, 1. item     unordered and ordered lists
//	| a | b |           table row, rows containing --- are hidden
//	> quote             blockquote
//	---                 horizontal rule
//
// Inline: **bold**, *italic*, ~~strike~~, `code`, [text](url), ![alt](url)
// and raw <u>underline</u>. Transform returns the HTML fragment directly.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Optional auto-formatting of raw text into markup
//  2. Line ending normalization
//  3. Markup to HTML via the transformer, or Markdown via Goldmark
//  4. Relative image paths rewritten to file:// URLs
//  5. Theme palette, layout and export CSS injection
//  6. Theme color resolution in inline styles
//  7. Full-page screenshot via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2png.NewConverter(
//	    md2png.WithTimeout(time.Minute),
//	    md2png.WithTheme(md2png.ThemeDark),
//	    md2png.WithLexicon("pl"),
//	    md2png.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, md2png.Input{
//	    Content:    raw,
//	    AutoFormat: true,
//	    SourceDir:  "/path/to/notes",
//	    Image:      &md2png.ImageSettings{Format: md2png.FormatJPEG, Quality: 85},
//	})
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple browser instances:
//
//	pool := md2png.NewConverterPool(md2png.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Browser Requirements
//
// Rasterization requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package md2png
