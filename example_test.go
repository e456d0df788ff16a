package md2png_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alnah/go-md2png"
)

// Example demonstrates markup to HTML conversion.
// For image output, leave HTMLOnly unset (requires Chrome).
func Example() {
	conv, err := md2png.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), md2png.Input{
		Content:  "# Hello World\n- first item\n[INFO] Read me first",
		HTMLOnly: true, // Skip rasterization for this example
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html := string(result.HTML)
	if strings.Contains(html, "<h1") && strings.Contains(html, "info-box") {
		fmt.Println("HTML generated successfully")
	}
	// Output: HTML generated successfully
}

// Example_markdown demonstrates CommonMark input on the dark theme.
func Example_markdown() {
	conv, err := md2png.NewConverter(md2png.WithTheme(md2png.ThemeDark))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), md2png.Input{
		Content:  "# Notes\n\n| a | b |\n|---|---|\n| 1 | 2 |",
		Syntax:   md2png.SyntaxMarkdown,
		Title:    "Notes",
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.HTML), "<table>") {
		fmt.Println("Markdown table rendered")
	}
	// Output: Markdown table rendered
}

// Example_autoFormat demonstrates formatting plain notes before rendering.
func Example_autoFormat() {
	conv, err := md2png.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), md2png.Input{
		Content:    "SAFETY RULES\n1. Wash hands - before work",
		AutoFormat: true,
		HTMLOnly:   true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.HTML), "step-box-1") {
		fmt.Println("Step box generated")
	}
	// Output: Step box generated
}

// Example_withCustomCSS demonstrates injecting custom CSS.
func Example_withCustomCSS() {
	conv, err := md2png.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), md2png.Input{
		Content:  "# Styled",
		CSS:      "h1 { color: navy; }",
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.HTML), "color: navy") {
		fmt.Println("Custom CSS applied")
	}
	// Output: Custom CSS applied
}

// ExampleConverterPool demonstrates converting several documents in parallel.
func ExampleConverterPool() {
	pool := md2png.NewConverterPool(2)
	defer pool.Close()

	docs := []string{"# One", "# Two", "# Three"}
	var wg sync.WaitGroup
	var mu sync.Mutex
	converted := 0

	for _, doc := range docs {
		wg.Add(1)
		go func(content string) {
			defer wg.Done()

			conv := pool.Acquire()
			if conv == nil {
				return
			}
			defer pool.Release(conv)

			if _, err := conv.Convert(context.Background(), md2png.Input{Content: content, HTMLOnly: true}); err == nil {
				mu.Lock()
				converted++
				mu.Unlock()
			}
		}(doc)
	}
	wg.Wait()

	fmt.Println("converted:", converted)
	// Output: converted: 3
}

func ExampleTransform() {
	fmt.Println(md2png.Transform("**hi** there"))
	// Output: <div class="preview-content"><p><strong>hi</strong> there</p></div>
}

func ExampleAutoFormat() {
	fmt.Println(md2png.AutoFormat("SAFETY RULES\n1. Wash hands - before work\n• milk", md2png.AllFormatOptions()))
	// Output:
	// # SAFETY RULES
	// [#1] Wash hands | before work
	// - milk
}

func ExampleTableFromText() {
	fmt.Print(md2png.TableFromText("name,qty\nmilk,2", md2png.TableOptions{Header: true}))
	// Output:
	// | name | qty |
	// |-----------|-----------|
	// | milk | 2 |
}

func ExampleStats() {
	c := md2png.Stats("hello big world")
	fmt.Println(c.Words, c.Chars, c.CharsNoSpaces)
	// Output: 3 15 13
}
