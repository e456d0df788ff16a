package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2png <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render markup files to PNG or JPEG images")
	fmt.Fprintln(w, "  format     Auto-format plain text into markup")
	fmt.Fprintln(w, "  table      Generate table markup")
	fmt.Fprintln(w, "  stats      Count words and characters")
	fmt.Fprintln(w, "  theme      Show or set the default theme")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A file or directory as first argument implies 'render'.")
	fmt.Fprintln(w, "Run 'md2png help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2png render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markup files to images.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File (.md, .markdown, .txt, .mk), directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Render timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --theme <s>           Theme: light, dark (default: saved preference)")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --markdown            Read input as Markdown instead of markup")
	fmt.Fprintln(w, "  -a, --auto-format         Auto-format plain text before rendering")
	fmt.Fprintln(w, "      --lexicon <name>      Auto-format lexicon: en, pl")
	fmt.Fprintln(w, "      --icons <url>         Icon font stylesheet for step boxes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Image:")
	fmt.Fprintln(w, "  -f, --format <s>          Format: png, jpeg")
	fmt.Fprintln(w, "      --quality <n>         JPEG quality (1-100, default: 92)")
	fmt.Fprintln(w, "      --width <n>           Canvas width in CSS pixels (default: 900)")
	fmt.Fprintln(w, "      --height <n>          Minimum canvas height (default: 600)")
	fmt.Fprintln(w, "      --scale <f>           Device scale factor (default: 2)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Extra CSS style name or file")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and lexicons/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --html                Also write the HTML document")
	fmt.Fprintln(w, "      --html-only           Write the HTML document only")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stdin output is named image-YYYYMMDD-HHmmss unless -o names a file.")
}

// printFormatUsage prints usage for the format command.
func printFormatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2png format [file|-] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite plain text as markup: headings, bold keywords, lists,")
	fmt.Fprintln(w, "step boxes and info boxes.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --lexicon <name>      Lexicon: en, pl")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom lexicons/ directory")
	fmt.Fprintln(w, "      --no-headers          Do not promote heading-like lines")
	fmt.Fprintln(w, "      --no-bold             Do not bold keywords and quantities")
	fmt.Fprintln(w, "      --no-lists            Do not convert numbered and bulleted lines")
	fmt.Fprintln(w, "      --no-steps            Do not create step boxes")
	fmt.Fprintln(w, "      --no-info             Do not create info boxes")
}

// printTableUsage prints usage for the table command.
func printTableUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2png table [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print table markup: a placeholder grid, or a table built from")
	fmt.Fprintln(w, "delimited text with --from.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --cols <n>            Columns (default: 3)")
	fmt.Fprintln(w, "      --rows <n>            Rows, header included (default: 3)")
	fmt.Fprintln(w, "      --header              First row is a header")
	fmt.Fprintln(w, "      --from <file|->       Build from delimited text")
	fmt.Fprintln(w, "      --sep <s>             Delimiter: auto, |, tab, ;, , (default: auto)")
	fmt.Fprintln(w, "      --align               Pad cells to align columns")
	fmt.Fprintln(w, "      --lexicon <name>      Lexicon for placeholder labels")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
}

// printStatsUsage prints usage for the stats command.
func printStatsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2png stats [file|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Count words and characters. Markup counts as text.")
}

// printThemeUsage prints usage for the theme command.
func printThemeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2png theme [light|dark]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the saved theme, or save a new default.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2png config [-c name]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
}

// commandUsage maps command names to their usage printers.
var commandUsage = map[string]func(io.Writer){
	"render": printRenderUsage,
	"format": printFormatUsage,
	"table":  printTableUsage,
	"stats":  printStatsUsage,
	"theme":  printThemeUsage,
	"config": printConfigUsage,
	"version": func(w io.Writer) {
		fmt.Fprintln(w, "Usage: md2png version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	},
	"help": func(w io.Writer) {
		fmt.Fprintln(w, "Usage: md2png help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	},
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	usage, ok := commandUsage[args[0]]
	if !ok {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	usage(env.Stdout)
	return nil
}
