package main

import (
	md2png "github.com/alnah/go-md2png"
)

// runFormat auto-formats raw text into markup.
func runFormat(args []string, env *Environment) error {
	flags, positional, err := parseFormatFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	raw, err := readSource(positional, env)
	if err != nil {
		return err
	}

	loader, err := assetLoaderFor(flags.assetPath, env)
	if err != nil {
		return err
	}

	opts := md2png.FormatOptions{
		Headers: !flags.noHeaders,
		Bold:    !flags.noBold,
		Lists:   !flags.noLists,
		Steps:   !flags.noSteps,
		Info:    !flags.noInfo,
	}
	formatted, err := md2png.AutoFormatWith(raw, opts, loader, lexiconName(flags.lexicon, env))
	if err != nil {
		return err
	}

	return writeResult(flags.output, withNewline(formatted), env)
}

// withNewline terminates non-empty text with a newline.
func withNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
