package main

import (
	"fmt"

	md2png "github.com/alnah/go-md2png"
)

// runStats prints word and character counts.
func runStats(args []string, env *Environment) error {
	positional, err := parseSimpleFlags("stats", args, env.Stdout, printStatsUsage)
	if err != nil {
		return err
	}

	text, err := readSource(positional, env)
	if err != nil {
		return err
	}

	c := md2png.Stats(text)
	fmt.Fprintf(env.Stdout, "Words: %d\n", c.Words)
	fmt.Fprintf(env.Stdout, "Characters: %d\n", c.Chars)
	fmt.Fprintf(env.Stdout, "Characters (no spaces): %d\n", c.CharsNoSpaces)
	return nil
}
