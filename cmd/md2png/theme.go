package main

import (
	"fmt"
	"strings"

	md2png "github.com/alnah/go-md2png"
	"github.com/alnah/go-md2png/internal/theme"
)

// runTheme shows the saved theme, or saves a new one.
func runTheme(args []string, env *Environment) error {
	positional, err := parseSimpleFlags("theme", args, env.Stdout, printThemeUsage)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one theme, got %d", ErrUsage, len(positional))
	}

	pref, err := theme.NewPreference(env.ConfigDir)
	if err != nil {
		return err
	}

	if len(positional) == 0 {
		name, err := pref.Load()
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, name)
		return nil
	}

	value := strings.ToLower(positional[0])
	if !theme.IsKnown(value) {
		return fmt.Errorf("%w: %q (must be light or dark)", md2png.ErrInvalidTheme, positional[0])
	}
	if err := pref.Save(theme.Name(value)); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Theme set to %s\n", value)
	return nil
}
