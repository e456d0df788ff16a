package main

import (
	"errors"
	"fmt"

	md2png "github.com/alnah/go-md2png"
)

// ErrNoTableData is returned when --from input holds no rows.
var ErrNoTableData = errors.New("no table rows in input")

// Table size bounds for the generated placeholder grid.
const (
	minTableSize = 1
	maxTableSize = 50
)

// runTable prints table markup, a placeholder grid or one built from
// delimited text.
func runTable(args []string, env *Environment) error {
	flags, positional, err := parseTableFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: table takes no arguments, use --from", ErrUsage)
	}

	opts := md2png.TableOptions{
		Columns:   flags.cols,
		Rows:      flags.rows,
		Header:    flags.header,
		Separator: flags.sep,
		Align:     flags.align,
		Lexicon:   lexiconName(flags.lexicon, env),
	}

	if flags.from != "" {
		text, err := readSource([]string{flags.from}, env)
		if err != nil {
			return err
		}
		table := md2png.TableFromText(text, opts)
		if table == "" {
			return fmt.Errorf("%w: %s", ErrNoTableData, flags.from)
		}
		return writeResult(flags.output, table, env)
	}

	if err := validateTableSize(flags.cols, flags.rows); err != nil {
		return err
	}

	loader, err := assetLoaderFor(flags.assetPath, env)
	if err != nil {
		return err
	}
	table, err := md2png.BasicTable(opts, loader)
	if err != nil {
		return err
	}
	return writeResult(flags.output, table, env)
}

// validateTableSize checks the grid dimensions.
func validateTableSize(cols, rows int) error {
	if cols < minTableSize || cols > maxTableSize || rows < minTableSize || rows > maxTableSize {
		return fmt.Errorf("%w: table must be between %d and %d columns and rows, got %dx%d",
			ErrUsage, minTableSize, maxTableSize, cols, rows)
	}
	return nil
}
