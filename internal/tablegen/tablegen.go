// Package tablegen builds table markup for authoring: blank grids and tables
// converted from delimited text. The transformer renders every row the same
// way; only generation knows about header rows.
package tablegen

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Default grid size used when Basic receives a non-positive dimension.
const (
	DefaultColumns = 3
	DefaultRows    = 3
)

// SeparatorAuto asks FromText to detect the delimiter from the first line.
const SeparatorAuto = "auto"

// separatorCell is the dash run written for each column of a header
// separator row. It always contains "---", which hides the row when rendered.
const separatorCell = "-----------"

// Labels holds the placeholder words written into generated cells.
type Labels struct {
	Header string `yaml:"header"`
	Column string `yaml:"column"`
	Data   string `yaml:"data"`
	Row    string `yaml:"row"`
	Col    string `yaml:"col"`
}

// DefaultLabels are the English placeholders.
var DefaultLabels = Labels{
	Header: "Header",
	Column: "Column",
	Data:   "Data",
	Row:    "Row",
	Col:    "Col",
}

// withDefaults fills empty labels from DefaultLabels.
func (l Labels) withDefaults() Labels {
	if l.Header == "" {
		l.Header = DefaultLabels.Header
	}
	if l.Column == "" {
		l.Column = DefaultLabels.Column
	}
	if l.Data == "" {
		l.Data = DefaultLabels.Data
	}
	if l.Row == "" {
		l.Row = DefaultLabels.Row
	}
	if l.Col == "" {
		l.Col = DefaultLabels.Col
	}
	return l
}

// Basic returns a placeholder table with cols columns. The first row holds
// header labels when header is set, or column labels otherwise, and is
// followed by a separator row. With a header, rows counts the header row;
// without one, rows counts the data rows.
func Basic(cols, rows int, header bool, labels Labels) string {
	if cols <= 0 {
		cols = DefaultColumns
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	labels = labels.withDefaults()

	top := make([]string, cols)
	for c := range top {
		if header {
			top[c] = labels.Header + " " + strconv.Itoa(c+1)
		} else {
			top[c] = labels.Column + " " + strconv.Itoa(c+1)
		}
	}

	var b strings.Builder
	writeRow(&b, top)
	writeSeparator(&b, nil, cols)

	first, last := 1, rows
	if header {
		last = rows - 1
	}
	for r := first; r <= last; r++ {
		cells := make([]string, cols)
		for c := range cells {
			if header {
				cells[c] = labels.Data + " " + strconv.Itoa(r) + "-" + strconv.Itoa(c+1)
			} else {
				cells[c] = labels.Row + " " + strconv.Itoa(r) + " " + labels.Col + " " + strconv.Itoa(c+1)
			}
		}
		writeRow(&b, cells)
	}

	return b.String()
}

// Options tunes FromText.
type Options struct {
	// Align pads every cell to its column's display width so the markup
	// lines up in a monospace editor. Wide runes count as two columns.
	Align bool
}

// FromText converts delimited lines into table markup. sep is a literal
// delimiter, "\t" (escaped or not) for tabs, " " for runs of whitespace, or
// SeparatorAuto. Blank lines are dropped and short rows are padded with
// empty cells. When header is set a separator row follows the first row.
// Returns "" when text has no non-blank line.
func FromText(text, sep string, header bool, opts Options) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
	}
	if len(lines) == 0 {
		return ""
	}

	if sep == SeparatorAuto || sep == "" {
		sep = DetectSeparator(lines[0])
	}
	if sep == `\t` {
		sep = "\t"
	}

	rows := make([][]string, len(lines))
	maxCols := 0
	for i, line := range lines {
		rows[i] = splitCells(line, sep)
		maxCols = max(maxCols, len(rows[i]))
	}
	for i := range rows {
		for len(rows[i]) < maxCols {
			rows[i] = append(rows[i], "")
		}
	}

	var widths []int
	if opts.Align {
		widths = columnWidths(rows, maxCols)
		for _, row := range rows {
			for c := range row {
				row[c] = runewidth.FillRight(row[c], widths[c])
			}
		}
	}

	var b strings.Builder
	for i, row := range rows {
		writeRow(&b, row)
		if i == 0 && header {
			writeSeparator(&b, widths, maxCols)
		}
	}
	return b.String()
}

// DetectSeparator picks the delimiter of a line: pipe, tab, semicolon and
// comma in that order, else whitespace.
func DetectSeparator(line string) string {
	for _, sep := range []string{"|", "\t", ";", ","} {
		if strings.Contains(line, sep) {
			return sep
		}
	}
	return " "
}

// splitCells splits one line into trimmed cells.
func splitCells(line, sep string) []string {
	if sep == " " {
		return strings.Fields(line)
	}

	if sep == "|" {
		// Already framed rows keep their cells, not empty edge cells.
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "|")
		line = strings.TrimSuffix(line, "|")
	}

	cells := strings.Split(line, sep)
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// columnWidths returns the display width of the widest cell per column.
func columnWidths(rows [][]string, cols int) []int {
	widths := make([]int, cols)
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" " + cell + " |")
	}
	b.WriteString("\n")
}

// writeSeparator writes a header separator row. With widths the dashes
// span each padded cell, never fewer than three.
func writeSeparator(b *strings.Builder, widths []int, cols int) {
	b.WriteString("|")
	for c := 0; c < cols; c++ {
		if widths == nil {
			b.WriteString(separatorCell)
		} else {
			b.WriteString(strings.Repeat("-", max(widths[c]+2, 3)))
		}
		b.WriteString("|")
	}
	b.WriteString("\n")
}
