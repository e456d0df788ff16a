// Package dateutil turns user-friendly date and time tokens into Go layouts
// and expands them inside output file name templates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultStampFormat names files that have no source name: sortable and
// free of characters that file systems reject.
const DefaultStampFormat = "YYYYMMDD-HHmmss"

// DefaultNameTemplate is the output name used for stdin input.
const DefaultNameTemplate = "image-{" + DefaultStampFormat + "}"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching; matching is case
// sensitive so MM is the month and mm the minute.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"compact":  DefaultStampFormat,
	"datetime": "YYYY-MM-DD_HH-mm-ss",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss
// Use brackets to escape literal text: [at] preserves "at" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// Format renders t with a user-friendly format or a preset name.
func Format(format string, t time.Time) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	goFmt, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}

// ExpandName replaces every {FORMAT} segment of template with t rendered in
// that format. Text outside braces is kept as is, so "image-{compact}"
// becomes "image-20240315-103000".
//
// The time parameter allows injecting a fixed time for testing.
func ExpandName(template string, t time.Time) (string, error) {
	var b strings.Builder
	rest := template

	for {
		open := strings.IndexByte(rest, '{')
		if open == -1 {
			if strings.IndexByte(rest, '}') != -1 {
				return "", fmt.Errorf("%w: unmatched '}' in %q", ErrInvalidDateFormat, template)
			}
			b.WriteString(rest)
			return b.String(), nil
		}

		closing := strings.IndexByte(rest[open:], '}')
		if closing == -1 {
			return "", fmt.Errorf("%w: unclosed '{' in %q", ErrInvalidDateFormat, template)
		}

		stamp, err := Format(rest[open+1:open+closing], t)
		if err != nil {
			return "", err
		}
		b.WriteString(rest[:open])
		b.WriteString(stamp)
		rest = rest[open+closing+1:]
	}
}
