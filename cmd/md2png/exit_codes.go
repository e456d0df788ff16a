package main

import (
	"context"
	"errors"
	"os"

	md2png "github.com/alnah/go-md2png"
	"github.com/alnah/go-md2png/internal/config"
	"github.com/alnah/go-md2png/internal/dateutil"
)

// Exit codes for md2png CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if md2png.IsBrowserError(err) ||
		errors.Is(err, md2png.ErrEmptyCanvas) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, md2png.ErrEmptyInput) ||
		errors.Is(err, md2png.ErrUnknownSyntax) ||
		errors.Is(err, md2png.ErrInvalidTheme) ||
		errors.Is(err, md2png.ErrInvalidImageFormat) ||
		errors.Is(err, md2png.ErrInvalidQuality) ||
		errors.Is(err, md2png.ErrInvalidDimensions) ||
		errors.Is(err, md2png.ErrStyleNotFound) ||
		errors.Is(err, md2png.ErrLexiconNotFound) ||
		errors.Is(err, md2png.ErrInvalidAssetPath) ||
		errors.Is(err, md2png.ErrInvalidImageURL) {
		return ExitUsage
	}

	return ExitGeneral
}
