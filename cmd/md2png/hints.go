package main

import (
	"context"
	"errors"
	"path/filepath"

	md2png "github.com/alnah/go-md2png"
	"github.com/alnah/go-md2png/internal/assets"
	"github.com/alnah/go-md2png/internal/config"
	"github.com/alnah/go-md2png/internal/hints"
)

// hintFor returns an actionable hint to append to err's message, or "".
func hintFor(err error, env *Environment) string {
	switch {
	case errors.Is(err, md2png.ErrBrowserConnect):
		return hints.ForBrowserConnect(env.Getenv)
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, md2png.ErrEmptyCanvas):
		return hints.ForEmptyCanvas()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configSearchPaths())
	case errors.Is(err, ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, md2png.ErrStyleNotFound):
		return hints.ForAssetNotFound("style", assets.EmbeddedStyles())
	case errors.Is(err, md2png.ErrLexiconNotFound):
		return hints.ForAssetNotFound("lexicon", assets.EmbeddedLexicons())
	case errors.Is(err, md2png.ErrInvalidImageURL):
		return hints.ForImageURL()
	default:
		return ""
	}
}

// configSearchPaths returns the user-level config file LoadConfig looks
// for, so the hint can suggest creating it.
func configSearchPaths() []string {
	dir, err := config.UserDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "config.yaml")}
}
