package md2png

import (
	"errors"

	"github.com/alnah/go-md2png/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyInput      = errors.New("input content cannot be empty")
	ErrHTMLConversion  = pipeline.ErrHTMLConversion
	ErrImageGeneration = errors.New("image generation failed")
	ErrEmptyCanvas     = errors.New("rendered canvas is empty")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrUnknownSyntax   = errors.New("unknown input syntax")
	ErrInvalidTheme    = errors.New("invalid theme")

	// Image settings validation errors.
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrInvalidQuality     = errors.New("invalid image quality")
	ErrInvalidDimensions  = errors.New("invalid image dimensions")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrLexiconNotFound  = errors.New("lexicon not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Editor action errors.
	ErrInvalidLink     = errors.New("link text and URL are required")
	ErrInvalidImageURL = errors.New("invalid image URL")
)
