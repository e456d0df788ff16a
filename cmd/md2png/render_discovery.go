package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2png "github.com/alnah/go-md2png"
	"github.com/alnah/go-md2png/internal/dateutil"
	"github.com/alnah/go-md2png/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md, .markdown, .txt or .mk extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

// inputExtensions are the extensions discovered in directories.
var inputExtensions = []string{".md", ".markdown", ".txt", ".mk"}

// imageExtensions mark an output path as a file rather than a directory.
var imageExtensions = []string{".png", ".jpg", ".jpeg"}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Content    []byte // preloaded content (stdin); nil = read InputPath
}

// discoverFiles finds all input files to convert.
func discoverFiles(inputPath, outputDir string, format md2png.ImageFormat) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateInputExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", format)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.HasExtension(path, inputExtensions...) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, format)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the image output path for an input file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, format md2png.ImageFormat) string {
	ext := filepath.Ext(inputPath)
	name := strings.TrimSuffix(filepath.Base(inputPath), ext) + format.Extension()

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if fileutil.HasExtension(outputDir, imageExtensions...) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// stdinOutputPath names the image rendered from standard input. Without an
// explicit file name it is stamped with now.
func stdinOutputPath(outputDir string, format md2png.ImageFormat, now time.Time) (string, error) {
	if fileutil.HasExtension(outputDir, imageExtensions...) {
		return outputDir, nil
	}
	name, err := dateutil.ExpandName(dateutil.DefaultNameTemplate, now)
	if err != nil {
		return "", err
	}
	return filepath.Join(outputDir, name+format.Extension()), nil
}

// validateInputExtension checks that the file has a supported extension.
func validateInputExtension(path string) error {
	if !fileutil.HasExtension(path, inputExtensions...) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2png.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2png.MaxPoolSize)
	}
	return nil
}

// htmlOutputPath returns the HTML path corresponding to an image path.
func htmlOutputPath(imagePath string) string {
	return fileutil.ReplaceExtension(imagePath, ".html")
}
