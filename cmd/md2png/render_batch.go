package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2png "github.com/alnah/go-md2png"
	"github.com/alnah/go-md2png/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrReadInput     = errors.New("failed to read input file")
	ErrWriteOutput   = errors.New("failed to write output file")
	ErrOutputDir     = errors.New("failed to create output directory")
	ErrConverterInit = errors.New("failed to initialize converter")
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	syntax        md2png.Syntax
	title         string
	autoFormat    bool
	formatOptions *md2png.FormatOptions
	image         *md2png.ImageSettings
	htmlOutput    bool
	htmlOnly      bool
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Width      int
	Height     int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv := pool.Acquire()
			if conv == nil {
				// Converter creation failed, mark remaining jobs as failed
				err := initError(pool)
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       err,
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// initError explains a nil Acquire.
func initError(pool Pool) error {
	if err := pool.InitError(); err != nil {
		return fmt.Errorf("%w: %w", ErrConverterInit, err)
	}
	return ErrConverterInit
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content := f.Content
	sourceDir := ""
	if content == nil {
		data, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
		if err != nil {
			return fail(fmt.Errorf("%w: %w", ErrReadInput, err))
		}
		content = data
		sourceDir = filepath.Dir(f.InputPath)
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrOutputDir, err))
	}

	convResult, err := conv.Convert(ctx, md2png.Input{
		Content:       string(content),
		SourceDir:     sourceDir,
		Syntax:        params.syntax,
		Title:         params.title,
		AutoFormat:    params.autoFormat,
		FormatOptions: params.formatOptions,
		HTMLOnly:      params.htmlOnly,
		Image:         params.image,
	})
	if err != nil {
		return fail(err)
	}

	// Write HTML output if requested (--html or --html-only)
	if params.htmlOnly || params.htmlOutput {
		htmlPath := htmlOutputPath(f.OutputPath)
		if err := fileutil.WriteFileAtomic(htmlPath, convResult.HTML, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
		}
		// For --html-only, update output path to HTML file
		if params.htmlOnly {
			result.OutputPath = htmlPath
			result.Duration = time.Since(start)
			return result
		}
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, convResult.Image, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	result.Width = convResult.Width
	result.Height = convResult.Height
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results to the environment's writers.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err, env))
			continue
		}

		if quiet {
			continue
		}

		switch {
		case verbose && r.Width > 0:
			fmt.Fprintf(env.Stdout, "%s -> %s (%dx%d, %v)\n", r.InputPath, r.OutputPath, r.Width, r.Height, r.Duration.Round(time.Millisecond))
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
