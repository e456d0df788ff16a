package main

import (
	"fmt"
	"io"
	"os"

	md2png "github.com/alnah/go-md2png"
	"github.com/alnah/go-md2png/internal/fileutil"
)

// readSource reads the single optional positional argument: a file path,
// or standard input when it is absent or "-".
func readSource(args []string, env *Environment) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(args))
	}
	if len(args) == 0 || args[0] == stdinArg {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied input path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}

// writeResult writes text to path, or to stdout when path is empty.
func writeResult(path, text string, env *Environment) error {
	if path == "" {
		_, err := io.WriteString(env.Stdout, text)
		return err
	}
	if err := fileutil.WriteFileAtomic(path, []byte(text), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// assetLoaderFor returns the environment's loader, or one rooted at
// assetPath. Nil means the embedded assets.
func assetLoaderFor(assetPath string, env *Environment) (md2png.AssetLoader, error) {
	if env.AssetLoader != nil {
		return env.AssetLoader, nil
	}
	if assetPath == "" {
		assetPath = loadEnvConfig(env.Getenv).Assets
	}
	if assetPath == "" {
		return nil, nil
	}
	return md2png.NewAssetLoader(assetPath)
}

// lexiconName applies the MD2PNG_LEXICON fallback.
func lexiconName(flagValue string, env *Environment) string {
	if flagValue != "" {
		return flagValue
	}
	return loadEnvConfig(env.Getenv).Lexicon
}
