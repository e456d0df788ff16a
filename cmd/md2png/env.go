package main

import (
	"io"
	"os"
	"time"

	md2png "github.com/alnah/go-md2png"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Environ     func() []string
	AssetLoader md2png.AssetLoader // nil = embedded assets or --asset-path
	NewPool     func(size int, opts ...md2png.Option) Pool
	ConfigDir   string // theme preference directory, "" = user config dir
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewPool: newConverterPool,
	}
}
