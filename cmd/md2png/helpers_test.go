package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	md2png "github.com/alnah/go-md2png"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2024, 3, 15, 10, 30, 5, 0, time.UTC)

// testEnv returns an environment with captured output, an empty process
// environment, a private config directory and a fake pool.
func testEnv(t *testing.T) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:       func() time.Time { return fixedNow },
		Stdin:     strings.NewReader(""),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Getenv:    func(string) string { return "" },
		Environ:   func() []string { return nil },
		ConfigDir: t.TempDir(),
		NewPool: func(size int, _ ...md2png.Option) Pool {
			return newFakePool(size, &fakeConverter{})
		},
	}
	return env, &stdout, &stderr
}

// fakeConverter records inputs and returns a canned result.
type fakeConverter struct {
	mu     sync.Mutex
	inputs []md2png.Input
	err    error
}

func (f *fakeConverter) Convert(_ context.Context, input md2png.Input) (*md2png.ConvertResult, error) {
	f.mu.Lock()
	f.inputs = append(f.inputs, input)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &md2png.ConvertResult{
		HTML:   []byte("<html>" + input.Content + "</html>"),
		Image:  []byte("IMG:" + input.Content),
		Format: md2png.FormatPNG,
		Width:  1800,
		Height: 1200,
	}, nil
}

// received returns the recorded inputs.
func (f *fakeConverter) received() []md2png.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]md2png.Input(nil), f.inputs...)
}

// fakePool hands out a single shared converter.
type fakePool struct {
	size    int
	conv    CLIConverter
	initErr error
	closed  bool
}

func newFakePool(size int, conv CLIConverter) *fakePool {
	return &fakePool{size: size, conv: conv}
}

func (p *fakePool) Acquire() CLIConverter {
	if p.conv == nil {
		return nil
	}
	return p.conv
}
func (p *fakePool) Release(CLIConverter) {}
func (p *fakePool) Size() int            { return p.size }
func (p *fakePool) InitError() error     { return p.initErr }
func (p *fakePool) Close() error {
	p.closed = true
	return nil
}
