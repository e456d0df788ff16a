package main

import (
	"context"
	"fmt"

	md2png "github.com/alnah/go-md2png"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2png.Input) (*md2png.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2png.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() CLIConverter
	Release(CLIConverter)
	Size() int
	InitError() error
	Close() error
}

// poolAdapter exposes md2png.ConverterPool through the Pool interface.
type poolAdapter struct {
	pool *md2png.ConverterPool
}

// newConverterPool is the production pool factory.
func newConverterPool(size int, opts ...md2png.Option) Pool {
	return &poolAdapter{pool: md2png.NewConverterPool(size, opts...)}
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

// Acquire returns nil when the converter could not be created; InitError
// tells why.
func (a *poolAdapter) Acquire() CLIConverter {
	conv := a.pool.Acquire()
	if conv == nil {
		return nil
	}
	return conv
}

// Release returns a converter obtained from Acquire.
// Panics if conv did not come from this pool (programmer error).
func (a *poolAdapter) Release(conv CLIConverter) {
	c, ok := conv.(*md2png.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", conv))
	}
	a.pool.Release(c)
}

func (a *poolAdapter) Size() int        { return a.pool.Size() }
func (a *poolAdapter) InitError() error { return a.pool.InitError() }
func (a *poolAdapter) Close() error     { return a.pool.Close() }
