// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ctok

import (
	"context"
	"log/slog"
)

type config struct {
	ctx    context.Context
	logger *slog.Logger
	name   string
	floats bool
}

type Option func(c *config) error

// WithName sets the input source name used in log output.
func WithName(name string) Option {
	return func(c *config) error {
		c.name = name
		return nil
	}
}

// WithLogger sets the logger used for lexer debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithContext sets the context carried by the lexer.
func WithContext(ctx context.Context) Option {
	return func(c *config) error {
		c.ctx = ctx
		return nil
	}
}

// WithFloatLiterals controls whether numeric runs containing a single
// dot produce float literals. When disabled, any dotted run is an
// invalid numeric literal, matching the integer-only behavior of older
// grammars.
func WithFloatLiterals(flag bool) Option {
	return func(c *config) error {
		c.floats = flag
		return nil
	}
}
