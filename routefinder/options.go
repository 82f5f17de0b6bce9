// SPDX-License-Identifier: MIT
package routefinder

import (
	"io"
	"log/slog"
)

// Option configures a RouteFinder.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// newConfig resolves options over the defaults: a logger that discards.
func newConfig(opts ...Option) config {
	cfg := config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes search diagnostics to l. Searches log at Debug level only.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("routefinder: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
