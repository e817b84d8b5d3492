// SPDX-License-Identifier: MIT

package qp

import "log/slog"

const panicNilLogger = "qp: WithLogger: logger must not be nil"

// Option configures a Solver.
type Option func(*Options)

// Options holds the resolved Solver configuration.
type Options struct {
	logger *slog.Logger
}

// WithLogger routes the solver's debug records to l.
// The default logger discards everything. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{logger: slog.New(slog.DiscardHandler)}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
