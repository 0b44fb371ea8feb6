package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states.
const (
	White = iota
	Gray
	Black
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected is returned by TopologicalSort for a network with a round trip.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures a traversal.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext enables cancellation. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
