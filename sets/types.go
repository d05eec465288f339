package sets

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for set-closure construction.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sets: invalid option supplied")
)

// Option configures a closure build via functional arguments, mirroring
// the teacher's bfs.Option shape.
type Option func(*Options)

// Options holds parameters for a set-closure build.
type Options struct {
	// Ctx allows cancellation of long-running closures.
	Ctx context.Context

	// OnDiscover is called each time a new vertex (SSS) or orbit/circuit
	// (USS/SC) is added to the closure, with its index.
	OnDiscover func(index int)

	// MaxVertices, if > 0, stops the search once this many vertices (or
	// orbits/circuits) have been discovered. 0 means unbounded.
	MaxVertices int

	err error
}

// DefaultOptions returns Options with sane defaults: a background
// context, no discovery callback, and no vertex cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnDiscover:  func(int) {},
		MaxVertices: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDiscover registers a callback invoked on each new discovery.
func WithOnDiscover(fn func(index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithMaxVertices caps the number of discovered vertices/orbits.
//
//	v > 0: stop after discovering v of them
//	v == 0: explicit "no limit"
//	v < 0: invalid option → ErrOptionViolation
func WithMaxVertices(v int) Option {
	return func(o *Options) {
		switch {
		case v < 0:
			o.err = fmt.Errorf("%w: MaxVertices cannot be negative (%d)", ErrOptionViolation, v)
		case v == 0:
			o.MaxVertices = 0
		default:
			o.MaxVertices = v
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
