package gf2

import "runtime"

// config stores the parameters of the vector and matrix passes.
type config struct {
	workers int // number of entries processed concurrently
}

// Option configures a vector or matrix pass.
type Option func(*config)

func newConfig(opts []Option) *config {
	c := &config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithWorkers sets the number of entries processed concurrently. A value of 1
// or less processes entries sequentially in the calling goroutine.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}
