// Package monoclock reads the kernel monotonic clock, in the epoch the init
// manager uses for its *TimestampMonotonic properties.
package monoclock

import "errors"

type (
	// T reads CLOCK_MONOTONIC.
	T struct{}
)

// ErrNotSupported is returned on platforms without a monotonic clock.
var ErrNotSupported = errors.New("monotonic clock not supported on this platform")

// New returns a monotonic clock reader.
func New() T {
	return T{}
}

// Now returns the current monotonic time in microseconds.
func (T) Now() (uint64, error) {
	return now()
}
