package text

import "fmt"

// Options controls chunk packing bounds, measured in bytes. Normalized text
// is plain ASCII, so bytes and characters coincide.
type Options struct {
	// MinChars is the smallest size a chunk may be flushed at. Undersized
	// accumulators absorb the next sentence instead of flushing, even when
	// that pushes them past MaxChars.
	MinChars int
	// MaxChars is the target upper bound per chunk. A single sentence longer
	// than MaxChars is never split and is emitted whole.
	MaxChars int
}

// DefaultOptions returns the packing bounds used when callers have no
// preference: 100-300 characters per chunk.
func DefaultOptions() Options {
	return Options{MinChars: 100, MaxChars: 300}
}

// Validate rejects bounds that would degenerate the packing loop.
func (o Options) Validate() error {
	if o.MaxChars <= 0 {
		return fmt.Errorf("max chars must be positive, got %d", o.MaxChars)
	}
	if o.MinChars < 0 {
		return fmt.Errorf("min chars must not be negative, got %d", o.MinChars)
	}
	if o.MinChars >= o.MaxChars {
		return fmt.Errorf("min chars (%d) must be less than max chars (%d)", o.MinChars, o.MaxChars)
	}
	return nil
}
