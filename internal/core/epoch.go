package core

// Epoch is a monotonically increasing generation counter.
// Work scheduled under one generation is stale once the counter moves on,
// so a reset never has to wait for in-flight callbacks to drain.
type Epoch struct {
	gen uint64
}

// Advance moves to the next generation and returns it.
func (e *Epoch) Advance() uint64 {
	e.gen++
	return e.gen
}

// Current returns the current generation.
func (e *Epoch) Current() uint64 {
	return e.gen
}

// Stale reports whether work captured at generation gen must be dropped.
func (e *Epoch) Stale(gen uint64) bool {
	return gen != e.gen
}
