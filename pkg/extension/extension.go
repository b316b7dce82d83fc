// Package extension implements the "first non-nil override wins" seam
// that lets third-party code replace values computed by the pricing
// pipeline without the core knowing who they are.
package extension

// Override inspects a computed value for an entity and either returns a
// replacement or nil to leave the value alone.
type Override[E, T any] func(entity E, base T) *T

// Apply discards nil overrides and returns the first survivor, or base
// when none remain. Results are never merged: exactly one override (or
// none) wins, so multiple observers can respond without double-counting.
func Apply[T any](base T, overrides []*T) T {
	for _, o := range overrides {
		if o != nil {
			return *o
		}
	}
	return base
}

// Hooks is an ordered observer list for a single pipeline stage.
// Observers are registered once, at construction time; precedence is
// registration order.
type Hooks[E, T any] struct {
	observers []Override[E, T]
}

// Observe appends an observer. Not safe for concurrent use with
// Resolve; register everything before the pipeline is shared.
func (h *Hooks[E, T]) Observe(fn Override[E, T]) {
	h.observers = append(h.observers, fn)
}

// Resolve runs every observer against the computed base value and
// applies the first non-nil result.
func (h *Hooks[E, T]) Resolve(entity E, base T) T {
	if len(h.observers) == 0 {
		return base
	}
	results := make([]*T, 0, len(h.observers))
	for _, fn := range h.observers {
		results = append(results, fn(entity, base))
	}
	return Apply(base, results)
}
