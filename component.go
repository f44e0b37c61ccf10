package stockroom

// Component is the capability a value implements to participate in lifecycle
// passes. Setup runs exactly once, before the first update pass. Update runs
// once per tick. Both receive the shared world for cross-component reads; a
// component mutates itself through the exclusive borrow the pass already
// holds on it, not through the world.
//
// Stored values are typically pointer types (e.g. *Position) so the hooks can
// mutate the component in place.
type Component interface {
	Setup(w *World)
	Update(w *World)
}
