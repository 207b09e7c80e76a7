package focus

// Watch remembers the value seen on the previous commit.
// The zero Watch has seen nothing.
type Watch[T comparable] struct {
	prev T
	seen bool
}

// Observe records v and returns the value recorded before it.
// seen is false on the first call.
func (w *Watch[T]) Observe(v T) (prev T, seen bool) {
	prev, seen = w.prev, w.seen
	w.prev, w.seen = v, true
	return prev, seen
}
