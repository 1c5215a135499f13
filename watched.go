package watch

import "github.com/AnatoleLucet/watch/internal"

// Watched wraps one value that watch closures can depend on. Reads inside a
// watch closure record a dependency edge; writes schedule every closure
// that read the cell during its latest run.
//
// The zero value holds T's zero value and is ready to use, so cells can sit
// directly in a watcher payload as struct fields.
type Watched[T any] struct {
	meta  internal.Meta
	value T
}

// NewWatched creates a watched cell holding initial.
func NewWatched[T any](initial T) Watched[T] {
	return Watched[T]{value: initial}
}

// Get returns the current value, binding the executing watch closure to
// this cell. Outside a watch execution it is a plain read.
func (w *Watched[T]) Get() T {
	w.meta.Watched()
	return w.value
}

// GetUnwatched returns the current value without binding anything.
func (w *Watched[T]) GetUnwatched() T {
	return w.value
}

// Set stores v and schedules every closure that read this cell. Every write
// counts as a change so T need not be comparable; use SetIfChanged to gate
// writes on equality.
func (w *Watched[T]) Set(v T) {
	w.value = v
	w.meta.Trigger()
}

// Modify mutates the value in place and schedules dependents, for types
// that are updated rather than replaced (slices, maps, struct fields).
func (w *Watched[T]) Modify(fn func(*T)) {
	fn(&w.value)
	w.meta.Trigger()
}

// Replace stores v and returns the previous value.
func (w *Watched[T]) Replace(v T) T {
	old := w.value
	w.Set(v)
	return old
}

// Take replaces the value with T's zero value and returns what was there.
func (w *Watched[T]) Take() T {
	var zero T
	return w.Replace(zero)
}

// SetIfChanged writes v only when it differs from the current value. This
// is the tool for settling watches that would otherwise keep re-dirtying
// each other, e.g. two closures mirroring a pair of cells.
func SetIfChanged[T comparable](w *Watched[T], v T) {
	if w.value != v {
		w.Set(v)
	}
}

// Meta is the raw watched/trigger primitive, for building custom reactive
// types where Watched is not the right shape. Call Watched inside a watch
// closure to bind it, Trigger to schedule everything bound.
//
// The zero value is ready to use.
type Meta struct {
	meta internal.Meta
}

// Watched binds the executing watch closure, if any, to this meta.
func (m *Meta) Watched() {
	m.meta.Watched()
}

// Trigger marks this meta as changed, scheduling every bound closure.
func (m *Meta) Trigger() {
	m.meta.Trigger()
}
