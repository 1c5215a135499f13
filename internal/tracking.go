//go:build !watch_notrack

package internal

// Watched binds the currently executing watch closure, if any, to this
// value. Outside a watch execution it does nothing.
func (m *Meta) Watched() {
	if w := currentWatch(); w != nil {
		m.watchers.Add(w.Ref())
	}
}

// Trigger marks this value as changed, scheduling every bound watch for the
// next update pass of its context.
func (m *Meta) Trigger() {
	m.watchers.Trigger()
}
