//go:build watch_notrack

package internal

// Instrumentation is compiled out: watched values collapse to plain stores
// with the same API.

func (m *Meta) Watched() {}

func (m *Meta) Trigger() {}
