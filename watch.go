// Package watch is a fine-grained reactive dependency-tracking and
// update-scheduling engine. Values wrapped in a Watched cell record which
// watch closures read them; writing a cell schedules those closures, and an
// explicit Update call re-runs them until everything settles. Dependencies
// are re-discovered on every run, so closures only react to what they
// actually read last time.
//
// The engine is single-goroutine and cooperative. A Context must be active
// on the current goroutine (see Context.Activate) before watchers can be
// constructed; reads and writes outside any context are legal and simply
// don't track. The one cross-goroutine entry point is Remote.
//
// Building with the watch_notrack tag compiles the tracking bookkeeping out
// entirely, turning cells into plain value stores with the same API.
package watch

import "github.com/AnatoleLucet/watch/internal"

var (
	// ErrNoActiveContext is returned when constructing a watcher or
	// registering a closure with no context active on this goroutine.
	ErrNoActiveContext = internal.ErrNoActiveContext

	// ErrAlreadyActive is returned when activating a context that is
	// already on this goroutine's activation stack.
	ErrAlreadyActive = internal.ErrAlreadyActive

	// ErrNotActive is returned when deactivating a context that is not the
	// currently active one.
	ErrNotActive = internal.ErrNotActive
)

// Update drains the pending set of the context currently active on this
// goroutine. See Context.Update.
func Update() error {
	ctx := internal.ActiveContext()
	if ctx == nil {
		return ErrNoActiveContext
	}

	ctx.Update()
	return nil
}
