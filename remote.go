package watch

import "github.com/AnatoleLucet/watch/internal"

// Remote is a watched handle whose trigger may be invoked from other
// goroutines. Watch closures bind to it with Watched; a RemoteTrigger sets
// an atomic flag from anywhere, and the next Update on the owning context
// re-runs everything bound. The engine core itself stays lock-free and
// single-goroutine.
type Remote struct {
	remote *internal.Remote
}

// NewRemote creates a remote handle bound to the active context.
func NewRemote() (*Remote, error) {
	ctx := internal.ActiveContext()
	if ctx == nil {
		return nil, ErrNoActiveContext
	}

	return &Remote{ctx.NewRemote()}, nil
}

// Watched binds the executing watch closure to this handle.
func (r *Remote) Watched() {
	r.remote.Watched()
}

// NewTrigger returns a trigger that is safe to invoke from any goroutine.
func (r *Remote) NewTrigger() RemoteTrigger {
	return RemoteTrigger{r.remote}
}

// RemoteTrigger marks its Remote as changed. The zero value is inert.
type RemoteTrigger struct {
	remote *internal.Remote
}

// Trigger raises the flag. The change is picked up by the next Update call
// on the context the Remote was created in.
func (t RemoteTrigger) Trigger() {
	if t.remote != nil {
		t.remote.Poke()
	}
}
