package watch

import "github.com/AnatoleLucet/watch/internal"

// Context governs one tree of reactive relationships: the registry of watch
// closures and the pending set drained by Update. Contexts nest via a
// per-goroutine activation stack; the top of the stack is the one watcher
// construction binds to.
type Context struct {
	ctx *internal.Context
}

// NewContext creates a watch context. It does nothing until activated.
func NewContext() *Context {
	return &Context{internal.NewContext()}
}

// Activate makes this context the active one on the current goroutine,
// pushing it onto the activation stack.
func (c *Context) Activate() error {
	return c.ctx.Activate()
}

// Deactivate pops this context off the activation stack, restoring
// whichever context was active before.
func (c *Context) Deactivate() error {
	return c.ctx.Deactivate()
}

// With activates the context, runs fn, and deactivates again.
func (c *Context) With(fn func()) error {
	if err := c.Activate(); err != nil {
		return err
	}
	defer c.Deactivate()

	fn()
	return nil
}

// Update drains the pending set in passes until empty. Every closure
// dirtied directly or transitively by writes since the last call runs
// before Update returns, once per pass in which it is dirty. Closures
// dirtied during a pass run in the next pass, never re-entrantly.
//
// A pair of closures that perpetually re-dirty each other will keep Update
// from returning; SetFrameLimit turns that into a diagnostic panic.
func (c *Context) Update() {
	c.ctx.Update()
}

// SetFrameLimit bounds the number of passes a single Update may run before
// panicking with the names of the watches still pending. Zero, the default,
// means no bound.
func (c *Context) SetFrameLimit(limit int) {
	c.ctx.SetFrameLimit(limit)
}
