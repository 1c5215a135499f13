package internal

import (
	"fmt"
	"strings"

	"github.com/eapache/queue"
)

// Context schedules watch closures: it owns the pending set drained by
// Update and the registry of every watch wired into it. A context is bound
// to one goroutine at a time; the only cross-goroutine entry point is the
// remote trigger flag.
type Context struct {
	// pending holds the refs dirtied since the start of the current pass
	pending *queue.Queue

	// registry of every watch registered in this context, pruned lazily
	watches []*Watch

	remotes []*Remote

	// frameLimit bounds the passes of a single Update; 0 means unbounded
	frameLimit int

	updating bool
}

func NewContext() *Context {
	return &Context{
		pending: queue.New(),
	}
}

// Activate pushes this context onto the goroutine's activation stack.
func (c *Context) Activate() error {
	if stackContains(c) {
		return ErrAlreadyActive
	}

	pushContext(c)
	return nil
}

// Deactivate pops this context, restoring the previously active one.
func (c *Context) Deactivate() error {
	if !popContext(c) {
		return ErrNotActive
	}
	return nil
}

// Register wires a watch closure into this context and executes it once
// immediately, discovering its initial dependencies.
func (c *Context) Register(label string, run func() bool) *Watch {
	w := &Watch{ctx: c, label: label, run: run}
	c.watches = append(c.watches, w)

	w.Ref().execute()

	return w
}

func (c *Context) enqueue(r WatchRef) {
	c.pending.Add(r)
}

// SetFrameLimit bounds the number of passes a single Update may run before
// panicking. Zero, the default, means no bound.
func (c *Context) SetFrameLimit(limit int) {
	c.frameLimit = limit
}

// Update drains the pending set in passes until a pass produces nothing.
// Each pass snapshots the refs pending at its start; watches dirtied during
// the pass run in the next one. Duplicate dirtying collapses to a single
// execution per pass.
func (c *Context) Update() {
	if c.updating {
		return
	}
	c.updating = true
	defer func() { c.updating = false }()

	c.pollRemotes()

	frames := 0
	for c.pending.Length() > 0 {
		if c.frameLimit > 0 && frames >= c.frameLimit {
			panic(fmt.Sprintf(
				"watch: update exceeded its frame limit of %d. "+
					"This usually means watches re-dirty each other in a loop; "+
					"SetIfChanged can break it. Still pending:\n  %s",
				c.frameLimit, strings.Join(c.pendingLabels(), "\n  ")))
		}

		frame := c.pending
		c.pending = queue.New()

		for frame.Length() > 0 {
			frame.Remove().(WatchRef).execute()
		}

		frames++
	}

	c.prune()
}

func (c *Context) pendingLabels() []string {
	labels := make([]string, 0, c.pending.Length())

	for i := 0; i < c.pending.Length(); i++ {
		r := c.pending.Get(i).(WatchRef)
		if r.fresh() {
			labels = append(labels, r.watch.label)
		}
	}

	return labels
}

// prune drops watches whose owner is gone from the registry.
func (c *Context) prune() {
	alive := c.watches[:0]

	for _, w := range c.watches {
		if !w.dead {
			alive = append(alive, w)
		}
	}

	c.watches = alive
}
