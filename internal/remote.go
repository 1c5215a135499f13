package internal

import "sync/atomic"

// Remote is a watchable value whose trigger may be invoked from any
// goroutine. The flag is polled at the start of Update, so the engine core
// stays single-threaded.
type Remote struct {
	Meta

	flag atomic.Bool
}

func (c *Context) NewRemote() *Remote {
	r := &Remote{}
	c.remotes = append(c.remotes, r)
	return r
}

// Poke raises the flag. Safe to call from any goroutine.
func (r *Remote) Poke() {
	r.flag.Store(true)
}

func (c *Context) pollRemotes() {
	for _, r := range c.remotes {
		if r.flag.Swap(false) {
			r.Meta.Trigger()
		}
	}
}
