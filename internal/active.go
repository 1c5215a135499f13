package internal

import (
	"slices"
	"sync"

	"github.com/petermattis/goid"
)

var (
	// activation stacks, one per goroutine
	activeStacks sync.Map // goroutine id -> *contextStack

	// the watch closure currently executing, one per goroutine
	currentWatches sync.Map // goroutine id -> *Watch
)

type contextStack struct {
	contexts []*Context
}

func getStack() *contextStack {
	gid := goid.Get()

	if s, ok := activeStacks.Load(gid); ok {
		return s.(*contextStack)
	}

	s := &contextStack{}
	activeStacks.Store(gid, s)
	return s
}

// ActiveContext returns the context on top of this goroutine's activation
// stack, or nil when none is active.
func ActiveContext() *Context {
	s := getStack()

	if n := len(s.contexts); n > 0 {
		return s.contexts[n-1]
	}
	return nil
}

func pushContext(c *Context) {
	s := getStack()
	s.contexts = append(s.contexts, c)
}

// popContext removes c from the top of the stack, restoring the previously
// active context. It reports false when c is not on top.
func popContext(c *Context) bool {
	s := getStack()

	n := len(s.contexts)
	if n == 0 || s.contexts[n-1] != c {
		return false
	}

	s.contexts = s.contexts[:n-1]
	return true
}

func stackContains(c *Context) bool {
	return slices.Contains(getStack().contexts, c)
}

func currentWatch() *Watch {
	if w, ok := currentWatches.Load(goid.Get()); ok {
		return w.(*Watch)
	}
	return nil
}

func setCurrentWatch(w *Watch) {
	gid := goid.Get()

	if w == nil {
		currentWatches.Delete(gid)
		return
	}
	currentWatches.Store(gid, w)
}
