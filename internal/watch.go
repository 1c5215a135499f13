package internal

// Watch is a single registered watch closure.
type Watch struct {
	ctx   *Context
	label string

	// gen is bumped on every execution, invalidating every edge recorded
	// during previous runs at once.
	gen uint64

	// run resolves the owner and executes the closure.
	// It reports false once the owner is gone.
	run func() bool

	dead bool
}

// Ref captures the watch identity at its current generation.
func (w *Watch) Ref() WatchRef {
	return WatchRef{watch: w, gen: w.gen}
}

// WatchRef is a dependency edge: the watch it points to plus the generation
// the edge was recorded under.
type WatchRef struct {
	watch *Watch
	gen   uint64
}

func (r WatchRef) fresh() bool {
	return r.gen == r.watch.gen && !r.watch.dead
}

// execute re-runs the closure with the tracker pointed at it. Cell reads
// during the run repopulate the dependency set under the new generation.
// Superseded refs and dead owners are skipped silently.
func (r WatchRef) execute() {
	if !r.fresh() {
		return
	}

	w := r.watch
	w.gen++

	prev := currentWatch()
	setCurrentWatch(w)
	defer setCurrentWatch(prev)

	if !w.run() {
		w.dead = true
	}
}
