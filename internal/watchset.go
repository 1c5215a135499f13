package internal

// WatchSet holds the edges from one watched value to the watch closures that
// read it during their most recent execution.
type WatchSet struct {
	refs []WatchRef
}

// Add records an edge, deduplicating per (watch, generation).
func (s *WatchSet) Add(r WatchRef) {
	for _, existing := range s.refs {
		if existing.watch == r.watch && existing.gen == r.gen {
			return
		}
	}

	s.refs = append(s.refs, r)
}

// Trigger drains the set into each watch's context pending frame. Edges from
// superseded runs are dropped here, which is how stale dependencies get
// pruned lazily.
func (s *WatchSet) Trigger() {
	refs := s.refs
	s.refs = nil

	for _, r := range refs {
		if r.fresh() {
			r.watch.ctx.enqueue(r)
		}
	}
}
