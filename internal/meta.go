package internal

// Meta is the primitive behind every watched value: the edge set that watch
// closures bind to on read and that writes trigger. Its methods live in
// tracking.go and tracking_off.go depending on the watch_notrack build tag.
type Meta struct {
	watchers WatchSet
}
