package watch

import "github.com/eapache/queue"

// Event dispatches values through the watch system. Unlike a Watched cell,
// an event fires once for each value passed to Dispatch and does not store
// it afterward: closures bound with Bind re-run once per value, values
// arriving on consecutive passes of the same Update call.
type Event[T any] struct {
	watcher *Watcher[eventData[T]]
}

// eventData alternates between two watches: one pops the next queued value
// and announces it, the other acknowledges the delivery and asks for the
// next pop on the following pass.
type eventData[T any] struct {
	queue   *queue.Queue
	current *T

	delivered Meta
	offFrame  Meta
}

func (d *eventData[T]) Init(meta *WatcherMeta[eventData[T]]) {
	meta.Watch(func(d *eventData[T]) {
		d.offFrame.Watched()

		d.current = nil
		if d.queue != nil && d.queue.Length() > 0 {
			v := d.queue.Remove().(T)
			d.current = &v
		}

		d.delivered.Trigger()
	})

	meta.Watch(func(d *eventData[T]) {
		d.delivered.Watched()

		if d.current != nil {
			d.offFrame.Trigger()
		}
	})
}

// NewEvent creates an event dispatcher bound to the active context.
func NewEvent[T any]() (*Event[T], error) {
	w, err := NewWatcher[eventData[T]]()
	if err != nil {
		return nil, err
	}

	w.Data().queue = queue.New()

	return &Event[T]{watcher: w}, nil
}

// Dispatch queues v for delivery during the next Update call.
func (e *Event[T]) Dispatch(v T) {
	d := e.watcher.Data()

	d.queue.Add(v)
	d.offFrame.Trigger()
}

// Bind is meant to be called inside a watch closure: it binds the closure
// to this event and returns the value being delivered this pass, if any.
func (e *Event[T]) Bind() (T, bool) {
	d := e.watcher.Data()

	d.delivered.Watched()
	if d.current != nil {
		return *d.current, true
	}

	var zero T
	return zero, false
}
