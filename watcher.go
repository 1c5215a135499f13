package watch

import (
	"fmt"
	"weak"

	"github.com/AnatoleLucet/watch/internal"
)

// WatcherInit is the initialization hook implemented by watcher payloads.
// Init is invoked exactly once per watcher, inside an active context, and
// registers the payload's watch closures through meta.
type WatcherInit[T any] interface {
	Init(meta *WatcherMeta[T])
}

// Watcher owns a data payload together with the watch closures registered
// for it during Init. The context only ever holds weak handles into it, so
// dropping (or Disposing) a watcher silently removes its closures from all
// future scheduling.
type Watcher[T any] struct {
	data     T
	disposed bool
}

// NewWatcher allocates a zero payload, runs its Init hook with a registrar
// bound to the active context, and returns the completed watcher. Each
// closure registered during Init has already run once by the time NewWatcher
// returns, so derived state is consistent immediately.
func NewWatcher[T any, PT interface {
	WatcherInit[T]
	*T
}]() (*Watcher[T], error) {
	ctx := internal.ActiveContext()
	if ctx == nil {
		return nil, ErrNoActiveContext
	}

	w := &Watcher[T]{}
	handle := weak.Make(w)

	meta := &WatcherMeta[T]{
		ctx: ctx,
		resolve: func() *T {
			if strong := handle.Value(); strong != nil && !strong.disposed {
				return &strong.data
			}
			return nil
		},
	}
	PT(&w.data).Init(meta)

	return w, nil
}

// Register wires an externally-owned payload into the active context,
// mirroring NewWatcher minus the allocation: Init runs immediately and each
// registered closure executes once. The payload is referenced weakly; once
// it is collected its closures silently stop being scheduled.
func Register[T any, PT interface {
	WatcherInit[T]
	*T
}](data *T) error {
	ctx := internal.ActiveContext()
	if ctx == nil {
		return ErrNoActiveContext
	}

	handle := weak.Make(data)
	PT(data).Init(&WatcherMeta[T]{ctx: ctx, resolve: handle.Value})

	return nil
}

// Data returns the payload. Mutating plain fields through it schedules
// nothing; only writes that go through a Watched cell do.
func (w *Watcher[T]) Data() *T {
	return &w.data
}

// Dispose removes the watcher's closures from all future scheduling.
// Dropping the last reference and letting the collector run has the same
// effect; Dispose just makes it deterministic.
func (w *Watcher[T]) Dispose() {
	w.disposed = true
}

// WatcherMeta registers watch closures for one watcher during Init.
type WatcherMeta[T any] struct {
	ctx     *internal.Context
	resolve func() *T
	count   int
}

// Watch registers fn to re-run whenever a watched value it read during its
// latest execution changes. fn runs once immediately, discovering its
// initial dependencies. Closures run in registration order within a pass.
func (m *WatcherMeta[T]) Watch(fn func(*T)) {
	resolve := m.resolve
	label := fmt.Sprintf("%T.watch#%d", *new(T), m.count)
	m.count++

	m.ctx.Register(label, func() bool {
		data := resolve()
		if data == nil {
			return false
		}

		fn(data)
		return true
	})
}
