package watch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type remoteData struct {
	signal *Remote
	pokes  int
}

func (d *remoteData) Init(meta *WatcherMeta[remoteData]) {
	d.signal, _ = NewRemote()

	meta.Watch(func(d *remoteData) {
		d.signal.Watched()
		d.pokes++
	})
}

func TestRemote(t *testing.T) {
	t.Run("requires an active context", func(t *testing.T) {
		_, err := NewRemote()
		assert.ErrorIs(t, err, ErrNoActiveContext)
	})

	t.Run("triggers from another goroutine", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			w, _ := NewWatcher[remoteData]()
			assert.Equal(t, 1, w.Data().pokes)

			trigger := w.Data().signal.NewTrigger()

			var wg sync.WaitGroup
			wg.Go(func() {
				trigger.Trigger()
			})
			wg.Wait()

			ctx.Update()
			assert.Equal(t, 2, w.Data().pokes)

			// the flag is consumed
			ctx.Update()
			assert.Equal(t, 2, w.Data().pokes)
		})
	})

	t.Run("zero trigger is inert", func(t *testing.T) {
		var trigger RemoteTrigger
		assert.NotPanics(t, func() {
			trigger.Trigger()
		})
	})
}
