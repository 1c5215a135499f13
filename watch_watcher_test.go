package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// copierData mirrors a watched cell into a plain field.
type copierData struct {
	source Watched[int]
	copied int
	runs   int
}

func (d *copierData) Init(meta *WatcherMeta[copierData]) {
	meta.Watch(func(d *copierData) {
		d.runs++
		d.copied = d.source.Get()
	})
}

type branchData struct {
	useLeft Watched[bool]
	left    Watched[int]
	right   Watched[int]
	seen    int
	runs    int
}

func (d *branchData) Init(meta *WatcherMeta[branchData]) {
	meta.Watch(func(d *branchData) {
		d.runs++

		if d.useLeft.Get() {
			d.seen = d.left.Get()
		} else {
			d.seen = d.right.Get()
		}
	})
}

type pairData struct {
	a    Watched[int]
	b    Watched[int]
	sum  int
	runs int
}

func (d *pairData) Init(meta *WatcherMeta[pairData]) {
	meta.Watch(func(d *pairData) {
		d.runs++
		d.sum = d.a.Get() + d.b.Get()
	})
}

type peekData struct {
	source Watched[int]
	seen   int
	runs   int
}

func (d *peekData) Init(meta *WatcherMeta[peekData]) {
	meta.Watch(func(d *peekData) {
		d.runs++
		d.seen = d.source.GetUnwatched()
	})
}

func TestWatcher(t *testing.T) {
	t.Run("requires an active context", func(t *testing.T) {
		_, err := NewWatcher[copierData]()
		assert.ErrorIs(t, err, ErrNoActiveContext)

		err = Register(&copierData{})
		assert.ErrorIs(t, err, ErrNoActiveContext)
	})

	t.Run("runs closures once on registration", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			w, err := NewWatcher[copierData]()
			assert.NoError(t, err)

			assert.Equal(t, 1, w.Data().runs)
			assert.Equal(t, 0, w.Data().copied)
		})
	})

	t.Run("propagates writes on update", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			w, _ := NewWatcher[copierData]()

			w.Data().source.Set(43)
			assert.Equal(t, 0, w.Data().copied)

			ctx.Update()
			assert.Equal(t, 43, w.Data().copied)
			assert.Equal(t, 2, w.Data().runs)

			// nothing dirty, nothing runs
			ctx.Update()
			assert.Equal(t, 2, w.Data().runs)
		})
	})

	t.Run("register wires an external payload", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			data := &copierData{source: NewWatched(37)}

			assert.NoError(t, Register(data))
			assert.Equal(t, 37, data.copied)
			assert.Equal(t, 1, data.runs)

			data.source.Set(43)
			ctx.Update()
			assert.Equal(t, 43, data.copied)
			assert.Equal(t, 2, data.runs)

			ctx.Update()
			assert.Equal(t, 2, data.runs)
		})
	})

	t.Run("coalesces repeated writes into one run", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			w, _ := NewWatcher[copierData]()

			w.Data().source.Set(1)
			w.Data().source.Set(2)
			w.Data().source.Set(3)

			ctx.Update()
			assert.Equal(t, 3, w.Data().copied)
			assert.Equal(t, 2, w.Data().runs)
		})
	})

	t.Run("coalesces writes to separate dependencies", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			w, _ := NewWatcher[pairData]()

			w.Data().a.Set(2)
			w.Data().b.Set(5)

			ctx.Update()
			assert.Equal(t, 7, w.Data().sum)
			assert.Equal(t, 2, w.Data().runs)
		})
	})

	t.Run("edges from untaken branches do not survive", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			w, _ := NewWatcher[branchData]()
			assert.Equal(t, 1, w.Data().runs)

			// the latest run took the right branch
			w.Data().right.Set(4)
			ctx.Update()
			assert.Equal(t, 4, w.Data().seen)
			assert.Equal(t, 2, w.Data().runs)

			w.Data().useLeft.Set(true)
			ctx.Update()
			assert.Equal(t, 3, w.Data().runs)

			// right is no longer a dependency
			w.Data().right.Set(9)
			ctx.Update()
			assert.Equal(t, 3, w.Data().runs)

			w.Data().left.Set(2)
			ctx.Update()
			assert.Equal(t, 2, w.Data().seen)
			assert.Equal(t, 4, w.Data().runs)
		})
	})

	t.Run("unwatched reads track nothing", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			w, _ := NewWatcher[peekData]()

			w.Data().source.Set(5)
			ctx.Update()
			assert.Equal(t, 1, w.Data().runs)
			assert.Equal(t, 0, w.Data().seen)
		})
	})

	t.Run("plain field mutation schedules nothing", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			w, _ := NewWatcher[copierData]()

			w.Data().copied = 99
			ctx.Update()
			assert.Equal(t, 1, w.Data().runs)
			assert.Equal(t, 99, w.Data().copied)
		})
	})

	t.Run("dispose removes closures from scheduling", func(t *testing.T) {
		ctx := NewContext()

		ctx.With(func() {
			w, _ := NewWatcher[copierData]()

			w.Data().source.Set(5)
			w.Dispose()

			ctx.Update()
			assert.Equal(t, 1, w.Data().runs)
			assert.Equal(t, 0, w.Data().copied)

			// writes after disposal stay silent too
			w.Data().source.Set(6)
			ctx.Update()
			assert.Equal(t, 1, w.Data().runs)
		})
	})
}
