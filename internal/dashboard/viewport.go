package dashboard

import "sync"

// Viewport is the resize event hub of one rendered page. The zero value is
// ready to use.
type Viewport struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func()
}

// NewViewport returns a viewport with no listeners.
func NewViewport() *Viewport {
	return &Viewport{listeners: make(map[int]func())}
}

// OnResize implements chart.Viewport.
func (v *Viewport) OnResize(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	v.mu.Lock()
	if v.listeners == nil {
		v.listeners = make(map[int]func())
	}
	id := v.next
	v.next++
	v.listeners[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.listeners, id)
			v.mu.Unlock()
		})
	}
}

// Resize fires every live listener once and returns how many ran.
func (v *Viewport) Resize() int {
	v.mu.Lock()
	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Listeners reports the number of registered listeners.
func (v *Viewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
