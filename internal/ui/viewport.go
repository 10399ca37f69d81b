// Package ui holds the view-model state behind the landing page's
// interactive pieces: the scroll observer, the navbar, expandable lists and
// reveal-on-scroll markers.
//
// Everything here is synchronous and single-threaded. Callers that share a
// value across goroutines (see package live) must serialize access.
package ui

// Viewport is the scroll signal a ScrollObserver attaches to.
type Viewport interface {
	// ScrollY reports the current vertical scroll offset.
	ScrollY() float64
	// AddScrollListener registers fn for every scroll event and returns a
	// function that removes it. The remover may be called more than once.
	AddScrollListener(fn func()) (remove func())
}

type listener struct {
	id int
	fn func()
}

// Window is an in-process Viewport. Scroll events are delivered
// synchronously, in listener registration order, from ScrollTo.
type Window struct {
	y         float64
	nextID    int
	listeners []listener
}

// NewWindow returns a Window positioned at y.
func NewWindow(y float64) *Window {
	return &Window{y: clampOffset(y)}
}

// ScrollY implements Viewport.
func (w *Window) ScrollY() float64 { return w.y }

// ScrollTo moves the window to y and emits one scroll event.
func (w *Window) ScrollTo(y float64) {
	w.y = clampOffset(y)
	// snapshot so listeners may remove themselves while being notified
	snapshot := make([]listener, len(w.listeners))
	copy(snapshot, w.listeners)
	for _, l := range snapshot {
		if w.has(l.id) {
			l.fn()
		}
	}
}

// AddScrollListener implements Viewport.
func (w *Window) AddScrollListener(fn func()) func() {
	w.nextID++
	id := w.nextID
	w.listeners = append(w.listeners, listener{id: id, fn: fn})
	return func() { w.remove(id) }
}

// Listeners reports how many scroll listeners are registered.
func (w *Window) Listeners() int { return len(w.listeners) }

func (w *Window) has(id int) bool {
	for _, l := range w.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

func (w *Window) remove(id int) {
	for i, l := range w.listeners {
		if l.id == id {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			return
		}
	}
}

// offsets reported by browsers can be negative during overscroll
func clampOffset(y float64) float64 {
	if y < 0 || y != y {
		return 0
	}
	return y
}
