package ui

// ScrollObserver publishes a viewport's scroll offset to its subscribers.
// The zero value is ready to use and unmounted.
type ScrollObserver struct {
	offset  float64
	remove  func()
	gen     int
	nextSub int
	subs    []subscriber
}

type subscriber struct {
	id int
	fn func(float64)
}

// Mount samples v immediately, publishes the sample and starts following
// v's scroll events. Mounting an already mounted observer detaches it from
// the previous viewport first.
func (o *ScrollObserver) Mount(v Viewport) {
	o.Unmount()
	o.gen++
	gen := o.gen
	o.publish(v.ScrollY())
	o.remove = v.AddScrollListener(func() {
		// a viewport that keeps a stale callback must not resurrect us
		if o.gen != gen || o.remove == nil {
			return
		}
		o.publish(v.ScrollY())
	})
}

// Unmount stops following the viewport. It is safe to call at any time,
// including before Mount or more than once.
func (o *ScrollObserver) Unmount() {
	if o.remove == nil {
		return
	}
	remove := o.remove
	o.remove = nil
	o.gen++
	remove()
}

// Mounted reports whether the observer currently follows a viewport.
func (o *ScrollObserver) Mounted() bool { return o.remove != nil }

// Offset returns the last published offset.
func (o *ScrollObserver) Offset() float64 { return o.offset }

// Subscribe registers fn to receive every published offset.
func (o *ScrollObserver) Subscribe(fn func(float64)) (cancel func()) {
	o.nextSub++
	id := o.nextSub
	o.subs = append(o.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *ScrollObserver) publish(y float64) {
	o.offset = clampOffset(y)
	subs := make([]subscriber, len(o.subs))
	copy(subs, o.subs)
	for _, s := range subs {
		s.fn(o.offset)
	}
}
