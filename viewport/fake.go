package viewport

import "github.com/vcrobe/folio/signals"

// Compile-time assertion to ensure Fake implements the Viewport interface.
var _ Viewport = (*Fake)(nil)

type observation struct {
	threshold float64
	fn        func()
	done      bool
}

type frame struct {
	fn   func()
	done bool
}

// Fake is a scriptable Viewport for tests. Scroll offsets are driven with ScrollTo,
// intersections with Intersect and animation frames with Flush.
type Fake struct {
	scroll       *signals.Signal[float64]
	observations map[string][]*observation
	frames       []*frame

	// ScrolledInto records every ScrollIntoView call, in order.
	ScrolledInto []string
}

// NewFake creates a Fake scrolled to the top.
func NewFake() *Fake {
	return &Fake{
		scroll:       signals.NewSignal(0.0),
		observations: make(map[string][]*observation),
	}
}

// ScrollY returns the last offset set with ScrollTo.
func (f *Fake) ScrollY() float64 {
	return f.scroll.Get()
}

// OnScroll subscribes fn to ScrollTo calls.
func (f *Fake) OnScroll(fn func(y float64)) func() {
	return f.scroll.Subscribe(fn)
}

// ScrollTo sets the offset and dispatches a scroll event to every listener.
func (f *Fake) ScrollTo(y float64) {
	f.scroll.Set(y)
}

// ScrollListeners reports the number of registered scroll listeners.
func (f *Fake) ScrollListeners() int {
	return f.scroll.Subscribers()
}

// ObserveOnce records an observation for id.
func (f *Fake) ObserveOnce(id string, threshold float64, fn func()) func() {
	o := &observation{threshold: threshold, fn: fn}
	f.observations[id] = append(f.observations[id], o)
	return func() { o.done = true }
}

// Intersect reports the element with the given id as visible. Live observations
// fire once and are then spent. It returns how many fired.
func (f *Fake) Intersect(id string) int {
	fired := 0
	for _, o := range f.observations[id] {
		if o.done {
			continue
		}
		o.done = true
		o.fn()
		fired++
	}
	return fired
}

// Observing reports the number of live observations for id.
func (f *Fake) Observing(id string) int {
	n := 0
	for _, o := range f.observations[id] {
		if !o.done {
			n++
		}
	}
	return n
}

// Threshold returns the threshold of the first live observation for id.
func (f *Fake) Threshold(id string) (float64, bool) {
	for _, o := range f.observations[id] {
		if !o.done {
			return o.threshold, true
		}
	}
	return 0, false
}

// NextFrame queues fn until Flush.
func (f *Fake) NextFrame(fn func()) func() {
	fr := &frame{fn: fn}
	f.frames = append(f.frames, fr)
	return func() { fr.done = true }
}

// Flush runs every queued frame that was not cancelled and returns how many ran.
// Frames queued while flushing run on the next Flush.
func (f *Fake) Flush() int {
	frames := f.frames
	f.frames = nil

	ran := 0
	for _, fr := range frames {
		if fr.done {
			continue
		}
		fr.done = true
		fr.fn()
		ran++
	}
	return ran
}

// PendingFrames reports the number of queued, uncancelled frames.
func (f *Fake) PendingFrames() int {
	n := 0
	for _, fr := range f.frames {
		if !fr.done {
			n++
		}
	}
	return n
}

// ScrollIntoView records the request.
func (f *Fake) ScrollIntoView(id string) {
	f.ScrolledInto = append(f.ScrolledInto, id)
}
