// Package viewport exposes the browser window to components: scroll position,
// scroll subscriptions, one-shot visibility observation and frame scheduling.
//
// Every registration returns a func that releases it. Components call those funcs
// from OnUnmount so no handler outlives the component that registered it.
package viewport

// Viewport is the window a component is displayed in.
type Viewport interface {
	// ScrollY returns the current vertical scroll offset in CSS pixels.
	ScrollY() float64

	// OnScroll calls fn with the new offset on every scroll event.
	OnScroll(fn func(y float64)) (remove func())

	// ObserveOnce calls fn the first time the element with the given id has at least
	// threshold (0..1) of its area inside the viewport, then stops observing.
	ObserveOnce(id string, threshold float64, fn func()) (cancel func())

	// NextFrame calls fn before the next repaint.
	NextFrame(fn func()) (cancel func())

	// ScrollIntoView scrolls the element with the given id to the top of the viewport.
	ScrollIntoView(id string)
}

// Or returns v, or the platform default when v is nil.
func Or(v Viewport) Viewport {
	if v != nil {
		return v
	}
	return Default()
}

func noop() {}
