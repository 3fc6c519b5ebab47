//go:build js || wasm
// +build js wasm

package viewport

import (
	"sync"
	"syscall/js"

	"github.com/vcrobe/folio/console"
)

var browserWindow = &Browser{}

// Default returns the browser window.
func Default() Viewport {
	return browserWindow
}

// Browser implements Viewport on top of window, IntersectionObserver and
// requestAnimationFrame. Each registration owns a js.Func that is released
// exactly once, either when it completes or when it is cancelled.
type Browser struct{}

func (b *Browser) window() js.Value {
	return js.Global()
}

// ScrollY returns window.scrollY.
func (b *Browser) ScrollY() float64 {
	return b.window().Get("scrollY").Float()
}

// OnScroll registers a passive scroll listener on window.
func (b *Browser) OnScroll(fn func(y float64)) func() {
	win := b.window()
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(win.Get("scrollY").Float())
		return nil
	})

	opts := js.Global().Get("Object").New()
	opts.Set("passive", true)
	win.Call("addEventListener", "scroll", cb, opts)

	var once sync.Once
	return func() {
		once.Do(func() {
			win.Call("removeEventListener", "scroll", cb, opts)
			cb.Release()
		})
	}
}

// ObserveOnce observes the element with an IntersectionObserver and disconnects
// after the first intersection.
func (b *Browser) ObserveOnce(id string, threshold float64, fn func()) func() {
	doc := js.Global().Get("document")
	el := doc.Call("getElementById", id)
	if !el.Truthy() {
		console.Warn("viewport: no element with id", id)
		return noop
	}

	ctor := js.Global().Get("IntersectionObserver")
	if !ctor.Truthy() {
		// Without the API every section counts as visible.
		fn()
		return noop
	}

	var (
		once     sync.Once
		observer js.Value
		cb       js.Func
	)
	release := func() {
		once.Do(func() {
			observer.Call("disconnect")
			cb.Release()
		})
	}

	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			if entries.Index(i).Get("isIntersecting").Bool() {
				release()
				fn()
				break
			}
		}
		return nil
	})

	opts := js.Global().Get("Object").New()
	opts.Set("threshold", threshold)
	observer = ctor.New(cb, opts)
	observer.Call("observe", el)

	return release
}

// NextFrame schedules fn with requestAnimationFrame.
func (b *Browser) NextFrame(fn func()) func() {
	win := b.window()

	var (
		once sync.Once
		cb   js.Func
	)
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		once.Do(cb.Release)
		fn()
		return nil
	})
	handle := win.Call("requestAnimationFrame", cb)

	return func() {
		once.Do(func() {
			win.Call("cancelAnimationFrame", handle)
			cb.Release()
		})
	}
}

// ScrollIntoView smoothly scrolls the element to the top of the viewport.
func (b *Browser) ScrollIntoView(id string) {
	el := js.Global().Get("document").Call("getElementById", id)
	if !el.Truthy() {
		console.Warn("viewport: no element with id", id)
		return
	}
	opts := js.Global().Get("Object").New()
	opts.Set("behavior", "smooth")
	opts.Set("block", "start")
	el.Call("scrollIntoView", opts)
}
