//go:build js || wasm
// +build js wasm

package events

import "syscall/js"

// AdaptNoArgEvent wraps a handler that ignores the DOM event.
func AdaptNoArgEvent(handler func()) func(js.Value) {
	return func(js.Value) {
		handler()
	}
}

// AdaptLinkEvent wraps an in-site link handler. Plain left clicks are taken over
// by the handler; modified clicks (new tab, new window) keep the browser default.
func AdaptLinkEvent(handler func()) func(js.Value) {
	return func(e js.Value) {
		if e.Get("button").Int() != 0 ||
			e.Get("metaKey").Bool() || e.Get("ctrlKey").Bool() ||
			e.Get("shiftKey").Bool() || e.Get("altKey").Bool() {
			return
		}
		e.Call("preventDefault")
		handler()
	}
}
