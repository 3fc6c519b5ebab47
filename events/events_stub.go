//go:build !wasm
// +build !wasm

package events

// Stub file for non-WASM builds so components compile and tests can invoke
// handlers directly. The browser implementation is in events.go.

// AdaptNoArgEvent returns the handler unchanged in non-WASM builds.
func AdaptNoArgEvent(handler func()) func() {
	return handler
}

// AdaptLinkEvent returns the handler unchanged in non-WASM builds.
func AdaptLinkEvent(handler func()) func() {
	return handler
}
