//go:build !wasm
// +build !wasm

package console

import (
	"fmt"
	"io"
	"sync"
)

var (
	mu  sync.Mutex
	out io.Writer = io.Discard
)

// SetOutput redirects native console output, typically to a buffer in tests.
// It returns a func restoring the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return func() {
		mu.Lock()
		out = prev
		mu.Unlock()
	}
}

func write(level string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprint(out, level+" ")
	fmt.Fprintln(out, args...)
}

// Log writes an info line; output is discarded unless SetOutput was called.
func Log(args ...any) {
	write("log", args...)
}

func Warn(args ...any) {
	write("warn", args...)
}

func Error(args ...any) {
	write("error", args...)
}
