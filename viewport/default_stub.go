//go:build !wasm
// +build !wasm

package viewport

// Default returns a viewport that never scrolls and never fires, for native builds
// where no window exists (pre-rendering, tests that do not inject a Fake).
func Default() Viewport {
	return static{}
}

type static struct{}

func (static) ScrollY() float64 { return 0 }

func (static) OnScroll(func(float64)) func() { return noop }

func (static) ObserveOnce(string, float64, func()) func() { return noop }

func (static) NextFrame(func()) func() { return noop }

func (static) ScrollIntoView(string) {}
