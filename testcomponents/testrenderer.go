package testcomponents

import (
	"github.com/vcrobe/folio/runtime"
	"github.com/vcrobe/folio/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Drive the mount/unmount lifecycle
// - Inspect the resulting VDOM tree and requested navigations
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	tree        *runtime.Tree

	// Navigations records every path passed to Navigate, in order.
	Navigations []string
	// NavigateErr is returned by Navigate when set.
	NavigateErr error
	// RenderCount counts completed render passes.
	RenderCount int

	rendering bool
	dirty     bool
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		tree:      runtime.NewTree(),
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs a render pass without committing it, as if the output had
// not reached the DOM yet. Queued OnMount hooks run on the next Mount or ReRender.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.tree.Begin()
	r.currentVDOM = r.render()
	return r.currentVDOM
}

// Mount performs the initial render and commits it, running OnMount hooks.
func (r *TestRenderer) Mount() *vdom.VNode {
	r.ReRender()
	return r.currentVDOM
}

// Unmount tears the whole tree down, running OnUnmount hooks.
func (r *TestRenderer) Unmount() {
	r.tree.UnmountAll()
	r.currentVDOM = nil
}

// ReRender performs a committed render pass.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	if r.rendering {
		r.dirty = true
		return
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	for pass := 0; pass < 8; pass++ {
		r.dirty = false
		r.tree.Begin()
		r.currentVDOM = r.render()
		r.tree.Commit()
		if !r.dirty {
			return
		}
	}
}

func (r *TestRenderer) render() *vdom.VNode {
	root := r.tree.Resolve(runtime.RootKey, r.component, r)
	r.RenderCount++
	return root.Render(r)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderChild resolves the child through the lifecycle tree and renders it.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	instance := r.tree.Resolve(key, child, r)
	n := instance.Render(r)
	if n != nil {
		n.ComponentKey = key
	}
	return n
}

// Child returns the live child instance rendered under key.
func (r *TestRenderer) Child(key string) (runtime.Component, bool) {
	return r.tree.Instance(key)
}

// Navigate records the requested path.
func (r *TestRenderer) Navigate(path string) error {
	r.Navigations = append(r.Navigations, path)
	return r.NavigateErr
}
