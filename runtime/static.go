package runtime

import "github.com/vcrobe/folio/vdom"

// Compile-time assertion to ensure StaticRenderer implements the Renderer interface.
var _ Renderer = (*StaticRenderer)(nil)

// StaticRenderer renders component trees outside the browser, for pre-rendering.
// OnInit and OnParametersSet run as usual; OnMount never does, because the output
// never reaches a live DOM. State changes requested during a pass are ignored.
type StaticRenderer struct {
	tree *Tree
}

// NewStaticRenderer creates a renderer for a single static pass.
func NewStaticRenderer() *StaticRenderer {
	return &StaticRenderer{tree: NewTree()}
}

// Render runs one render pass with root as the root component.
func (r *StaticRenderer) Render(root Component) *vdom.VNode {
	r.tree.Begin()
	instance := r.tree.Resolve(RootKey, root, r)
	n := instance.Render(r)
	r.tree.DropPending()
	return n
}

// RenderChild resolves and renders a child component.
func (r *StaticRenderer) RenderChild(key string, child Component) *vdom.VNode {
	instance := r.tree.Resolve(key, child, r)
	n := instance.Render(r)
	if n != nil {
		n.ComponentKey = key
	}
	return n
}

// ReRender is a no-op: a static pass renders once.
func (r *StaticRenderer) ReRender() {}

// Navigate always fails; static output navigates through plain hrefs.
func (r *StaticRenderer) Navigate(path string) error {
	return ErrNoNavigation
}
