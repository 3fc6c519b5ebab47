//go:build js || wasm
// +build js wasm

package runtime

import (
	"github.com/vcrobe/folio/console"
	"github.com/vcrobe/folio/vdom"
)

// maxPasses bounds the re-renders one ReRender may chain when hooks keep
// requesting state changes.
const maxPasses = 8

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the browser implementation of the Renderer interface.
// It manages the component instance tree and patches the DOM under mountID.
type RendererImpl struct {
	tree             *Tree
	currentComponent Component         // The currently active root component
	currentKey       string            // Identifies the root for subtree replacement
	navManager       NavigationManager // Optional: router for client-side navigation
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching

	rendering bool
	dirty     bool
}

// NewRenderer creates a new runtime renderer.
// If navManager is nil, the renderer works without routing.
func NewRenderer(navManager NavigationManager, mountID string) *RendererImpl {
	return &RendererImpl{
		tree:       NewTree(),
		navManager: navManager,
		mountID:    mountID,
	}
}

// SetNavigationManager attaches the router after construction.
func (r *RendererImpl) SetNavigationManager(navManager NavigationManager) {
	r.navManager = navManager
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	r.currentComponent = comp
	r.currentKey = key
}

// ReRender runs render passes until no component requests another one.
// Requests made during a pass (from hooks or handlers) are coalesced.
func (r *RendererImpl) ReRender() {
	if r.rendering {
		r.dirty = true
		return
	}

	r.rendering = true
	defer func() { r.rendering = false }()

	for pass := 0; pass < maxPasses; pass++ {
		r.dirty = false
		r.renderPass()
		if !r.dirty {
			return
		}
	}
	console.Warn("ReRender: state kept changing after", maxPasses, "passes; giving up")
}

func (r *RendererImpl) renderPass() {
	if r.currentComponent == nil {
		return
	}

	r.tree.Begin()
	root := r.tree.Resolve(RootKey, r.currentComponent, r)
	newVDOM := root.Render(r)
	if newVDOM != nil {
		newVDOM.ComponentKey = r.currentKey
	}

	if r.prevVDOM == nil {
		// Initial render replaces whatever the server pre-rendered.
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM

	// The DOM is current: mount new components, unmount the ones that left.
	r.tree.Commit()
}

// RenderChild is called by Render() code to render a child component.
// It handles the core logic of instance creation and reuse.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	instance := r.tree.Resolve(key, childWithProps, r)
	n := instance.Render(r)
	if n != nil {
		n.ComponentKey = key
	}
	return n
}

// Navigate delegates to the NavigationManager (router).
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return ErrNoNavigation
	}
	return r.navManager.Navigate(path)
}

// Teardown unmounts every component and clears the mount element.
func (r *RendererImpl) Teardown() {
	r.tree.UnmountAll()
	vdom.Clear(r.mountID, r.prevVDOM)
	r.prevVDOM = nil
}
