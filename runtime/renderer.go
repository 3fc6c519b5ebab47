package runtime

import (
	"errors"

	"github.com/vcrobe/folio/vdom"
)

// ErrNoNavigation is returned by Navigate when the renderer has no router.
var ErrNoNavigation = errors.New("no router configured for navigation")

// Renderer defines the minimal set of runtime operations used by Render() code.
// This interface has NO build tags, making it available to both WASM and native builds.
type Renderer interface {
	// RenderChild renders a child component.
	// The key parameter uniquely identifies the component instance for state preservation.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()

	// Navigate performs client-side navigation to the given path.
	Navigate(path string) error
}
