package runtime

import "github.com/vcrobe/folio/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// ComponentFactory creates a component instance from route parameters.
type ComponentFactory func(params map[string]string) Component

// Initializer is implemented by components that need setup before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that derive state from props.
// OnParametersSet runs before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Mounter is implemented by components that act once their first render is in the DOM.
// OnMount runs exactly once per instance.
type Mounter interface {
	OnMount()
}

// Unmounter is implemented by components that hold resources (listeners, observers,
// timers) which must be released when the component leaves the tree.
type Unmounter interface {
	OnUnmount()
}

// PropUpdater lets a preserved instance take new props from a freshly constructed
// value without losing its internal state.
type PropUpdater interface {
	ApplyProps(next Component)
}

// NavigationManager performs client-side navigation. The router engine implements it.
type NavigationManager interface {
	Navigate(path string) error
}
