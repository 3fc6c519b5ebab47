package router

import "github.com/vcrobe/folio/runtime"

// Route defines a path and its component chain (layout hierarchy + page).
type Route struct {
	Path  string
	Chain []ComponentMetadata
}

// ComponentMetadata holds the factory and compile-time type ID for a component.
type ComponentMetadata struct {
	Factory runtime.ComponentFactory
	TypeID  uint32
}

// Leaf returns the metadata of the page at the end of the chain.
func (r *Route) Leaf() (ComponentMetadata, bool) {
	if len(r.Chain) == 0 {
		return ComponentMetadata{}, false
	}
	return r.Chain[len(r.Chain)-1], true
}

// Instantiate builds the whole chain with the given params.
func (r *Route) Instantiate(params map[string]string) []runtime.Component {
	chain := make([]runtime.Component, len(r.Chain))
	for i, meta := range r.Chain {
		chain[i] = meta.Factory(params)
	}
	return chain
}
