package router

import (
	"fmt"

	"github.com/vcrobe/folio/runtime"
	"github.com/vcrobe/folio/vdom"
)

// BodySlot is implemented by layouts that host the routed page.
type BodySlot interface {
	SetBodyContent(children []*vdom.VNode)
}

// AppShell is a stable root component that holds persistent layouts (app shell)
// and swaps only the BodyContent slot when navigation occurs. This preserves
// layout instances and their internal state across navigations including sublayouts.
//
// The page at the end of the chain is keyed by its type, so navigating between
// routes served by the same page type hands the new props to the live instance
// through runtime.PropUpdater instead of remounting it.
type AppShell struct {
	runtime.ComponentBase

	// persistent layout instance (app shell)
	persistentLayout runtime.Component

	// current chain of component instances below the persistent layout
	currentChain []runtime.Component
	currentKey   string
}

// NewAppShell creates a new AppShell with the given persistent layout component.
// The layout should implement BodySlot.
func NewAppShell(persistentLayout runtime.Component) *AppShell {
	return &AppShell{persistentLayout: persistentLayout}
}

// SetPage replaces the volatile chain of component instances and triggers a re-render.
// A leading persistent layout is stripped: it is rendered by the shell itself.
func (a *AppShell) SetPage(chain []runtime.Component, key string) {
	a.setChain(chain, key)
	a.StateHasChanged()
}

// Load replaces the chain without requesting a render, for static rendering.
func (a *AppShell) Load(chain []runtime.Component, key string) {
	a.setChain(chain, key)
}

func (a *AppShell) setChain(chain []runtime.Component, key string) {
	if len(chain) > 0 && chain[0] == a.persistentLayout {
		chain = chain[1:]
	}
	a.currentChain = append([]runtime.Component(nil), chain...)
	a.currentKey = key
}

// Key returns the navigation key of the current page.
func (a *AppShell) Key() string {
	return a.currentKey
}

// Render composes the persistent layout with the current component chain.
func (a *AppShell) Render(r runtime.Renderer) *vdom.VNode {
	var slotChildren []*vdom.VNode
	if n := len(a.currentChain); n > 0 {
		// Link bottom-up: leaf → first sublayout
		node := r.RenderChild(pageKey(a.currentChain[n-1]), a.currentChain[n-1])
		for i := n - 2; i >= 0; i-- {
			parent := a.currentChain[i]
			if slot, ok := parent.(BodySlot); ok {
				slot.SetBodyContent(nonNil(node))
			}
			node = r.RenderChild(fmt.Sprintf("slot-chain-%d-%T-%p", i, parent, parent), parent)
		}
		slotChildren = nonNil(node)
	}

	if a.persistentLayout != nil {
		if slot, ok := a.persistentLayout.(BodySlot); ok {
			slot.SetBodyContent(slotChildren)
		}
		return r.RenderChild("persistent-layout", a.persistentLayout)
	}

	if len(slotChildren) == 1 {
		return slotChildren[0]
	}
	return vdom.Div(nil, slotChildren...)
}

func pageKey(page runtime.Component) string {
	return fmt.Sprintf("slot-page-%T", page)
}

func nonNil(n *vdom.VNode) []*vdom.VNode {
	if n == nil {
		return nil
	}
	return []*vdom.VNode{n}
}
