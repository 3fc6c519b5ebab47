// Package layout holds the persistent page frame shared by every route.
package layout

import (
	"github.com/vcrobe/folio/internal/portfolio/components/navbar"
	"github.com/vcrobe/folio/runtime"
	"github.com/vcrobe/folio/vdom"
	"github.com/vcrobe/folio/viewport"
)

// MainLayout renders the navigation bar above the routed page. It is created once
// and kept across navigations, so the navbar keeps its scroll listener and menu state.
type MainLayout struct {
	runtime.ComponentBase

	Viewport viewport.Viewport

	// BodyContent is the slot filled by the router with the current page.
	BodyContent []*vdom.VNode

	nav *navbar.Navbar
}

// New creates a layout that follows vp.
func New(vp viewport.Viewport) *MainLayout {
	return &MainLayout{Viewport: vp}
}

// SetBodyContent fills the page slot.
func (l *MainLayout) SetBodyContent(children []*vdom.VNode) {
	l.BodyContent = children
}

// Navbar returns the header instance.
func (l *MainLayout) Navbar() *navbar.Navbar {
	if l.nav == nil {
		l.nav = &navbar.Navbar{Viewport: l.Viewport}
	}
	return l.nav
}

func (l *MainLayout) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"id": "shell", "class": "min-h-screen bg-white"},
		r.RenderChild("navbar", l.Navbar()),
		vdom.Main(map[string]any{"id": "content"}, l.BodyContent...),
	)
}
