// Package navbar implements the fixed site header: brand, desktop links, and a
// collapsible mobile menu. Its background follows the window scroll offset.
package navbar

import (
	"github.com/vcrobe/folio/console"
	"github.com/vcrobe/folio/events"
	"github.com/vcrobe/folio/internal/portfolio/content"
	"github.com/vcrobe/folio/motion"
	"github.com/vcrobe/folio/runtime"
	"github.com/vcrobe/folio/vdom"
	"github.com/vcrobe/folio/viewport"
)

// ScrollThreshold is the offset, in CSS pixels, past which the header turns opaque.
const ScrollThreshold = 20.0

// MobileMenuID is the DOM id of the collapsible link list.
const MobileMenuID = "mobile-menu"

// IsScrolled reports whether an offset is past the threshold.
func IsScrolled(y float64) bool {
	return y > ScrollThreshold
}

// Navbar is the site header.
type Navbar struct {
	runtime.ComponentBase

	// Viewport is the window to follow. Nil means the platform default.
	Viewport viewport.Viewport
	// Links defaults to content.NavLinks.
	Links []content.NavLink

	Scrolled bool
	MenuOpen bool

	mounted      bool
	removeScroll func()
}

func (n *Navbar) OnInit() {
	n.Viewport = viewport.Or(n.Viewport)
	if n.Links == nil {
		n.Links = content.NavLinks()
	}
}

func (n *Navbar) OnMount() {
	n.mounted = true
	n.Scrolled = IsScrolled(n.Viewport.ScrollY())
	n.removeScroll = n.Viewport.OnScroll(n.HandleScroll)
	// Plays the slide-in.
	n.StateHasChanged()
}

func (n *Navbar) OnUnmount() {
	n.mounted = false
	if n.removeScroll != nil {
		n.removeScroll()
		n.removeScroll = nil
	}
}

// HandleScroll recomputes Scrolled for a new offset. It re-renders only when the
// value changes.
func (n *Navbar) HandleScroll(y float64) {
	scrolled := IsScrolled(y)
	if scrolled == n.Scrolled {
		return
	}
	n.Scrolled = scrolled
	n.StateHasChanged()
}

// ToggleMenu opens or closes the mobile menu.
func (n *Navbar) ToggleMenu() {
	n.MenuOpen = !n.MenuOpen
	n.StateHasChanged()
}

// Activate closes the menu and navigates to an in-site path.
func (n *Navbar) Activate(path string) {
	if n.MenuOpen {
		n.MenuOpen = false
		n.StateHasChanged()
	}
	if err := n.Navigate(path); err != nil {
		console.Warn("navbar: navigate to", path, "failed:", err.Error())
	}
}

// HeaderClass returns the header classes for a scroll state.
func HeaderClass(scrolled bool) string {
	if scrolled {
		return vdom.Classes("fixed w-full z-50 transition-all duration-300", "bg-white shadow-md py-2")
	}
	return vdom.Classes("fixed w-full z-50 transition-all duration-300", "bg-transparent py-4")
}

func (n *Navbar) Render(r runtime.Renderer) *vdom.VNode {
	state := "top"
	if n.Scrolled {
		state = "scrolled"
	}

	bar := vdom.Div(map[string]any{"class": "max-w-6xl mx-auto px-4 sm:px-6 lg:px-8"},
		vdom.Div(map[string]any{"class": "flex justify-between items-center"},
			n.renderBrand(),
			n.renderDesktopLinks(),
			vdom.Div(map[string]any{"class": "md:hidden"}, n.renderMenuButton()),
		),
	)

	nav := vdom.Nav(map[string]any{
		"id":         "navbar",
		"class":      HeaderClass(n.Scrolled),
		"data-state": state,
	}, bar, n.renderMobileMenu())

	return motion.Apply(nav, motion.SlideDown, n.mounted, 0)
}

func (n *Navbar) link(l content.NavLink, class string) *vdom.VNode {
	path := l.Path
	return vdom.A(map[string]any{
		"href":    path,
		"class":   class,
		"onclick": events.AdaptLinkEvent(func() { n.Activate(path) }),
	}, vdom.Text(l.Label))
}

func (n *Navbar) renderBrand() *vdom.VNode {
	return vdom.Div(map[string]any{"class": "flex-shrink-0"},
		n.link(content.NavLink{Label: content.Owner, Path: "/"},
			"text-2xl font-bold from-purple-600 to-sky-400 bg-gradient-to-r bg-clip-text text-transparent"),
	)
}

func (n *Navbar) renderDesktopLinks() *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(n.Links))
	for _, l := range n.Links {
		items = append(items, vdom.Div(nil,
			n.link(l, "text-purple-500 hover:text-sky-400 transition-colors font-extrabold")))
	}
	return vdom.Div(map[string]any{"class": "hidden md:block"},
		vdom.Div(map[string]any{"class": "ml-10 flex items-center space-x-8"}, items...),
	)
}

func (n *Navbar) renderMenuButton() *vdom.VNode {
	expanded := "false"
	label := "Open main menu"
	icon := "M4 6h16M4 12h16M4 18h16"
	if n.MenuOpen {
		expanded = "true"
		label = "Close main menu"
		icon = "M6 18L18 6M6 6l12 12"
	}

	return vdom.Button("", map[string]any{
		"id":            "menu-button",
		"type":          "button",
		"class":         "inline-flex items-center justify-center p-2 rounded-md text-purple-500 hover:text-sky-400 focus:outline-none",
		"aria-controls": MobileMenuID,
		"aria-expanded": expanded,
		"onclick":       events.AdaptNoArgEvent(n.ToggleMenu),
	},
		vdom.Span(map[string]any{"class": "sr-only"}, vdom.Text(label)),
		vdom.SVG(map[string]any{
			"class":       "block h-6 w-6",
			"xmlns":       "http://www.w3.org/2000/svg",
			"fill":        "none",
			"viewBox":     "0 0 24 24",
			"stroke":      "currentColor",
			"aria-hidden": "true",
		}, vdom.Path(map[string]any{
			"stroke-linecap":  "round",
			"stroke-linejoin": "round",
			"stroke-width":    "2",
			"d":               icon,
		})),
	)
}

// renderMobileMenu always emits the list so the collapse can animate both ways.
func (n *Navbar) renderMobileMenu() *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(n.Links))
	for _, l := range n.Links {
		items = append(items, vdom.Div(nil,
			n.link(l, "block px-3 py-2 rounded-md text-base font-medium text-purple-500 hover:text-sky-400")))
	}

	state, hidden := "closed", "true"
	if n.MenuOpen {
		state, hidden = "open", "false"
	}

	menu := vdom.Div(map[string]any{
		"id":          MobileMenuID,
		"class":       "md:hidden",
		"data-state":  state,
		"aria-hidden": hidden,
		// Collapsed links stay out of the tab order.
		"inert": !n.MenuOpen,
	}, vdom.Div(map[string]any{"class": "px-2 pt-2 pb-3 space-y-1 sm:px-3 bg-white shadow-lg"}, items...))

	return motion.Apply(menu, motion.Collapse, n.MenuOpen, 0)
}
