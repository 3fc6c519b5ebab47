// Package site wires the portfolio components into routes, for the browser
// entrypoint and for server-side pre-rendering alike.
package site

import (
	"github.com/vcrobe/folio/internal/portfolio/components/landing"
	"github.com/vcrobe/folio/internal/portfolio/components/layout"
	"github.com/vcrobe/folio/internal/portfolio/content"
	"github.com/vcrobe/folio/router"
	"github.com/vcrobe/folio/runtime"
	"github.com/vcrobe/folio/viewport"
)

// Routes returns one route per navigation link. Every route renders the landing
// page inside the shared layout, focused on the link's section.
func Routes(mainLayout *layout.MainLayout, vp viewport.Viewport) []router.Route {
	links := content.NavLinks()
	routes := make([]router.Route, 0, len(links))
	for _, l := range links {
		section := l.Section
		routes = append(routes, router.Route{
			Path: l.Path,
			Chain: []router.ComponentMetadata{
				{
					Factory: func(map[string]string) runtime.Component { return mainLayout },
					TypeID:  MainLayout_TypeID,
				},
				{
					Factory: func(map[string]string) runtime.Component { return landing.New(section, vp) },
					TypeID:  LandingPage_TypeID,
				},
			},
		})
	}
	return routes
}

// Paths returns the path of every route, in navigation order.
func Paths() []string {
	links := content.NavLinks()
	paths := make([]string, len(links))
	for i, l := range links {
		paths[i] = l.Path
	}
	return paths
}
