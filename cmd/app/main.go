//go:build js || wasm

// Command app is the WebAssembly client of the portfolio. It mounts into the
// #app element of the pre-rendered page and takes over navigation.
package main

import (
	"github.com/vcrobe/folio/console"
	"github.com/vcrobe/folio/internal/portfolio/components/layout"
	"github.com/vcrobe/folio/internal/portfolio/site"
	"github.com/vcrobe/folio/router"
	"github.com/vcrobe/folio/runtime"
	"github.com/vcrobe/folio/viewport"
)

func main() {
	vp := viewport.Default()

	// Persistent shell: the navbar keeps its scroll listener across routes
	mainLayout := layout.New(vp)

	// The engine is the renderer's navigation manager and needs the renderer back
	routerEngine := router.NewEngine(nil)
	renderer := runtime.NewRenderer(routerEngine, "#app")
	routerEngine.SetRenderer(renderer)

	routerEngine.RegisterRoutes(site.Routes(mainLayout, vp))

	appShell := router.NewAppShell(mainLayout)
	renderer.SetCurrentComponent(appShell, "app-shell")

	if err := routerEngine.Start(appShell.SetPage); err != nil {
		console.Error("Failed to start router:", err.Error())
		panic(err)
	}

	select {}
}
