//go:build js || wasm
// +build js wasm

package router

import (
	"fmt"
	"sync"
	"syscall/js"

	"github.com/vcrobe/folio/console"
	"github.com/vcrobe/folio/runtime"
)

// Compile-time assertion to ensure Engine implements the NavigationManager interface.
var _ runtime.NavigationManager = (*Engine)(nil)

// Engine manages routing with the app shell pattern and pivot-based layout reuse.
// It preserves layout instances across navigations when the layout chain matches.
type Engine struct {
	mu               sync.Mutex
	currentPath      string
	activeChain      []ComponentMetadata
	liveInstances    []runtime.Component // Parallel to activeChain; instances are reused
	pivotPoint       int                 // First index where chain differs between routes
	routes           []Route
	renderer         runtime.Renderer
	onRouteChange    func(chain []runtime.Component, key string)
	popstateListener js.Func
	listening        bool
}

// NewEngine creates a new router engine.
// The renderer can be set later via SetRenderer if needed.
func NewEngine(renderer runtime.Renderer) *Engine {
	return &Engine{
		renderer:      renderer,
		liveInstances: make([]runtime.Component, 0, 4),
	}
}

// SetRenderer sets the renderer on the engine (used after engine creation).
func (e *Engine) SetRenderer(renderer runtime.Renderer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderer = renderer
}

// RegisterRoutes adds routes to the engine. Routes are matched in registration order.
func (e *Engine) RegisterRoutes(routes []Route) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.routes = append(e.routes, routes...)
}

// Navigate changes the current route and pushes it onto the browser history.
func (e *Engine) Navigate(path string) error {
	return e.navigate(path, true)
}

func (e *Engine) navigate(path string, pushState bool) error {
	e.mu.Lock()

	path = NormalizePath(path)
	target, params, ok := Match(e.routes, path)
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("no route for path: %s", path)
	}

	if pushState && js.Global().Get("location").Get("pathname").String() != path {
		js.Global().Get("history").Call("pushState", nil, "", path)
	}

	// The leaf is always rebuilt so that route params reach the page, even when
	// the whole chain matches by TypeID.
	pivot := Pivot(e.activeChain, target.Chain)
	if pivot >= len(target.Chain) && pivot > 0 {
		pivot = len(target.Chain) - 1
	}

	newInstances := make([]runtime.Component, len(target.Chain))
	copy(newInstances[:pivot], e.liveInstances[:pivot])
	for i := pivot; i < len(target.Chain); i++ {
		instance := target.Chain[i].Factory(params)
		// Inject renderer so component can call StateHasChanged() and Navigate()
		instance.SetRenderer(e.renderer)
		newInstances[i] = instance
	}

	e.currentPath = path
	e.activeChain = target.Chain
	e.liveInstances = newInstances
	e.pivotPoint = pivot

	onChange := e.onRouteChange
	renderer := e.renderer
	e.mu.Unlock()

	// Rendering happens outside the lock: components may navigate from their hooks.
	if onChange != nil {
		onChange(newInstances, fmt.Sprintf("%s:%d", path, pivot))
		return nil
	}
	if renderer != nil {
		renderer.ReRender()
	}
	return nil
}

// CurrentPath returns the current route path.
func (e *Engine) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPath
}

// CurrentPivotPoint returns the pivot point from the last navigation.
func (e *Engine) CurrentPivotPoint() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pivotPoint
}

// Start registers the popstate listener and navigates to the current browser path.
// The onChange callback is invoked on every navigation, typically AppShell.SetPage.
func (e *Engine) Start(onChange func(chain []runtime.Component, key string)) error {
	e.mu.Lock()
	e.onRouteChange = onChange
	if !e.listening {
		e.popstateListener = js.FuncOf(func(this js.Value, args []js.Value) any {
			// The URL has already changed; do not push it again.
			path := js.Global().Get("location").Get("pathname").String()
			if err := e.navigate(path, false); err != nil {
				console.Warn("router: popstate:", err.Error())
			}
			return nil
		})
		js.Global().Call("addEventListener", "popstate", e.popstateListener)
		e.listening = true
	}
	e.mu.Unlock()

	initialPath := js.Global().Get("location").Get("pathname").String()
	if err := e.navigate(initialPath, false); err != nil {
		console.Warn("router: initial path:", err.Error(), "falling back to /")
		return e.navigate("/", true)
	}
	return nil
}

// Cleanup releases resources held by the engine.
// Call this when the engine is no longer needed to prevent memory leaks.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.listening {
		return
	}
	js.Global().Call("removeEventListener", "popstate", e.popstateListener)
	e.popstateListener.Release()
	e.listening = false
}
