package site

import (
	"errors"
	"fmt"

	"github.com/vcrobe/folio/internal/portfolio/components/layout"
	"github.com/vcrobe/folio/router"
	"github.com/vcrobe/folio/runtime"
	"github.com/vcrobe/folio/vdom"
)

// ErrNotFound is returned for paths without a route.
var ErrNotFound = errors.New("site: no route")

// Render builds the tree the browser shows first for path. Components are
// initialised but never mounted, so every entrance transition is in its hidden
// state, exactly as the client renders before its first frame.
func Render(path string) (*vdom.VNode, error) {
	mainLayout := layout.New(nil)
	route, params, ok := router.Match(Routes(mainLayout, nil), path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	shell := router.NewAppShell(mainLayout)
	shell.Load(route.Instantiate(params), router.NormalizePath(path))
	return runtime.NewStaticRenderer().Render(shell), nil
}

// Prerender renders path to an HTML fragment for the #app mount point.
func Prerender(path string) (string, error) {
	n, err := Render(path)
	if err != nil {
		return "", err
	}
	out, err := vdom.HTML(n)
	if err != nil {
		return "", fmt.Errorf("site: serialise %s: %w", path, err)
	}
	return out, nil
}
