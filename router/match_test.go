//go:build !wasm
// +build !wasm

package router

import (
	"testing"

	"github.com/vcrobe/folio/runtime"
)

func meta(id uint32) ComponentMetadata {
	return ComponentMetadata{TypeID: id, Factory: func(map[string]string) runtime.Component { return nil }}
}

func TestMatch(t *testing.T) {
	routes := []Route{
		{Path: "/"},
		{Path: "/about"},
		{Path: "/projects/{id}"},
	}

	tests := []struct {
		path      string
		wantRoute string
		wantParam string
		wantOK    bool
	}{
		{"/", "/", "", true},
		{"", "/", "", true},
		{"/about", "/about", "", true},
		{"/about/", "/about", "", true},
		{"/projects/42", "/projects/{id}", "42", true},
		{"/projects", "", "", false},
		{"/projects/42/edit", "", "", false},
		{"/contactus", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, params, ok := Match(routes, tt.path)

			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if route.Path != tt.wantRoute {
				t.Errorf("Match(%q) route = %q, want %q", tt.path, route.Path, tt.wantRoute)
			}
			if params["id"] != tt.wantParam {
				t.Errorf("Match(%q) id = %q, want %q", tt.path, params["id"], tt.wantParam)
			}
		})
	}
}

func TestMatch_FirstRegisteredWins(t *testing.T) {
	routes := []Route{
		{Path: "/projects/{id}"},
		{Path: "/projects/featured"},
	}

	route, _, ok := Match(routes, "/projects/featured")

	if !ok || route.Path != "/projects/{id}" {
		t.Errorf("Expected the first registered route to win, got %+v", route)
	}
}

func TestPivot(t *testing.T) {
	tests := []struct {
		name    string
		current []ComponentMetadata
		target  []ComponentMetadata
		want    int
	}{
		{"first navigation", nil, []ComponentMetadata{meta(1), meta(2)}, 0},
		{"shared layout", []ComponentMetadata{meta(1), meta(2)}, []ComponentMetadata{meta(1), meta(3)}, 1},
		{"same chain", []ComponentMetadata{meta(1), meta(2)}, []ComponentMetadata{meta(1), meta(2)}, 2},
		{"different layout", []ComponentMetadata{meta(1), meta(2)}, []ComponentMetadata{meta(4), meta(2)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pivot(tt.current, tt.target); got != tt.want {
				t.Errorf("Pivot() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRoute_Instantiate(t *testing.T) {
	var got map[string]string
	route := Route{Path: "/projects/{id}", Chain: []ComponentMetadata{{
		TypeID: 1,
		Factory: func(params map[string]string) runtime.Component {
			got = params
			return nil
		},
	}}}

	_, params, _ := Match([]Route{route}, "/projects/7")
	chain := route.Instantiate(params)

	if len(chain) != 1 || got["id"] != "7" {
		t.Errorf("Expected factory to receive id=7, got %v", got)
	}
	if leaf, ok := route.Leaf(); !ok || leaf.TypeID != 1 {
		t.Errorf("Expected leaf TypeID 1, got %+v", leaf)
	}
}
