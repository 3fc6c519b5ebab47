//go:build !wasm
// +build !wasm

package layout_test

import (
	"testing"

	"github.com/vcrobe/folio/internal/portfolio/components/layout"
	"github.com/vcrobe/folio/testcomponents"
	"github.com/vcrobe/folio/vdom"
	"github.com/vcrobe/folio/viewport"
)

func TestMainLayout_RendersNavbarAndSlot(t *testing.T) {
	// Arrange
	l := layout.New(viewport.NewFake())
	l.SetBodyContent([]*vdom.VNode{vdom.Paragraph("page", map[string]any{"id": "page"})})
	r := testcomponents.NewTestRenderer(l)

	// Act
	root := r.Mount()

	// Assert
	if vdom.FindByID(root, "navbar") == nil {
		t.Error("Expected the navbar to render")
	}
	content := vdom.FindByID(root, "content")
	if len(content.Children) != 1 || content.Children[0].Content != "page" {
		t.Errorf("Expected the page inside the content slot, got %+v", content.Children)
	}
}

func TestMainLayout_NavbarSurvivesRerenders(t *testing.T) {
	// Arrange
	fake := viewport.NewFake()
	l := layout.New(fake)
	r := testcomponents.NewTestRenderer(l)
	r.Mount()
	nb := l.Navbar()

	// Act
	l.SetBodyContent([]*vdom.VNode{vdom.Paragraph("next", nil)})
	r.ReRender()
	fake.ScrollTo(80)

	// Assert
	if l.Navbar() != nb || !nb.Scrolled {
		t.Error("Expected the same navbar instance to keep following the scroll")
	}
	if fake.ScrollListeners() != 1 {
		t.Errorf("Expected one scroll listener, got %d", fake.ScrollListeners())
	}
}
