package vdom

import (
	"strings"
	"testing"
)

func TestHTML_SerialisesInKeyOrder(t *testing.T) {
	// Arrange
	n := Div(map[string]any{"id": "card", "class": "p-4", "data-index": 2},
		Paragraph("a < b", nil),
		nil,
		Text("tail"),
	)

	// Act
	got, err := HTML(n)

	// Assert
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	want := `<div class="p-4" data-index="2" id="card"><p>a &lt; b</p>tail</div>`
	if got != want {
		t.Errorf("HTML =\n%s\nwant\n%s", got, want)
	}
}

func TestHTML_DropsHandlersAndFalseBooleans(t *testing.T) {
	n := Button("Menu", map[string]any{
		"onclick":  func() {},
		"disabled": false,
		"hidden":   true,
		"style":    nil,
	})

	got, err := HTML(n)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	if want := `<button hidden="">Menu</button>`; got != want {
		t.Errorf("HTML = %s, want %s", got, want)
	}
}

func TestHTML_VoidElement(t *testing.T) {
	got, err := HTML(Img(map[string]any{"src": "/profile.jpeg", "alt": "Profile"}))
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(got, "</img>") {
		t.Errorf("Expected a void img element, got %s", got)
	}
	if !strings.HasPrefix(got, `<img alt="Profile" src="/profile.jpeg"`) {
		t.Errorf("Unexpected img markup %s", got)
	}
}

func TestHTML_NilNode(t *testing.T) {
	got, err := HTML(nil)
	if err != nil || got != "" {
		t.Errorf("HTML(nil) = %q, %v; want empty, nil", got, err)
	}
}

func TestFindByID_StopsAtFirstMatch(t *testing.T) {
	first := Span(map[string]any{"id": "x"})
	root := Div(nil, Div(nil, first), Span(map[string]any{"id": "x"}))

	if got := FindByID(root, "x"); got != first {
		t.Error("Expected the first node in document order")
	}
	if FindByID(root, "missing") != nil {
		t.Error("Expected nil for a missing id")
	}
}

func TestFindAll_And_TextContent(t *testing.T) {
	root := Ul(nil,
		Li(nil, Text("Go")),
		Li(nil, Text("Wasm")),
	)

	items := FindAll(root, func(v *VNode) bool { return v.Tag == "li" })
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if got := root.TextContent(); got != "GoWasm" {
		t.Errorf("TextContent = %q, want GoWasm", got)
	}
}

func TestClasses(t *testing.T) {
	if got := Classes("fixed", "", "  bg-white ", "shadow"); got != "fixed bg-white shadow" {
		t.Errorf("Classes = %q", got)
	}
}

func TestHeading_ClampsLevel(t *testing.T) {
	if tag := Heading(0, nil).Tag; tag != "h1" {
		t.Errorf("Heading(0) tag = %s", tag)
	}
	if tag := Heading(9, nil).Tag; tag != "h6" {
		t.Errorf("Heading(9) tag = %s", tag)
	}
}

func TestNewVNode_LeavesAttributesUntouched(t *testing.T) {
	handler := func() {}
	attrs := map[string]any{"onClick": handler, "onclick": handler, "class": "btn"}

	n := NewVNode("button", attrs, nil, "Go")

	if len(attrs) != 3 {
		t.Errorf("Expected the caller's map unchanged, got %v", attrs)
	}
	if _, ok := n.Attr("onClick"); !ok {
		t.Error("Expected handlers to stay attributes")
	}
}
