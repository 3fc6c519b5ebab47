package vdom

// El creates an element VNode with the given attributes and children.
func El(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Paragraph creates a <p> VNode with the given text as its content and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Span creates a <span> VNode.
func Span(attrs map[string]any, children ...*VNode) *VNode {
	return El("span", attrs, children...)
}

// A creates an <a> VNode.
func A(attrs map[string]any, children ...*VNode) *VNode {
	return El("a", attrs, children...)
}

// Img creates a void <img> VNode.
func Img(attrs map[string]any) *VNode {
	return NewVNode("img", attrs, nil, "")
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1..6 are clamped.
func Heading(level int, attrs map[string]any, children ...*VNode) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return El("h"+string(rune('0'+level)), attrs, children...)
}

// Section creates a <section> VNode.
func Section(attrs map[string]any, children ...*VNode) *VNode {
	return El("section", attrs, children...)
}

// Nav creates a <nav> VNode.
func Nav(attrs map[string]any, children ...*VNode) *VNode {
	return El("nav", attrs, children...)
}

// Footer creates a <footer> VNode.
func Footer(attrs map[string]any, children ...*VNode) *VNode {
	return El("footer", attrs, children...)
}

// Main creates a <main> VNode.
func Main(attrs map[string]any, children ...*VNode) *VNode {
	return El("main", attrs, children...)
}

// Ul creates a <ul> VNode.
func Ul(attrs map[string]any, children ...*VNode) *VNode {
	return El("ul", attrs, children...)
}

// Li creates an <li> VNode.
func Li(attrs map[string]any, children ...*VNode) *VNode {
	return El("li", attrs, children...)
}

// SVG creates an <svg> VNode. It is created in the SVG namespace in the browser.
func SVG(attrs map[string]any, children ...*VNode) *VNode {
	return El("svg", attrs, children...)
}

// Path creates an SVG <path> VNode.
func Path(attrs map[string]any) *VNode {
	return NewVNode("path", attrs, nil, "")
}
