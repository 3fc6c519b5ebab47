package vdom

import "strings"

// TextTag is the tag of a pure text node. It is materialised as a DOM text node
// with no element wrapper.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name, or TextTag
	Attributes   map[string]any // The attributes of the node, including "on*" event handlers
	Children     []*VNode       // The child nodes; nil entries are conditional placeholders
	Content      string         // The text content of the node
	ComponentKey string         // Set on component roots so the patcher can replace whole subtrees

	eventCallbacks []any // js.Func values attached to the live DOM element
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// Text creates a pure text node.
func Text(content string) *VNode {
	return &VNode{Tag: TextTag, Content: content}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Attr returns the attribute stored under key.
func (v *VNode) Attr(key string) (any, bool) {
	if v == nil || v.Attributes == nil {
		return nil, false
	}
	val, ok := v.Attributes[key]
	return val, ok
}

// AttrString returns the attribute stored under key if it is a string.
func (v *VNode) AttrString(key string) string {
	val, _ := v.Attr(key)
	s, _ := val.(string)
	return s
}

// SetAttr sets an attribute, allocating the map if needed.
func (v *VNode) SetAttr(key string, value any) *VNode {
	if v.Attributes == nil {
		v.Attributes = make(map[string]any)
	}
	v.Attributes[key] = value
	return v
}

// AddEventCallback stores a callback attached to the live element so it can be
// released when the node is replaced or removed.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the callbacks attached to the live element.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets all stored callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// TextContent returns the concatenated text of the node and its descendants.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(v.Content)
	for _, child := range v.Children {
		b.WriteString(child.TextContent())
	}
	return b.String()
}

// Classes joins the non-empty class names with single spaces.
func Classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}
