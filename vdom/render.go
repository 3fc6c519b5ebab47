//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/folio/console"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// voidTags never receive children or text content.
var voidTags = map[string]bool{
	"img":   true,
	"input": true,
	"br":    true,
	"hr":    true,
	"path":  true,
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if l, ok := cb.(listener); ok {
			l.fn.Release()
		}
	}
	v.ClearEventCallbacks()
}

// detachCallbacks removes the node's listeners from a live element, then releases them.
func detachCallbacks(el js.Value, v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if l, ok := cb.(listener); ok {
			el.Call("removeEventListener", l.event, l.fn)
			l.fn.Release()
		}
	}
	v.ClearEventCallbacks()
}

// listener is a js.Func attached to a live element for one event type.
type listener struct {
	event string
	fn    js.Func
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear releases the callbacks of the previous tree and empties the mount element.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}

	// Pre-rendered server markup is discarded here as well.
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	}

	// Event handlers are attached via addEventListener, not setAttribute.
	if _, ok := value.(func(js.Value)); ok {
		return
	}

	el.Call("setAttribute", key, value)
}

// attachEventListeners processes attributes and attaches event listeners for event handlers.
// Event attributes start with "on" (e.g., onClick, onInput, onMousedown).
// The VNode parameter is used to store js.Func objects for later cleanup.
func attachEventListeners(el js.Value, vnode *VNode, attributes map[string]any) {
	for key, value := range attributes {
		if !isEventAttribute(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			continue
		}

		// "onClick" -> "click"
		eventName := key[2:]
		if eventName[0] >= 'A' && eventName[0] <= 'Z' {
			eventName = string(eventName[0]+('a'-'A')) + eventName[1:]
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})

		el.Call("addEventListener", eventName, cb)

		if vnode != nil {
			vnode.AddEventCallback(listener{event: eventName, fn: cb})
		}
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	var el js.Value
	switch n.Tag {
	case "svg", "path":
		el = doc.Call("createElementNS", svgNamespace, n.Tag)
	default:
		el = doc.Call("createElement", n.Tag)
	}

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n, n.Attributes)

	if voidTags[n.Tag] {
		return el
	}

	if n.Content != "" {
		el.Call("appendChild", doc.Call("createTextNode", n.Content))
	}

	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := querySelector(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstElementChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	// Different component keys mean a different component instance (route change).
	if oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" && oldVNode.ComponentKey != newVNode.ComponentKey {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Listeners are cheap to re-create; the old closures capture stale state.
	detachCallbacks(domElement, oldVNode)
	attachEventListeners(domElement, newVNode, newVNode.Attributes)

	if voidTags[newVNode.Tag] {
		return
	}

	// Content is rendered as a leading text node, so it is patched as a child.
	patchChildren(domElement, contentChildren(oldVNode), contentChildren(newVNode))
}

// contentChildren returns the node's children with its Content prepended as a text node.
func contentChildren(n *VNode) []*VNode {
	if n.Content == "" {
		return n.Children
	}
	out := make([]*VNode, 0, len(n.Children)+1)
	out = append(out, Text(n.Content))
	return append(out, n.Children...)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists && !isEventAttribute(key) {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if isEventAttribute(key) {
			continue
		}
		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// compact drops nil placeholders and empty text nodes, which have no DOM counterpart.
func compact(children []*VNode) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, c := range children {
		if c == nil || (c.Tag == TextTag && c.Content == "") {
			continue
		}
		out = append(out, c)
	}
	return out
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldChildren = compact(oldChildren)
	newChildren = compact(newChildren)

	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
