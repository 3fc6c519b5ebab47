package vdom

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn stops the walk.
func Walk(n *VNode, fn func(*VNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// FindAll returns every node under n (inclusive) that satisfies match.
func FindAll(n *VNode, match func(*VNode) bool) []*VNode {
	var found []*VNode
	Walk(n, func(v *VNode) bool {
		if match(v) {
			found = append(found, v)
		}
		return true
	})
	return found
}

// FindByID returns the first node whose id attribute equals id.
func FindByID(n *VNode, id string) *VNode {
	var found *VNode
	Walk(n, func(v *VNode) bool {
		if v.AttrString("id") == id {
			found = v
			return false
		}
		return true
	})
	return found
}
