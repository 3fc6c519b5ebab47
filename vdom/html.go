package vdom

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode converts a VNode tree into an x/net/html node tree for server-side
// rendering. Event handlers and false boolean attributes are dropped, nil children
// are skipped. Attributes are emitted in key order so output is deterministic.
func ToHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}

	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n.Attributes),
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}

	for _, child := range n.Children {
		if c := ToHTMLNode(child); c != nil {
			el.AppendChild(c)
		}
	}

	return el
}

// RenderHTML writes the HTML serialisation of n to w.
func RenderHTML(w io.Writer, n *VNode) error {
	node := ToHTMLNode(n)
	if node == nil {
		return nil
	}
	if err := html.Render(w, node); err != nil {
		return fmt.Errorf("render %s: %w", n.Tag, err)
	}
	return nil
}

// HTML returns the HTML serialisation of n.
func HTML(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, key := range keys {
		if isEventAttribute(key) {
			continue
		}
		val, ok := attributeString(attrs[key])
		if !ok {
			continue
		}
		out = append(out, html.Attribute{Key: key, Val: val})
	}
	return out
}

// attributeString formats an attribute value the same way the browser renderer
// does. The second result is false when the attribute must be omitted.
func attributeString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		return "", v
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	}
	// Handlers are attached as listeners, never serialised.
	if isFunc(value) {
		return "", false
	}
	return fmt.Sprint(value), true
}

func isEventAttribute(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

func isFunc(value any) bool {
	return reflect.TypeOf(value).Kind() == reflect.Func
}
