// Package motion describes entrance and exit transitions as data and renders them
// to CSS. Components pick a Variant and call Apply with their current state; the
// browser performs the interpolation.
package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vcrobe/folio/vdom"
)

// Transition describes how a change between two states is animated.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   string
	// Spring, when set, replaces Duration and Easing.
	Spring *Spring

	// StaggerChildren and DelayChildren orchestrate a container's children.
	StaggerChildren time.Duration
	DelayChildren   time.Duration
}

// ChildDelay returns the delay of the i-th child of a staggered container.
func (t Transition) ChildDelay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return t.DelayChildren + time.Duration(i)*t.StaggerChildren
}

func (t Transition) timing() (time.Duration, string) {
	if t.Spring != nil {
		return t.Spring.Duration(), t.Spring.Easing()
	}
	easing := t.Easing
	if easing == "" {
		easing = "ease"
	}
	return t.Duration, easing
}

// State is a visual end state. Zero Opacity and Scale mean fully transparent and
// collapsed to nothing, so most states set both explicitly.
type State struct {
	Opacity float64
	X       float64 // px
	Y       float64 // px
	Scale   float64
	Rotate  float64 // deg
	// Collapsed hides overflow and zeroes the height.
	Collapsed bool
}

func (s State) css() []string {
	decls := []string{"opacity: " + num(s.Opacity)}

	var transform []string
	if s.X != 0 || s.Y != 0 {
		transform = append(transform, fmt.Sprintf("translate(%spx, %spx)", num(s.X), num(s.Y)))
	}
	if s.Scale != 1 {
		transform = append(transform, "scale("+num(s.Scale)+")")
	}
	if s.Rotate != 0 {
		transform = append(transform, "rotate("+num(s.Rotate)+"deg)")
	}
	if len(transform) == 0 {
		decls = append(decls, "transform: none")
	} else {
		decls = append(decls, "transform: "+strings.Join(transform, " "))
	}

	if s.Collapsed {
		decls = append(decls, "max-height: 0", "overflow: hidden")
	}
	return decls
}

// expandedHeight bounds the max-height of an expanded collapsible block.
const expandedHeight = "32rem"

// Variant pairs a hidden and a visible state with the transition between them.
type Variant struct {
	Hidden     State
	Visible    State
	Transition Transition
	// Height also animates max-height, for collapsible blocks.
	Height bool
}

// Style renders the CSS for the variant in its hidden or visible state. extraDelay is
// added to the transition's own delay, for staggered children.
func (v Variant) Style(visible bool, extraDelay time.Duration) string {
	state := v.Hidden
	if visible {
		state = v.Visible
	}
	decls := state.css()
	if v.Height && !state.Collapsed {
		decls = append(decls, "max-height: "+expandedHeight, "overflow: hidden")
	}

	duration, easing := v.Transition.timing()
	delay := v.Transition.Delay + extraDelay
	props := []string{"opacity", "transform"}
	if v.Height {
		props = append(props, "max-height")
	}
	parts := make([]string, 0, len(props))
	for _, p := range props {
		part := p + " " + ms(duration) + " " + easing
		if delay > 0 {
			part += " " + ms(delay)
		}
		parts = append(parts, part)
	}
	decls = append(decls, "transition: "+strings.Join(parts, ", "))

	return strings.Join(decls, "; ") + ";"
}

// Apply merges the variant's style into the node's style attribute and records the
// state in data-motion. It returns the node for chaining.
func Apply(node *vdom.VNode, v Variant, visible bool, delay time.Duration) *vdom.VNode {
	if node == nil {
		return nil
	}
	style := v.Style(visible, delay)
	if existing := strings.TrimSpace(node.AttrString("style")); existing != "" {
		if !strings.HasSuffix(existing, ";") {
			existing += ";"
		}
		style = existing + " " + style
	}
	node.SetAttr("style", style)
	if visible {
		node.SetAttr("data-motion", "visible")
	} else {
		node.SetAttr("data-motion", "hidden")
	}
	return node
}

// Stagger applies v to each child of container, delaying child i by ChildDelay(i)
// of the container transition. Nil children keep their slot in the count.
func Stagger(container *vdom.VNode, orchestration Transition, v Variant, visible bool) *vdom.VNode {
	if container == nil {
		return nil
	}
	for i, child := range container.Children {
		Apply(child, v, visible, orchestration.ChildDelay(i))
	}
	return container
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
