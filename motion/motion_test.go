package motion

import (
	"strings"
	"testing"
	"time"

	"github.com/vcrobe/folio/vdom"
)

func TestSpring_DurationIsClamped(t *testing.T) {
	tests := []struct {
		name    string
		damping float64
		want    time.Duration
	}{
		{"nav spring", 15, 533 * time.Millisecond},
		{"stiff", 100, 150 * time.Millisecond},
		{"loose", 1, 2 * time.Second},
		{"undamped", 0, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spring{Stiffness: 100, Damping: tt.damping}.Duration()
			if got.Milliseconds() != tt.want.Milliseconds() {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpring_UnderDampedOvershoots(t *testing.T) {
	under := Spring{Stiffness: 100, Damping: 15}
	over := Spring{Stiffness: 100, Damping: 40}

	if under.Easing() == over.Easing() {
		t.Fatal("Expected different easings for under- and over-damped springs")
	}
	if !strings.Contains(under.Easing(), "1.56") {
		t.Errorf("Expected an overshooting curve, got %q", under.Easing())
	}
}

func TestTransition_ChildDelay(t *testing.T) {
	tr := StaggerContainer.Transition

	if got := tr.ChildDelay(0); got != 200*time.Millisecond {
		t.Errorf("ChildDelay(0) = %v, want 200ms", got)
	}
	if got := tr.ChildDelay(2); got != 800*time.Millisecond {
		t.Errorf("ChildDelay(2) = %v, want 800ms", got)
	}
}

func TestFadeIn_Style(t *testing.T) {
	hidden := FadeIn.Style(false, 0)
	visible := FadeIn.Style(true, 100*time.Millisecond)

	if !strings.Contains(hidden, "opacity: 0;") || !strings.Contains(hidden, "translate(0px, 20px)") {
		t.Errorf("Unexpected hidden style %q", hidden)
	}
	if !strings.Contains(visible, "opacity: 1;") || !strings.Contains(visible, "transform: none") {
		t.Errorf("Unexpected visible style %q", visible)
	}
	if !strings.Contains(visible, "opacity 600ms ease-out 100ms") {
		t.Errorf("Expected the delayed transition in %q", visible)
	}
}

func TestCollapse_HidesOverflow(t *testing.T) {
	closed := Collapse.Style(false, 0)
	open := Collapse.Style(true, 0)

	if !strings.Contains(closed, "max-height: 0") {
		t.Errorf("Expected a zero height when collapsed, got %q", closed)
	}
	if !strings.Contains(open, "max-height: "+expandedHeight) {
		t.Errorf("Expected an expanded height when open, got %q", open)
	}
	if !strings.Contains(open, "max-height 300ms") {
		t.Errorf("Expected max-height to be animated, got %q", open)
	}
}

func TestApply_MergesExistingStyle(t *testing.T) {
	n := vdom.Div(map[string]any{"style": "color: red"})

	Apply(n, ScaleUp, true, 0)

	style := n.AttrString("style")
	if !strings.HasPrefix(style, "color: red; opacity: 1;") {
		t.Errorf("Expected existing style to be kept first, got %q", style)
	}
	if n.AttrString("data-motion") != "visible" {
		t.Errorf("Expected data-motion=visible, got %q", n.AttrString("data-motion"))
	}
}

func TestStagger_DelaysEachChild(t *testing.T) {
	list := vdom.Ul(nil, vdom.Li(nil), vdom.Li(nil), vdom.Li(nil))

	Stagger(list, StaggerContainer.Transition, FadeIn, true)

	for i, child := range list.Children {
		want := ms(StaggerContainer.Transition.ChildDelay(i))
		if !strings.Contains(child.AttrString("style"), "ease-out "+want) {
			t.Errorf("child %d: expected delay %s in %q", i, want, child.AttrString("style"))
		}
	}
}
