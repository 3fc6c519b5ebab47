//go:build !wasm
// +build !wasm

package landing_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/vcrobe/folio/internal/portfolio/components/landing"
	"github.com/vcrobe/folio/internal/portfolio/content"
	"github.com/vcrobe/folio/testcomponents"
	"github.com/vcrobe/folio/vdom"
	"github.com/vcrobe/folio/viewport"
)

func setup(focus content.Section) (*landing.LandingPage, *testcomponents.TestRenderer, *viewport.Fake) {
	fake := viewport.NewFake()
	page := landing.New(focus, fake)
	page.Year = 2026
	return page, testcomponents.NewTestRenderer(page), fake
}

func motionState(root *vdom.VNode, section content.Section) string {
	return vdom.FindByID(root, string(section)).AttrString("data-motion")
}

func TestLandingPage_NotReadyBeforeFirstFrame(t *testing.T) {
	// Arrange
	page, r, fake := setup("")

	// Act
	r.Mount()

	// Assert
	if page.Ready {
		t.Fatal("Expected ready to wait for the next frame")
	}
	if got := motionState(r.GetCurrentVDOM(), content.SectionHero); got != "hidden" {
		t.Errorf("Expected the hero hidden before the first frame, got %q", got)
	}
	if fake.PendingFrames() != 1 {
		t.Errorf("Expected one pending frame, got %d", fake.PendingFrames())
	}
}

func TestLandingPage_ReadyFlipsOnceAndNeverReverts(t *testing.T) {
	// Arrange
	page, r, fake := setup("")
	r.Mount()

	// Act
	fake.Flush()

	// Assert
	if !page.Ready {
		t.Fatal("Expected ready after the first frame")
	}
	if got := motionState(r.GetCurrentVDOM(), content.SectionHero); got != "visible" {
		t.Errorf("Expected the hero visible, got %q", got)
	}

	// Act: a second mount signal and further renders change nothing
	page.OnMount()
	fake.Flush()
	r.ReRender()

	// Assert
	if !page.Ready {
		t.Error("Expected ready to stay true")
	}
	if fake.PendingFrames() != 0 {
		t.Errorf("Expected no frame scheduled by a repeated mount, got %d", fake.PendingFrames())
	}
}

func TestLandingPage_SectionsRevealOnce(t *testing.T) {
	// Arrange
	page, r, fake := setup("")
	r.Mount()
	fake.Flush()

	for _, section := range []content.Section{
		content.SectionAbout, content.SectionProjects, content.SectionSkills, content.SectionContact,
	} {
		if got := motionState(r.GetCurrentVDOM(), section); got != "hidden" {
			t.Errorf("%s: expected hidden before it scrolls into view, got %q", section, got)
		}

		// Act
		fake.Intersect(string(section))
		renders := r.RenderCount
		replays := fake.Intersect(string(section))

		// Assert
		if !page.Revealed(section) {
			t.Errorf("%s: expected revealed", section)
		}
		if got := motionState(r.GetCurrentVDOM(), section); got != "visible" {
			t.Errorf("%s: expected visible, got %q", section, got)
		}
		if replays != 0 || r.RenderCount != renders {
			t.Errorf("%s: expected the reveal not to replay", section)
		}
	}
}

func TestLandingPage_AboutUsesLargerThreshold(t *testing.T) {
	_, r, fake := setup("")
	r.Mount()

	if th, _ := fake.Threshold(string(content.SectionAbout)); th != 0.2 {
		t.Errorf("Expected about threshold 0.2, got %v", th)
	}
	if th, _ := fake.Threshold(string(content.SectionProjects)); th != 0.1 {
		t.Errorf("Expected projects threshold 0.1, got %v", th)
	}
}

func TestLandingPage_RendersThreeProjectCards(t *testing.T) {
	// Arrange
	_, r, _ := setup("")

	// Act
	root := r.Mount()

	// Assert
	projects := vdom.FindByID(root, string(content.SectionProjects))
	cards := vdom.FindAll(projects, func(v *vdom.VNode) bool {
		return v.AttrString("data-project-id") != ""
	})
	if len(cards) != 3 {
		t.Fatalf("Expected exactly 3 cards, got %d", len(cards))
	}

	want := content.Projects()
	for i, card := range cards {
		links := vdom.FindAll(card, func(v *vdom.VNode) bool { return v.Tag == "a" })
		if len(links) != 1 {
			t.Fatalf("card %d: expected one link, got %d", i, len(links))
		}
		link := links[0]
		if link.AttrString("href") != want[i].Link {
			t.Errorf("card %d: href = %q, want %q", i, link.AttrString("href"), want[i].Link)
		}
		if link.AttrString("target") != "_blank" || link.AttrString("rel") != "noopener noreferrer" {
			t.Errorf("card %d: expected an isolated new-tab link", i)
		}
		if strings.TrimSpace(link.TextContent()) != "View Project" {
			t.Errorf("card %d: label = %q", i, link.TextContent())
		}
	}
}

func TestLandingPage_OutboundLinksAreIsolated(t *testing.T) {
	_, r, _ := setup("")
	root := r.Mount()

	outbound := vdom.FindAll(root, func(v *vdom.VNode) bool {
		href := v.AttrString("href")
		return v.Tag == "a" && (strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "mailto:"))
	})

	// resume, contact, 3 projects, get in touch, 4 socials
	if len(outbound) != 10 {
		t.Errorf("Expected 10 outbound links, got %d", len(outbound))
	}
	var hrefs []string
	for _, a := range outbound {
		hrefs = append(hrefs, a.AttrString("href"))
		if a.AttrString("target") != "_blank" || a.AttrString("rel") != "noopener noreferrer" {
			t.Errorf("%s: expected target=_blank rel=noopener noreferrer", a.AttrString("href"))
		}
	}
	if !slices.Contains(hrefs, content.ResumeURL) || !slices.Contains(hrefs, content.ContactURL) {
		t.Errorf("Expected resume and contact links, got %v", hrefs)
	}
}

func TestLandingPage_UnmountCancelsPendingWork(t *testing.T) {
	// Arrange
	page, r, fake := setup("")
	r.Mount()

	// Act
	r.Unmount()
	fake.Flush()
	fake.Intersect(string(content.SectionAbout))

	// Assert
	if page.Ready || page.Revealed(content.SectionAbout) {
		t.Error("Expected no state change after unmount")
	}
	if fake.Observing(string(content.SectionSkills)) != 0 {
		t.Error("Expected observations to be cancelled")
	}
}

func TestLandingPage_RemountObservesUnrevealedSections(t *testing.T) {
	// Arrange
	page, r, fake := setup("")
	r.Mount()
	fake.Flush()
	fake.Intersect(string(content.SectionAbout))

	// Act
	r.Unmount()
	r.Mount()

	// Assert
	if !page.Ready || !page.Revealed(content.SectionAbout) {
		t.Fatal("Expected ready and revealed sections to survive a remount")
	}
	if fake.PendingFrames() != 0 {
		t.Errorf("Expected no ready frame on remount, got %d", fake.PendingFrames())
	}
	if fake.Observing(string(content.SectionAbout)) != 0 {
		t.Error("Expected a revealed section not to be observed again")
	}
	if fake.Observing(string(content.SectionProjects)) != 1 {
		t.Fatalf("Expected projects observed after remount, got %d", fake.Observing(string(content.SectionProjects)))
	}

	fake.Intersect(string(content.SectionProjects))
	if !page.Revealed(content.SectionProjects) {
		t.Error("Expected projects revealed after remount")
	}
	if got := motionState(r.GetCurrentVDOM(), content.SectionProjects); got != "visible" {
		t.Errorf("Expected projects visible, got %q", got)
	}
}

func TestLandingPage_FocusScrollsIntoView(t *testing.T) {
	tests := []struct {
		focus content.Section
		want  []string
	}{
		{"", nil},
		{content.SectionHero, nil},
		{content.SectionSkills, []string{"skills"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.focus), func(t *testing.T) {
			_, r, fake := setup(tt.focus)
			r.Mount()

			fake.Flush()

			if !slices.Equal(fake.ScrolledInto, tt.want) {
				t.Errorf("ScrolledInto = %v, want %v", fake.ScrolledInto, tt.want)
			}
		})
	}
}

func TestLandingPage_NewRouteScrollsOncePerNavigation(t *testing.T) {
	// Arrange
	page, r, fake := setup("")
	r.Mount()
	fake.Flush()
	next := landing.New(content.SectionAbout, nil)

	// Act
	page.ApplyProps(next)
	page.ApplyProps(next)
	fake.Flush()

	// Assert
	if page.Focus != content.SectionAbout {
		t.Errorf("Expected focus about, got %q", page.Focus)
	}
	if !slices.Equal(fake.ScrolledInto, []string{"about"}) {
		t.Errorf("Expected a single scroll to about, got %v", fake.ScrolledInto)
	}
	if !page.Ready {
		t.Error("Expected the live page to keep its state")
	}
}

func TestLandingPage_FooterQuickLinksNavigate(t *testing.T) {
	// Arrange
	_, r, _ := setup("")
	root := r.Mount()
	footer := vdom.FindAll(root, func(v *vdom.VNode) bool { return v.Tag == "footer" })[0]
	links := vdom.FindAll(footer, func(v *vdom.VNode) bool {
		return v.Tag == "a" && strings.HasPrefix(v.AttrString("href"), "/")
	})

	// Act
	for _, a := range links {
		a.Attributes["onclick"].(func())()
	}

	// Assert
	want := []string{"/", "/about", "/projects", "/skills", "/contact"}
	if !slices.Equal(r.Navigations, want) {
		t.Errorf("Navigations = %v, want %v", r.Navigations, want)
	}
	if !strings.Contains(footer.TextContent(), "© 2026 Vaibhav Shukla. All rights reserved.") {
		t.Errorf("Expected the copyright line, got %q", footer.TextContent())
	}
}

func TestLandingPage_SkillBadges(t *testing.T) {
	_, r, _ := setup("")
	root := r.Mount()

	skills := vdom.FindByID(root, string(content.SectionSkills))
	tiles := vdom.FindAll(skills, func(v *vdom.VNode) bool { return v.Tag == "h3" })

	if len(tiles) != len(content.Skills()) {
		t.Fatalf("Expected %d skill tiles, got %d", len(content.Skills()), len(tiles))
	}
}
