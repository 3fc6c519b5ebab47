// Package landing implements the single portfolio page: hero, about, projects,
// skills, call to action and footer.
//
// The page plays its entrance transitions once per display. The hero waits for
// the first frame after mount; every other section waits until it first scrolls
// into view and then stays revealed.
package landing

import (
	"time"

	"github.com/vcrobe/folio/console"
	"github.com/vcrobe/folio/internal/portfolio/content"
	"github.com/vcrobe/folio/runtime"
	"github.com/vcrobe/folio/viewport"
)

// reveal is a section that animates in when it first becomes visible.
type reveal struct {
	section   content.Section
	threshold float64
}

var reveals = []reveal{
	{content.SectionAbout, 0.2},
	{content.SectionProjects, 0.1},
	{content.SectionSkills, 0.1},
	{content.SectionContact, 0.1},
}

// LandingPage is the portfolio page.
type LandingPage struct {
	runtime.ComponentBase

	// Viewport is the window the page is displayed in. Nil means the platform default.
	Viewport viewport.Viewport
	// Focus is scrolled into view once the page is displayed.
	Focus content.Section
	// Year is printed in the copyright line. Zero means the current year.
	Year int

	// Ready turns true on the first frame after mount and never reverts.
	Ready bool

	revealed  map[content.Section]bool
	scheduled bool
	cancels   []func()
	applied   *LandingPage
}

// New creates a page focused on section.
func New(focus content.Section, vp viewport.Viewport) *LandingPage {
	return &LandingPage{Focus: focus, Viewport: vp}
}

func (p *LandingPage) OnInit() {
	p.Viewport = viewport.Or(p.Viewport)
	if p.Year == 0 {
		p.Year = time.Now().Year()
	}
	// A remounted page keeps what it already revealed.
	if p.revealed == nil {
		p.revealed = make(map[content.Section]bool, len(reveals))
	}
}

func (p *LandingPage) OnMount() {
	if p.scheduled {
		return
	}
	p.scheduled = true

	if !p.Ready {
		p.cancels = append(p.cancels, p.Viewport.NextFrame(p.markReady))
	}
	for _, rv := range reveals {
		section := rv.section
		if p.revealed[section] {
			continue
		}
		p.cancels = append(p.cancels, p.Viewport.ObserveOnce(string(section), rv.threshold, func() {
			p.markRevealed(section)
		}))
	}

	// The hero is already at the top of a fresh page.
	if p.Focus != "" && p.Focus != content.SectionHero {
		p.scrollToFocus()
	}
}

func (p *LandingPage) OnUnmount() {
	for _, cancel := range p.cancels {
		cancel()
	}
	p.cancels = nil
	p.scheduled = false
}

// ApplyProps takes the focus of a page built for a new route. Each navigation
// scrolls once, including a repeated click on the current route.
func (p *LandingPage) ApplyProps(next runtime.Component) {
	n, ok := next.(*LandingPage)
	if !ok || n == p || n == p.applied {
		return
	}
	p.applied = n
	p.Focus = n.Focus
	if p.Focus != "" {
		p.scrollToFocus()
	}
}

// Revealed reports whether a section has played its entrance transition.
func (p *LandingPage) Revealed(s content.Section) bool {
	return p.revealed[s]
}

func (p *LandingPage) markReady() {
	if p.Ready {
		return
	}
	p.Ready = true
	p.StateHasChanged()
}

func (p *LandingPage) markRevealed(s content.Section) {
	if p.revealed[s] {
		return
	}
	p.revealed[s] = true
	p.StateHasChanged()
}

// scrollToFocus waits a frame so the section exists in the DOM.
func (p *LandingPage) scrollToFocus() {
	focus := string(p.Focus)
	vp := p.Viewport
	p.cancels = append(p.cancels, vp.NextFrame(func() {
		vp.ScrollIntoView(focus)
	}))
}

func (p *LandingPage) navigate(path string) {
	if err := p.Navigate(path); err != nil {
		console.Warn("landing: navigate to", path, "failed:", err.Error())
	}
}
