package landing

import (
	"strconv"

	"github.com/vcrobe/folio/events"
	"github.com/vcrobe/folio/internal/portfolio/content"
	"github.com/vcrobe/folio/motion"
	"github.com/vcrobe/folio/runtime"
	"github.com/vcrobe/folio/vdom"
)

const sectionPadding = "py-16 md:py-24 px-6 md:px-12 lg:px-24"

func (p *LandingPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"id": "landing", "class": "min-h-screen bg-white"},
		p.renderHero(),
		p.renderAbout(),
		p.renderProjects(),
		p.renderSkills(),
		p.renderCallToAction(),
		p.renderFooter(),
	)
}

// outbound links always open in an isolated browsing context.
func outbound(href, class string, children ...*vdom.VNode) *vdom.VNode {
	return vdom.A(map[string]any{
		"href":   href,
		"target": "_blank",
		"rel":    "noopener noreferrer",
		"class":  class,
	}, children...)
}

func text(tag, class, s string) *vdom.VNode {
	if class == "" {
		return vdom.El(tag, nil, vdom.Text(s))
	}
	return vdom.El(tag, map[string]any{"class": class}, vdom.Text(s))
}

func (p *LandingPage) renderHero() *vdom.VNode {
	stagger := motion.StaggerContainer.Transition

	intro := vdom.Div(nil,
		text("span", "inline-block px-4 py-2 rounded-full bg-blue-100 text-blue-800 text-sm font-medium mb-6", "Full Stack Developer"),
		vdom.Heading(1, map[string]any{"class": "text-4xl md:text-5xl lg:text-6xl font-bold mb-6 leading-tight"},
			vdom.Text("Creating digital experiences that "),
			text("span", "text-blue-600", "inspire"),
		),
		text("p", "text-lg text-gray-600 mb-8",
			"I'm a passionate developer focused on building innovative web and mobile applications "+
				"that solve real-world problems with clean, efficient code."),
		motion.Stagger(vdom.Div(map[string]any{"class": "flex flex-wrap gap-4"},
			outbound(content.ResumeURL,
				"inline-block px-8 py-3 bg-blue-600 hover:bg-blue-700 text-white rounded-lg font-medium transition-colors",
				vdom.Text(content.Resume().Label)),
			outbound(content.ContactURL,
				"inline-block px-8 py-3 border border-gray-300 hover:border-gray-400 rounded-lg font-medium transition-colors",
				vdom.Text("Contact Me")),
		), stagger, motion.FadeIn, p.Ready),
	)

	art := vdom.Div(map[string]any{"class": "relative"},
		vdom.Div(map[string]any{"class": "w-full h-96 rounded-2xl bg-gradient-to-br from-blue-500 to-purple-600 shadow-xl"},
			vdom.Img(map[string]any{
				"src":    content.HeroImage,
				"alt":    "Professional Developer Working",
				"width":  "800",
				"height": "600",
				"class":  "w-full h-full object-cover",
			}),
		),
		vdom.Div(map[string]any{"class": "absolute -top-8 -left-8 w-24 h-24 rounded-xl bg-yellow-400 shadow-lg"}),
		vdom.Div(map[string]any{"class": "absolute -bottom-8 -right-8 w-16 h-16 rounded-full bg-blue-400 shadow-lg"}),
	)

	section := vdom.Section(map[string]any{
		"id":    string(content.SectionHero),
		"class": "pt-32 pb-16 md:pt-40 md:pb-24 px-6 md:px-12 lg:px-24 max-w-7xl mx-auto",
	}, vdom.Div(map[string]any{"class": "grid md:grid-cols-2 gap-12 items-center"},
		motion.Apply(intro, motion.FadeIn, p.Ready, stagger.ChildDelay(0)),
		motion.Apply(art, motion.ScaleUp, p.Ready, stagger.ChildDelay(1)),
	))
	return motion.Apply(section, motion.StaggerContainer, p.Ready, 0)
}

func (p *LandingPage) renderAbout() *vdom.VNode {
	visible := p.Revealed(content.SectionAbout)

	stats := make([]*vdom.VNode, 0, 4)
	for _, s := range content.Stats() {
		stats = append(stats, vdom.Div(map[string]any{"class": "bg-white p-4 rounded-lg shadow-md text-center"},
			text("h3", "font-bold text-xl text-blue-600 mb-1", s.Value),
			text("p", "text-gray-600", s.Label),
		))
	}

	portrait := vdom.Div(map[string]any{"class": "md:w-1/3"},
		vdom.Div(map[string]any{"class": "w-64 h-64 md:w-100 md:h-100 rounded-full bg-gradient-to-tr from-blue-400 to-purple-500 shadow-xl mx-auto overflow-hidden"},
			vdom.Img(map[string]any{
				"src":    content.ProfileImage,
				"alt":    content.Owner + " - Professional Portrait",
				"width":  "320",
				"height": "320",
				"class":  "w-full h-full object-cover",
			}),
		),
	)

	bio := motion.Stagger(vdom.Div(map[string]any{"class": "md:w-2/3"},
		text("h2", "text-3xl md:text-4xl font-bold mb-6", "About Me"),
		text("p", "text-lg text-gray-600 mb-6",
			"I'm a developer with over 3 years of experience building web applications. "+
				"I specialize in React.js, Thymeleaf and Spring Boot, creating performant and scalable solutions "+
				"for businesses across various industries."),
		text("p", "text-lg text-gray-600 mb-8",
			"My approach combines technical expertise with a strong focus on user experience, "+
				"ensuring that the applications I build are not only functional but also intuitive "+
				"and enjoyable to use."),
		motion.Stagger(vdom.Div(map[string]any{"class": "grid grid-cols-2 md:grid-cols-4 gap-4"}, stats...),
			motion.StaggerContainer.Transition, motion.ScaleUp, visible),
	), motion.StaggerContainer.Transition, motion.FadeIn, visible)

	section := vdom.Section(map[string]any{
		"id":    string(content.SectionAbout),
		"class": sectionPadding + " bg-gray-50",
	}, vdom.Div(map[string]any{"class": "max-w-7xl mx-auto"},
		vdom.Div(map[string]any{"class": "flex flex-col md:flex-row gap-12 items-center"},
			motion.Apply(portrait, motion.ScaleUp, visible, 0),
			bio,
		),
	))
	return motion.Apply(section, motion.FadeIn, visible, 0)
}

// sectionHeader is the centred title block of the projects and skills sections.
func sectionHeader(title, lead string, visible bool) *vdom.VNode {
	header := vdom.Div(map[string]any{"class": "text-center mb-16"},
		text("h2", "text-3xl md:text-4xl font-bold mb-4", title),
		text("p", "text-lg text-gray-600 max-w-2xl mx-auto", lead),
	)
	return motion.Apply(header, motion.FadeIn, visible, 0)
}

func (p *LandingPage) renderProjects() *vdom.VNode {
	visible := p.Revealed(content.SectionProjects)

	var cards []*vdom.VNode
	for card := range content.Cards() {
		cards = append(cards, renderCard(card))
	}

	section := vdom.Section(map[string]any{
		"id":    string(content.SectionProjects),
		"class": sectionPadding,
	}, vdom.Div(map[string]any{"class": "max-w-7xl mx-auto"},
		sectionHeader("Featured Projects",
			"Here are some of my recent projects that showcase my skills and expertise "+
				"in developing web and mobile applications.", visible),
		motion.Stagger(vdom.Div(map[string]any{"class": "grid md:grid-cols-2 lg:grid-cols-3 gap-8"}, cards...),
			motion.StaggerContainer.Transition, motion.ScaleUp, visible),
	))
	return motion.Apply(section, motion.StaggerContainer, visible, 0)
}

func renderCard(card content.Card) *vdom.VNode {
	tags := make([]*vdom.VNode, 0, len(card.Project.Tags))
	for _, tag := range card.Project.Tags {
		tags = append(tags, text("span", "px-3 py-1 bg-blue-100 text-blue-700 text-xs font-medium rounded-full", tag))
	}

	return vdom.Div(map[string]any{
		"class":           "bg-white rounded-xl overflow-hidden shadow-lg",
		"data-project-id": strconv.Itoa(card.Project.ID),
	},
		vdom.Div(map[string]any{"class": "h-48 overflow-hidden"},
			vdom.Img(map[string]any{
				"src":   card.Project.Image,
				"alt":   card.Project.Title,
				"class": "w-full h-full object-cover",
			}),
		),
		vdom.Div(map[string]any{"class": "p-6"},
			text("h3", "text-xl font-bold mb-2", card.Project.Title),
			text("p", "text-gray-600 mb-4", card.Project.Description),
			vdom.Div(map[string]any{"class": "flex flex-wrap gap-2 mb-4"}, tags...),
			outbound(card.Project.Link,
				"inline-flex items-center gap-2 mt-4 px-4 py-2 bg-blue-600 text-white rounded hover:bg-blue-700 transition",
				vdom.Text(card.LinkLabel),
				externalLinkIcon(),
			),
		),
	)
}

func externalLinkIcon() *vdom.VNode {
	return vdom.SVG(map[string]any{
		"xmlns":           "http://www.w3.org/2000/svg",
		"width":           "16",
		"height":          "16",
		"viewBox":         "0 0 24 24",
		"fill":            "none",
		"stroke":          "currentColor",
		"stroke-width":    "2",
		"stroke-linecap":  "round",
		"stroke-linejoin": "round",
		"aria-hidden":     "true",
	},
		vdom.Path(map[string]any{"d": "M15 3h6v6"}),
		vdom.Path(map[string]any{"d": "M10 14 21 3"}),
		vdom.Path(map[string]any{"d": "M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"}),
	)
}

func (p *LandingPage) renderSkills() *vdom.VNode {
	visible := p.Revealed(content.SectionSkills)

	var tiles []*vdom.VNode
	for _, skill := range content.Skills() {
		tiles = append(tiles, vdom.Div(map[string]any{"class": "bg-white p-6 rounded-xl shadow-md text-center"},
			vdom.Div(map[string]any{"class": "w-12 h-12 mx-auto mb-4 flex items-center justify-center bg-blue-100 rounded-lg"},
				text("span", "text-blue-600 font-bold", skill.Badge()),
			),
			text("h3", "font-medium text-gray-800", string(skill)),
		))
	}

	section := vdom.Section(map[string]any{
		"id":    string(content.SectionSkills),
		"class": sectionPadding + " bg-gray-50",
	}, vdom.Div(map[string]any{"class": "max-w-7xl mx-auto"},
		sectionHeader("My Skills", "Here are the technologies and tools I use to bring ideas to life.", visible),
		motion.Stagger(vdom.Div(map[string]any{"class": "grid grid-cols-2 sm:grid-cols-3 md:grid-cols-4 lg:grid-cols-5 gap-6"}, tiles...),
			motion.StaggerContainer.Transition, motion.ScaleUp, visible),
	))
	return motion.Apply(section, motion.StaggerContainer, visible, 0)
}

func (p *LandingPage) renderCallToAction() *vdom.VNode {
	visible := p.Revealed(content.SectionContact)

	card := vdom.Div(map[string]any{"class": "bg-gradient-to-r from-blue-600 to-purple-600 rounded-3xl p-8 md:p-12 text-white text-center shadow-xl"},
		text("h2", "text-3xl md:text-4xl font-bold mb-6", "Ready to work together?"),
		text("p", "text-lg md:text-xl mb-8 text-blue-100 max-w-2xl mx-auto",
			"I'm currently available for freelance work or full-time opportunities. "+
				"Let's create something amazing together!"),
		outbound(content.ContactURL, "inline-block px-8 py-3 bg-white text-blue-600 rounded-lg font-medium shadow-md",
			vdom.Text("Get In Touch")),
	)

	section := vdom.Section(map[string]any{
		"id":    string(content.SectionContact),
		"class": sectionPadding,
	}, vdom.Div(map[string]any{"class": "max-w-5xl mx-auto"},
		motion.Apply(card, motion.ScaleUp, visible, 0),
	))
	return motion.Apply(section, motion.FadeIn, visible, 0)
}

func (p *LandingPage) renderFooter() *vdom.VNode {
	var socials []*vdom.VNode
	for _, s := range content.SocialLinks() {
		a := outbound(s.URL, "w-10 h-10 rounded-full bg-gray-800 flex items-center justify-center hover:bg-blue-600 transition-colors",
			text("span", "text-sm", s.Badge()))
		a.SetAttr("aria-label", s.Platform)
		socials = append(socials, a)
	}

	var quick []*vdom.VNode
	for _, l := range content.NavLinks() {
		path := l.Path
		quick = append(quick, vdom.Li(nil, vdom.A(map[string]any{
			"href":    path,
			"class":   "text-gray-400 hover:text-white transition-colors",
			"onclick": events.AdaptLinkEvent(func() { p.navigate(path) }),
		}, vdom.Text(l.Label))))
	}

	contact := content.Contact()

	return vdom.Footer(map[string]any{"class": "py-12 bg-gray-900 text-white"},
		vdom.Div(map[string]any{"class": "max-w-7xl mx-auto px-6 md:px-12 lg:px-24"},
			vdom.Div(map[string]any{"class": "grid md:grid-cols-3 gap-12"},
				vdom.Div(nil,
					text("h3", "text-2xl font-bold mb-4", "Portfolio"),
					text("p", "text-gray-400 mb-4", "Creating exceptional digital experiences with modern web technologies."),
					vdom.Div(map[string]any{"class": "flex space-x-4"}, socials...),
				),
				vdom.Div(nil,
					text("h3", "text-xl font-medium mb-4", "Quick Links"),
					vdom.Ul(map[string]any{"class": "space-y-2"}, quick...),
				),
				vdom.Div(nil,
					text("h3", "text-xl font-medium mb-4", "Contact"),
					vdom.Ul(map[string]any{"class": "space-y-2 text-gray-400"},
						text("li", "", contact.Email),
						text("li", "", contact.Phone),
						text("li", "", contact.Location),
					),
				),
			),
			vdom.Div(map[string]any{"class": "border-t border-gray-800 mt-12 pt-8 text-center text-gray-400"},
				vdom.Paragraph("© "+strconv.Itoa(p.Year)+" "+content.Owner+". All rights reserved.", nil),
			),
		),
	)
}
