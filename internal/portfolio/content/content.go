// Package content holds the static data rendered by the portfolio pages.
// Everything here is fixed at compile time; accessors return copies so callers
// cannot change what other renders see.
package content

import (
	"iter"
	"slices"
)

// Owner is the name shown in the brand and the footer.
const Owner = "Vaibhav Shukla"

// Section identifies a page section. The value is its DOM id.
type Section string

const (
	SectionHero     Section = "hero"
	SectionAbout    Section = "about"
	SectionProjects Section = "projects"
	SectionSkills   Section = "skills"
	SectionContact  Section = "contact"
)

// Project is a featured project card.
type Project struct {
	ID          int
	Title       string
	Description string
	Image       string
	Tags        []string
	Link        string
}

// Skill is a technology name; its badge shows the first character.
type Skill string

// Badge returns the glyph shown on the skill's badge.
func (s Skill) Badge() string {
	return firstRune(string(s))
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Platform string
	URL      string
}

// Badge returns the glyph shown for the platform.
func (l SocialLink) Badge() string {
	return firstRune(l.Platform)
}

// NavLink is an in-site destination.
type NavLink struct {
	Label   string
	Path    string
	Section Section
}

// Stat is a headline number in the about block.
type Stat struct {
	Value string
	Label string
}

// ContactDetails are listed in the footer.
type ContactDetails struct {
	Email    string
	Phone    string
	Location string
}

// OutboundLink is a labelled off-site link.
type OutboundLink struct {
	Label string
	URL   string
}

const (
	ResumeURL  = "https://drive.google.com/file/d/1Aw5uOfu3Ezby5zNRlh428Wna8kAef0wh/view?usp=sharing"
	ContactURL = "mailto:imvaibhavshukla100@gmail.com"
)

// Asset paths, served from the static directory.
const (
	HeroImage    = "/hero-image.png"
	ProfileImage = "/profile-image.jpg"
)

var projects = []Project{
	{
		ID:          1,
		Title:       "Student Tracking Platform",
		Description: "A full-stack web app to track student attendance, performance, and activity in real-time.",
		Image:       "/gifs/student-tracking.gif",
		Tags:        []string{"Next.js", "MongoDB", "ZOD", "Tailwind CSS"},
		Link:        "https://student-tracking-platform.vercel.app/",
	},
	{
		ID:          2,
		Title:       "Mood Tracker",
		Description: "A mood tracker app with emoji-based input and a color-coded calendar",
		Image:       "/gifs/mood-tracking.gif",
		Tags:        []string{"Next.js", "MongoDB", "Tailwind CSS"},
		Link:        "https://mood-tracker-dun-delta.vercel.app/",
	},
	{
		ID:          3,
		Title:       "Website - Prayaas Electoral Literacy Club, ABESIT",
		Description: "Official website for Prayaas ELC ABESIT, highlighting events, initiatives, and team members.",
		Image:       "/gifs/voting.gif",
		Tags:        []string{"HTML", "CSS", "Bootstrap", "JavaScript"},
		Link:        "https://prayaas-elc-abesit-v924.vercel.app/",
	},
}

var skills = []Skill{"JavaScript", "React", "MongoDB", "C", "C++", "VS Code", "Git", "GitHub"}

var socialLinks = []SocialLink{
	{Platform: "Twitter", URL: "https://x.com/GunabhS"},
	{Platform: "GitHub", URL: "https://github.com/gunabh25"},
	{Platform: "LinkedIn", URL: "https://www.linkedin.com/in/gunabh-sharan-a65380257/"},
	{Platform: "Instagram", URL: "https://www.instagram.com/i.sharan._/"},
}

var navLinks = []NavLink{
	{Label: "Home", Path: "/", Section: SectionHero},
	{Label: "About", Path: "/about", Section: SectionAbout},
	{Label: "Projects", Path: "/projects", Section: SectionProjects},
	{Label: "Skills", Path: "/skills", Section: SectionSkills},
	{Label: "Contact", Path: "/contact", Section: SectionContact},
}

var stats = []Stat{
	{Value: "10+", Label: "Projects"},
	{Value: "5+", Label: "Clients"},
	{Value: "3+", Label: "Years"},
	{Value: "10+", Label: "Technologies"},
}

var contact = ContactDetails{
	Email:    "imvaibhavshukla100@gmail.com",
	Phone:    "+91 9506620945",
	Location: "New Delhi, India",
}

// Projects returns the featured projects in display order.
func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Tags = slices.Clone(p.Tags)
		out[i] = p
	}
	return out
}

// Skills returns the skills in display order.
func Skills() []Skill { return slices.Clone(skills) }

// SocialLinks returns the social profiles in display order.
func SocialLinks() []SocialLink { return slices.Clone(socialLinks) }

// NavLinks returns the in-site destinations in display order.
func NavLinks() []NavLink { return slices.Clone(navLinks) }

// Stats returns the about block headline numbers.
func Stats() []Stat { return slices.Clone(stats) }

// Contact returns the footer contact details.
func Contact() ContactDetails { return contact }

// Resume returns the resume download link.
func Resume() OutboundLink {
	return OutboundLink{Label: "Download My Resume", URL: ResumeURL}
}

// SectionForPath returns the section an in-site path focuses on.
func SectionForPath(path string) (Section, bool) {
	for _, l := range navLinks {
		if l.Path == path {
			return l.Section, true
		}
	}
	return "", false
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// Card is the render descriptor of a project card.
type Card struct {
	Index     int
	Project   Project
	LinkLabel string
}

// CardLinkLabel is the label of every card's outbound link.
const CardLinkLabel = "View Project"

// Cards yields one card per project, in display order. The sequence can be
// ranged over any number of times.
func Cards() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for i, p := range projects {
			p.Tags = slices.Clone(p.Tags)
			if !yield(Card{Index: i, Project: p, LinkLabel: CardLinkLabel}) {
				return
			}
		}
	}
}
