package page

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/nav"
)

// Reveal targets. Each one plays its entrance animation the first time it
// scrolls into view.
const (
	SectionAbout    = "about"
	SectionServices = "services"
	SectionProjects = "projects"
)

// ExperienceTarget is the reveal id of the i-th timeline entry.
func ExperienceTarget(i int) string {
	return "experience-" + strconv.Itoa(i)
}

// Request describes one rendering of the page.
type Request struct {
	Menu nav.UIState

	// Seen lists reveal targets that have already intersected the viewport.
	// They render in their final state.
	Seen []string

	// RevealAll renders every target in its final state, for static export
	// and clients that prefer reduced motion.
	RevealAll bool
}

// View is the template data for the page.
type View struct {
	Owner    string
	Initials string
	Roles    []string
	Tagline  string
	Year     int

	AboutIntro   template.HTML
	ContactBlurb template.HTML
	ContactHref  string

	ProfileImage string
	CVURL        string

	Menu     MenuView
	NavLinks []NavLinkView
	Hero     HeroView
	Socials  []content.SocialLink

	About       SectionView
	Skills      []SkillView
	Services    SectionView
	ServiceList []CardView
	Projects    SectionView
	ProjectList []ProjectView
	Experiences []ExperienceView
}

type MenuView struct {
	Open       bool
	ToggleHref string
	Icon       string
	Label      string
}

type NavLinkView struct {
	Label      string
	Href       string
	MobileHref string
	Delay      string
}

// HeroView carries the initial hero transform and the scroll range the
// client applies while scrolling.
type HeroView struct {
	Opacity     string
	Scale       string
	ScrollStart string
	ScrollEnd   string
	FromOpacity string
	ToOpacity   string
	FromScale   string
	ToScale     string
}

type SectionView struct {
	ID       string
	Revealed bool
}

// SkillView is one skill bar. The fill renders at Target; the stylesheet holds
// it at zero width while a scripted page has not revealed the section.
type SkillView struct {
	Name     string
	Level    int
	Target   string
	Delay    string
	BarDelay string
}

type CardView struct {
	Icon        string
	Title       string
	Description string
	Delay       string
}

type ProjectView struct {
	Title       string
	Description string
	ImageURL    string
	Tags        []string
	Gradient    string
	Delay       string
}

type ExperienceView struct {
	ID          string
	Revealed    bool
	Icon        string
	Title       string
	Company     string
	Period      string
	Description string
}

// View builds the template data for req. It has no side effects.
func (r *Renderer) View(req Request) View {
	seen := motion.NewRevealSet()
	for _, id := range req.Seen {
		seen.Observe(id, true)
	}
	revealed := func(id string) bool {
		return req.RevealAll || seen.Revealed(id)
	}

	c := r.content
	t := r.theme

	v := View{
		Owner:        c.Owner,
		Initials:     c.Initials,
		Roles:        c.Roles,
		Tagline:      c.Tagline,
		Year:         r.now().Year(),
		AboutIntro:   r.aboutIntro,
		ContactBlurb: r.contactBlurb,
		ContactHref:  "mailto:" + c.ContactEmail,
		ProfileImage: r.profileImage,
		CVURL:        r.cvURL,
		Socials:      c.Socials,
	}

	v.Menu = MenuView{
		Open:       req.Menu.MobileMenuOpen,
		ToggleHref: req.Menu.Toggled().Query(),
		Icon:       content.IconMenu.Ref(),
		Label:      "Open menu",
	}
	if req.Menu.MobileMenuOpen {
		v.Menu.Icon = content.IconX.Ref()
		v.Menu.Label = "Close menu"
	}
	for i, l := range nav.Links() {
		v.NavLinks = append(v.NavLinks, NavLinkView{
			Label:      l.Label,
			Href:       l.Href(),
			MobileHref: req.Menu.LinkHref(l),
			Delay:      motion.Seconds(t.NavStagger.Delay(i)),
		})
	}

	opacity, scale := t.Scroll.At(0)
	v.Hero = HeroView{
		Opacity:     formatFloat(opacity),
		Scale:       formatFloat(scale),
		ScrollStart: formatFloat(t.Scroll.Start),
		ScrollEnd:   formatFloat(t.Scroll.End),
		FromOpacity: formatFloat(t.Scroll.FromOpacity),
		ToOpacity:   formatFloat(t.Scroll.ToOpacity),
		FromScale:   formatFloat(t.Scroll.FromScale),
		ToScale:     formatFloat(t.Scroll.ToScale),
	}

	v.About = SectionView{ID: SectionAbout, Revealed: revealed(SectionAbout)}
	for i, s := range c.Skills {
		v.Skills = append(v.Skills, SkillView{
			Name:     s.Name,
			Level:    s.Level,
			Target:   fmt.Sprintf("%d%%", s.Level),
			Delay:    motion.Seconds(t.Container.Delay(i)),
			BarDelay: motion.Seconds(t.SkillStagger.Delay(i)),
		})
	}

	v.Services = SectionView{ID: SectionServices, Revealed: revealed(SectionServices)}
	for i, s := range c.Services {
		v.ServiceList = append(v.ServiceList, CardView{
			Icon:        s.Icon.Ref(),
			Title:       s.Title,
			Description: s.Description,
			Delay:       motion.Seconds(t.Container.Delay(i)),
		})
	}

	v.Projects = SectionView{ID: SectionProjects, Revealed: revealed(SectionProjects)}
	for i, p := range c.Projects {
		v.ProjectList = append(v.ProjectList, ProjectView{
			Title:       p.Title,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Tags:        p.Tags,
			Gradient:    p.Gradient,
			Delay:       motion.Seconds(t.Container.Delay(i)),
		})
	}

	for i, e := range c.Experiences {
		id := ExperienceTarget(i)
		v.Experiences = append(v.Experiences, ExperienceView{
			ID:          id,
			Revealed:    revealed(id),
			Icon:        e.Icon.Ref(),
			Title:       e.Title,
			Company:     e.Company,
			Period:      e.Period,
			Description: e.Description,
		})
	}

	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
