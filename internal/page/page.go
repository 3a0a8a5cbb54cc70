// Package page renders the portfolio document from content and a motion theme.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/motion"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// PageTemplate is the name of the root template.
const PageTemplate = "page.html"

// Renderer turns content into the page. It is read-only after New and safe
// for concurrent use.
type Renderer struct {
	content content.Content
	theme   motion.Theme
	tmpl    *template.Template

	aboutIntro   template.HTML
	contactBlurb template.HTML

	profileImage string
	cvURL        string
	now          func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfileImage sets the path of the hero photograph.
func WithProfileImage(path string) Option {
	return func(r *Renderer) { r.profileImage = path }
}

// WithCVURL sets the target of the "Download CV" button.
func WithCVURL(url string) Option {
	return func(r *Renderer) { r.cvURL = url }
}

// WithClock replaces time.Now, used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New validates the content and parses the page templates.
func New(c content.Content, theme motion.Theme, opts ...Option) (*Renderer, error) {
	if err := content.Validate(c); err != nil {
		return nil, err
	}

	r := &Renderer{
		content:      c,
		theme:        theme,
		profileImage: "/images/profile.jpg",
		cvURL:        "/images/cv.pdf",
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	if r.aboutIntro, err = content.Markdown(c.AboutIntro); err != nil {
		return nil, err
	}
	if r.contactBlurb, err = content.Markdown(c.ContactBlurb); err != nil {
		return nil, err
	}

	r.tmpl, err = template.New("").Funcs(template.FuncMap{
		"loop": motion.LoopClass,
		"fx":   motion.FXClass,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}

	return r, nil
}

// Template returns the parsed template set, rooted at PageTemplate.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Render writes the page for req.
func (r *Renderer) Render(w io.Writer, req Request) error {
	if err := r.tmpl.ExecuteTemplate(w, PageTemplate, r.View(req)); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// Stylesheet writes the CSS generated from the motion theme.
func (r *Renderer) Stylesheet(w io.Writer) error {
	return r.theme.WriteCSS(w)
}

// Content returns the content the renderer was built with.
func (r *Renderer) Content() content.Content {
	return r.content
}

// StaticFS holds the client script that drives scroll and reveal effects.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
