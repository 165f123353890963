// Package site is the router for the portfolio: it maps paths to pages and
// renders them inside the shared layout with the navigation bar on top.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/pkg/errors"

	"github.com/abobadilla02/portfolio/internal/navbar"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// ErrPageNotFound is returned by Lookup for paths with no page.
var ErrPageNotFound = errors.New("page not found")

// Page is one routable page.
type Page struct {
	Path     string
	Title    string
	Template string
	Data     any
}

// View is everything needed to render a page.
type View struct {
	Page      Page
	Nav       navbar.View
	RootClass string
	Owner     string
	Year      int
}

// Site holds the page registry and the parsed templates.
type Site struct {
	owner string
	pages map[string]Page
	order []string
	tmpl  *template.Template
}

// HomeData is the model of the home page.
type HomeData struct {
	Intro string
	Cards []ValueCard
}

// AboutData is the model of the about page.
type AboutData struct {
	Summary  string
	Values   []Value
	Timeline []TimelineItem
}

// ExperienceData is the model of the experience page.
type ExperienceData struct {
	Intro       string
	Experiences []Experience
}

// PortfolioData is the model of the portfolio page.
type PortfolioData struct {
	Intro    string
	Projects []Project
	Github   string
}

// ContactData is the model of the contact page.
type ContactData struct {
	Intro      string
	Methods    []ContactMethod
	LookingFor []Interest
	Expertise  []Interest
	Email      string
}

// DefaultPages returns the five pages of the site in navigation order.
func DefaultPages() []Page {
	return []Page{
		{Path: "/", Title: "Home", Template: "home", Data: HomeData{Intro: Intro, Cards: ValueCards}},
		{Path: "/about", Title: "About", Template: "about", Data: AboutData{Summary: AboutMe, Values: Values, Timeline: Timeline}},
		{Path: "/experience", Title: "Experience", Template: "experience", Data: ExperienceData{Intro: ExperienceIntro, Experiences: Experiences}},
		{Path: "/portfolio", Title: "Portfolio", Template: "portfolio", Data: PortfolioData{Intro: PortfolioIntro, Projects: Projects, Github: GithubProfile}},
		{Path: "/contact", Title: "Contact", Template: "contact", Data: ContactData{Intro: ContactIntro, Methods: ContactMethods, LookingFor: LookingFor, Expertise: Expertise, Email: Email}},
	}
}

// NotFoundPage renders for unknown paths.
var NotFoundPage = Page{Title: "Not Found", Template: "not-found"}

// New parses the page templates on top of the navigation bar templates.
func New(owner string, pages []Page) (*Site, error) {
	base, err := navbar.Templates()
	if err != nil {
		return nil, err
	}
	tmpl, err := base.Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse page templates")
	}

	s := &Site{owner: owner, pages: make(map[string]Page, len(pages)), tmpl: tmpl}
	for _, p := range pages {
		if _, dup := s.pages[p.Path]; dup {
			return nil, errors.Errorf("duplicate page path %q", p.Path)
		}
		if tmpl.Lookup(p.Template) == nil {
			return nil, errors.Errorf("page %q: no template %q", p.Path, p.Template)
		}
		s.pages[p.Path] = p
		s.order = append(s.order, p.Path)
	}
	return s, nil
}

// Pages returns the registered pages in registration order.
func (s *Site) Pages() []Page {
	out := make([]Page, 0, len(s.order))
	for _, path := range s.order {
		out = append(out, s.pages[path])
	}
	return out
}

// Lookup finds the page for an exact path.
func (s *Site) Lookup(path string) (Page, error) {
	p, ok := s.pages[path]
	if !ok {
		return Page{}, errors.Wrapf(ErrPageNotFound, "path %q", path)
	}
	return p, nil
}

// NewView assembles the render model for a page.
func (s *Site) NewView(p Page, nav navbar.View, rootClass string) View {
	return View{Page: p, Nav: nav, RootClass: rootClass, Owner: s.owner, Year: time.Now().Year()}
}

// Render writes a complete document.
func (s *Site) Render(w io.Writer, v View) error {
	return s.execute(w, "layout", v)
}

// RenderFragment writes the page body and an out-of-band navigation bar for
// htmx swaps.
func (s *Site) RenderFragment(w io.Writer, v View) error {
	v.Nav = v.Nav.OOB()
	return s.execute(w, "fragment", v)
}

// RenderNav writes only the navigation bar.
func (s *Site) RenderNav(w io.Writer, v navbar.View) error {
	return errors.Wrap(s.tmpl.ExecuteTemplate(w, "navbar", v), "render navbar")
}

type layoutData struct {
	View
	Body template.HTML
}

func (s *Site) execute(w io.Writer, name string, v View) error {
	var body bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&body, v.Page.Template, v.Page.Data); err != nil {
		return errors.Wrapf(err, "render page %q", v.Page.Template)
	}
	// Page templates are html/template output, already escaped.
	data := layoutData{View: v, Body: template.HTML(body.String())}
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return errors.Wrapf(err, "render %s", name)
	}
	return nil
}

// StaticFS serves the embedded assets under /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var funcs = template.FuncMap{
	"cls":    func(classes ...string) string { return twmerge.Merge(classes...) },
	"delay":  enterDelay,
	"hasURL": HasURL,
	"inc":    func(i int) int { return i + 1 },
	"newTab": OpensInNewTab,
}

// enterDelay staggers the fade-up animation of the i-th element.
func enterDelay(i int, step float64) template.CSS {
	return template.CSS(fmt.Sprintf("animation-delay: %.1fs", float64(i)*step))
}
