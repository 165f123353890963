package navbar

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/abobadilla02/portfolio/internal/control"
)

//go:embed templates/*.html
var templateFS embed.FS

// Endpoints are the URLs the bar's controls post to.
type Endpoints struct {
	Theme    string
	Menu     string
	Navigate string
}

// DefaultEndpoints match the routes registered by the server.
var DefaultEndpoints = Endpoints{
	Theme:    "/nav/theme",
	Menu:     "/nav/menu",
	Navigate: "/nav/navigate",
}

// InstanceHeader carries the id of the bar a page was rendered with. Every
// htmx request from the bar sends it, so tabs sharing a cookie jar each drive
// their own bar.
const InstanceHeader = "X-Nav-Instance"

var base = template.Must(Templates())

// Templates parses a fresh set of the bar's templates ("navbar" and
// "navbar-icon") for callers to extend with their own pages. A fresh set is
// needed because html/template cannot clone a set that has been executed.
func Templates() (*template.Template, error) {
	t, err := template.New("nav").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse navbar templates")
	}
	return t, nil
}

// Render writes the bar markup for v.
func Render(w io.Writer, v View) error {
	return errors.Wrap(base.ExecuteTemplate(w, "navbar", v), "render navbar")
}

// ThemeAttrs wires the theme toggle.
func (v View) ThemeAttrs() template.HTMLAttr {
	return control.New(ControlTheme, nil).Attrs(v.Endpoints.Theme, nil)
}

// MenuAttrs wires the menu button.
func (v View) MenuAttrs() template.HTMLAttr {
	return control.New(ControlMenu, nil).Attrs(v.Endpoints.Menu, nil)
}

// LinkAttrs wires a navigation link to path.
func (v View) LinkAttrs(path string) template.HTMLAttr {
	return control.New(ControlNavigate, nil).Attrs(v.Endpoints.Navigate, map[string]string{"path": path})
}

// Headers is the hx-headers value that tags the bar's requests with its id.
func (v View) Headers() string {
	h, _ := json.Marshal(map[string]string{InstanceHeader: v.ID})
	return string(h)
}

// OOB marks the view for an out-of-band swap when it rides along a page
// fragment.
func (v View) OOB() View {
	v.SwapOOB = true
	return v
}
