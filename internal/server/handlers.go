package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abobadilla02/portfolio/internal/control"
	"github.com/abobadilla02/portfolio/internal/navbar"
	"github.com/abobadilla02/portfolio/internal/site"
)

const instanceCookie = "nav_instance"

const htmlContentType = "text/html; charset=utf-8"

// page serves every routed path. A plain request is a page load and mounts
// a fresh bar; an htmx request from a mounted bar gets the page fragment.
// History restores expect a whole document, so they load like a plain request.
func (s *Server) page(c *gin.Context) {
	path := c.Request.URL.Path
	status, label := http.StatusOK, path
	p, err := s.site.Lookup(path)
	if err != nil {
		p, status, label = site.NotFoundPage, http.StatusNotFound, "unknown"
	}

	if isHTMX(c) && !isHistoryRestore(c) {
		inst, err := s.instanceFor(c)
		if err != nil {
			s.expired(c, err)
			return
		}
		var buf bytes.Buffer
		v := s.site.NewView(p, inst.Bar.Snapshot(path), inst.Theme.RootClass())
		if err := s.site.RenderFragment(&buf, v); err != nil {
			s.renderError(c, err)
			return
		}
		s.metrics.PageViews.WithLabelValues(label, "fragment").Inc()
		c.Data(status, htmlContentType, buf.Bytes())
		return
	}

	inst := s.mount(c)
	var buf bytes.Buffer
	v := s.site.NewView(p, inst.Bar.Snapshot(path), inst.Theme.RootClass())
	if err := s.site.Render(&buf, v); err != nil {
		s.renderError(c, err)
		return
	}
	s.metrics.PageViews.WithLabelValues(label, "full").Inc()
	c.Data(status, htmlContentType, buf.Bytes())
}

// mount creates a bar for this page load. Bars mounted by other tabs are left
// alone; they expire on their own.
func (s *Server) mount(c *gin.Context) *Instance {
	inst := s.instances.Mount()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(instanceCookie, inst.ID, int(s.cfg.Nav.InstanceTTL.Seconds()), "/", "", false, true)
	return inst
}

// instanceFor finds the bar a request comes from. htmx sends the id of the
// bar on the page in the instance header; the cookie names the most recently
// loaded page and only serves plain form posts.
func (s *Server) instanceFor(c *gin.Context) (*Instance, error) {
	if id := c.GetHeader(navbar.InstanceHeader); id != "" {
		return s.instances.Get(id)
	}
	id, err := c.Cookie(instanceCookie)
	if err != nil {
		return nil, ErrNoInstance
	}
	return s.instances.Get(id)
}

// expired asks htmx to reload the page, which mounts a fresh bar.
func (s *Server) expired(c *gin.Context, err error) {
	s.log.Debug("request without instance", zap.Error(err))
	c.Header("HX-Refresh", "true")
	c.String(http.StatusConflict, "navigation bar expired, reload the page")
}

// activation resolves the instance and decodes the trigger. It writes the
// response itself when either fails.
func (s *Server) activation(c *gin.Context) (*Instance, control.Activation, bool) {
	inst, err := s.instanceFor(c)
	if err != nil {
		s.expired(c, err)
		return nil, control.Activation{}, false
	}
	act, err := control.ParseActivation(c.PostForm("trigger"), c.PostForm("key"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return nil, control.Activation{}, false
	}
	return inst, act, true
}

func (s *Server) toggleTheme(c *gin.Context) {
	inst, act, ok := s.activation(c)
	if !ok {
		return
	}
	if !inst.Bar.ThemeControl().Dispatch(act) {
		c.Status(http.StatusNoContent)
		return
	}
	s.metrics.ThemeToggles.Inc()

	trigger, err := json.Marshal(gin.H{"theme-changed": gin.H{"dark": inst.Bar.IsDark()}})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Header("HX-Trigger", string(trigger))
	s.renderNav(c, inst)
}

func (s *Server) toggleMenu(c *gin.Context) {
	inst, act, ok := s.activation(c)
	if !ok {
		return
	}
	if !inst.Bar.MenuControl().Dispatch(act) {
		c.Status(http.StatusNoContent)
		return
	}
	s.metrics.MenuToggles.Inc()
	s.renderNav(c, inst)
}

func (s *Server) navigate(c *gin.Context) {
	inst, act, ok := s.activation(c)
	if !ok {
		return
	}
	item, found := inst.Bar.Resolve(c.PostForm("path"))
	if !found {
		c.String(http.StatusBadRequest, "unknown navigation target")
		return
	}
	r := &httpRouter{c: c, instance: inst.ID}
	if !inst.Bar.LinkControl(r, item).Dispatch(act) {
		c.Status(http.StatusNoContent)
		return
	}
	s.metrics.Navigations.WithLabelValues(item.Path).Inc()
}

func (s *Server) renderNav(c *gin.Context, inst *Instance) {
	var buf bytes.Buffer
	if err := s.site.RenderNav(&buf, inst.Bar.Snapshot(currentRoute(c))); err != nil {
		s.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (s *Server) renderError(c *gin.Context, err error) {
	_ = c.Error(err)
	s.log.Error("render failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.String(http.StatusInternalServerError, "Sorry, something went wrong rendering this page.")
}

// httpRouter hands navigation back to the browser: htmx follows HX-Location
// and swaps the page fragment in, plain form posts are redirected.
type httpRouter struct {
	c        *gin.Context
	instance string
}

func (r *httpRouter) Navigate(path string) {
	if !isHTMX(r.c) {
		r.c.Redirect(http.StatusSeeOther, path)
		return
	}
	loc, _ := json.Marshal(gin.H{
		"path":    path,
		"target":  "#page",
		"swap":    "innerHTML",
		"headers": gin.H{navbar.InstanceHeader: r.instance},
	})
	r.c.Header("HX-Location", string(loc))
	r.c.Status(http.StatusOK)
}

var _ navbar.Router = (*httpRouter)(nil)

// currentRoute is the path the browser shows, as reported by htmx or the
// referrer. The bar only reads it.
func currentRoute(c *gin.Context) string {
	for _, raw := range []string{c.GetHeader("HX-Current-URL"), c.Request.Referer()} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return "/"
}
