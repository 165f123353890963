package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abobadilla02/portfolio/internal/config"
	"github.com/abobadilla02/portfolio/internal/navbar"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Port:        "0",
		GinMode:     gin.TestMode,
		SiteOwner:   "Alonso Bobadilla",
		VisitorSalt: "salt",
		Nav: config.NavConfig{
			InstanceTTL:     time.Hour,
			CleanupInterval: time.Hour,
		},
	}
	s, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	return s
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// load performs a full page load and returns the instance cookie.
func load(t *testing.T, s *Server, path string, cookie *http.Cookie) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := serve(s, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == instanceCookie {
			return rec, c
		}
	}
	t.Fatalf("no %s cookie on %s", instanceCookie, path)
	return nil, nil
}

func post(s *Server, endpoint string, cookie *http.Cookie, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Current-URL", "http://localhost/about")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return serve(s, req)
}

// postFrom is an htmx post from the bar mounted as id, sent with whatever
// cookie the browser currently holds.
func postFrom(s *Server, endpoint, id string, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Current-URL", "http://localhost/about")
	req.Header.Set(navbar.InstanceHeader, id)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return serve(s, req)
}

func click() url.Values { return url.Values{"trigger": {"click"}} }

func key(k string) url.Values { return url.Values{"trigger": {"keydown"}, "key": {k}} }

func doc(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return d
}

func instance(t *testing.T, s *Server, c *http.Cookie) *Instance {
	t.Helper()
	inst, err := s.instances.Get(c.Value)
	require.NoError(t, err)
	return inst
}

func TestFullPageMountsInstance(t *testing.T) {
	s := newTestServer(t)
	rec, cookie := load(t, s, "/portfolio", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, cookie.HttpOnly)
	d := doc(t, rec)

	class, _ := d.Find("html").Attr("class")
	assert.Empty(t, class)
	active := d.Find(`[data-layout="desktop"] a[data-style="active"]`)
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "Portfolio", strings.TrimSpace(active.Text()))
	assert.Equal(t, 4, d.Find(`[data-layout="desktop"] a[data-style="inactive"]`).Length())

	inst := instance(t, s, cookie)
	assert.False(t, inst.Bar.IsDark())
	assert.Equal(t, navbar.MenuClosed, inst.Bar.Menu())
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Instances))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.PageViews.WithLabelValues("/portfolio", "full")))
}

func TestThemeToggleScenario(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)

	rec := post(s, "/nav/theme", cookie, click(), true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme-changed":{"dark":true}}`, rec.Header().Get("HX-Trigger"))

	d := doc(t, rec)
	toggles := d.Find(`button[data-control="theme-toggle"]`)
	require.Equal(t, 2, toggles.Length())
	toggles.Each(func(_ int, sel *goquery.Selection) {
		label, _ := sel.Attr("aria-label")
		assert.Equal(t, "Switch to light mode", label)
	})
	route, _ := d.Find("nav").Attr("data-route")
	assert.Equal(t, "/about", route, "bar renders against the browser's route")

	inst := instance(t, s, cookie)
	assert.True(t, inst.Bar.IsDark())
	assert.Equal(t, "dark", inst.Theme.RootClass())

	rec = post(s, "/nav/theme", cookie, click(), true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme-changed":{"dark":false}}`, rec.Header().Get("HX-Trigger"))
	assert.False(t, inst.Bar.IsDark())
	assert.Empty(t, inst.Theme.RootClass())
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.ThemeToggles))
}

func TestReloadResetsState(t *testing.T) {
	s := newTestServer(t)
	_, first := load(t, s, "/", nil)
	post(s, "/nav/theme", first, click(), true)
	post(s, "/nav/menu", first, click(), true)
	old := instance(t, s, first)

	rec, second := load(t, s, "/", first)
	assert.NotEqual(t, first.Value, second.Value)
	d := doc(t, rec)
	class, _ := d.Find("html").Attr("class")
	assert.Empty(t, class, "reload starts in light mode")
	assert.Equal(t, "light", d.Find("nav#navbar").AttrOr("data-theme", ""))
	assert.Equal(t, "closed", d.Find("nav#navbar").AttrOr("data-menu", ""))

	fresh := instance(t, s, second)
	assert.False(t, fresh.Bar.IsDark())
	assert.Equal(t, navbar.MenuClosed, fresh.Bar.Menu())

	// The earlier bar may still be on screen in another tab.
	assert.Same(t, old, instance(t, s, first))
	assert.True(t, old.Bar.IsDark())
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.Instances))
}

func TestTabsDriveTheirOwnBar(t *testing.T) {
	s := newTestServer(t)
	recA, cookieA := load(t, s, "/", nil)
	recB, jar := load(t, s, "/about", cookieA)
	idA := doc(t, recA).Find("nav#navbar").AttrOr("data-instance", "")
	idB := doc(t, recB).Find("nav#navbar").AttrOr("data-instance", "")
	require.Equal(t, cookieA.Value, idA)
	require.Equal(t, jar.Value, idB)

	// Both tabs now share the second page's cookie.
	rec := postFrom(s, "/nav/theme", idA, jar, click())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme-changed":{"dark":true}}`, rec.Header().Get("HX-Trigger"))
	assert.Equal(t, idA, doc(t, rec).Find("nav#navbar").AttrOr("data-instance", ""))

	rec = postFrom(s, "/nav/theme", idB, jar, click())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme-changed":{"dark":true}}`, rec.Header().Get("HX-Trigger"))

	rec = postFrom(s, "/nav/menu", idA, jar, click())
	require.Equal(t, http.StatusOK, rec.Code)

	a, b := instance(t, s, cookieA), instance(t, s, jar)
	assert.True(t, a.Bar.IsDark())
	assert.True(t, b.Bar.IsDark())
	assert.Equal(t, navbar.MenuOpen, a.Bar.Menu())
	assert.Equal(t, navbar.MenuClosed, b.Bar.Menu())
}

func TestInstanceHeaderWinsOverCookie(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)

	rec := postFrom(s, "/nav/theme", "gone", cookie, click())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
	assert.False(t, instance(t, s, cookie).Bar.IsDark())
}

func TestKeyboardActivation(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)
	inst := instance(t, s, cookie)

	rec := post(s, "/nav/theme", cookie, key("Enter"), true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, inst.Bar.IsDark())

	rec = post(s, "/nav/theme", cookie, key("Escape"), true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, inst.Bar.IsDark(), "other keys do nothing")

	rec = post(s, "/nav/menu", cookie, key(" "), true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, navbar.MenuOpen, inst.Bar.Menu())

	rec = post(s, "/nav/menu", cookie, key("Tab"), true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, navbar.MenuOpen, inst.Bar.Menu())

	rec = post(s, "/nav/navigate", cookie, url.Values{"trigger": {"keydown"}, "key": {"x"}, "path": {"/about"}}, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, navbar.MenuOpen, inst.Bar.Menu())
	assert.Empty(t, rec.Header().Get("HX-Location"))
}

func TestMenuNavigateScenario(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)

	rec := post(s, "/nav/menu", cookie, click(), true)
	require.Equal(t, http.StatusOK, rec.Code)
	d := doc(t, rec)
	assert.Equal(t, 5, d.Find(`[role="menu"] a[role="menuitem"]`).Length())

	rec = postFrom(s, "/nav/navigate", cookie.Value, cookie, url.Values{"trigger": {"click"}, "path": {"/contact"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"path":"/contact","target":"#page","swap":"innerHTML","headers":{"X-Nav-Instance":"`+cookie.Value+`"}}`,
		rec.Header().Get("HX-Location"))
	assert.Equal(t, navbar.MenuClosed, instance(t, s, cookie).Bar.Menu())
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Navigations.WithLabelValues("/contact")))

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set(navbar.InstanceHeader, cookie.Value)
	rec = serve(s, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "fragment requests keep the mounted bar")

	d = doc(t, rec)
	assert.Zero(t, d.Find(`[role="menu"]`).Length())
	assert.Zero(t, d.Find("footer").Length())
	nav := d.Find("nav#navbar")
	oob, _ := nav.Attr("hx-swap-oob")
	assert.Equal(t, "true", oob)
	active := nav.Find(`[data-layout="desktop"] a[data-style="active"]`)
	assert.Equal(t, "Contact", strings.TrimSpace(active.Text()))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.PageViews.WithLabelValues("/contact", "fragment")))
}

func TestNavigateWhileClosed(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)

	rec := post(s, "/nav/navigate", cookie, url.Values{"path": {"/"}}, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("HX-Location"), `"path":"/"`)
	assert.Equal(t, navbar.MenuClosed, instance(t, s, cookie).Bar.Menu())
}

func TestNavigatePlainPostRedirects(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)

	rec := post(s, "/nav/navigate", cookie, url.Values{"path": {"/about"}}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/about", rec.Header().Get("Location"))
}

func TestNavigateUnknownPath(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)

	rec := post(s, "/nav/navigate", cookie, url.Values{"path": {"/about/"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActivationWithoutInstance(t *testing.T) {
	s := newTestServer(t)

	rec := post(s, "/nav/theme", nil, click(), true)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))

	rec = post(s, "/nav/menu", &http.Cookie{Name: instanceCookie, Value: "gone"}, click(), true)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUnknownTrigger(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)

	rec := post(s, "/nav/menu", cookie, url.Values{"trigger": {"hover"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)
	rec, _ := load(t, s, "/blog", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	d := doc(t, rec)
	assert.Contains(t, d.Find("h1").Text(), "Page not found")
	assert.Zero(t, d.Find(`a[data-style="active"]`).Length(), "no link is active on an unknown route")
}

func TestFragmentWithoutInstanceRefreshes(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("HX-Request", "true")
	rec := serve(s, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
	assert.NotContains(t, rec.Body.String(), "<footer")

	req = httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set(navbar.InstanceHeader, "gone")
	rec = serve(s, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Zero(t, testutil.ToFloat64(s.metrics.Instances), "nothing is mounted")
}

func TestHistoryRestoreGetsFullPage(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-History-Restore-Request", "true")
	req.Header.Set(navbar.InstanceHeader, cookie.Value)
	req.AddCookie(cookie)
	rec := serve(s, req)

	require.Equal(t, http.StatusOK, rec.Code)
	d := doc(t, rec)
	assert.Equal(t, 1, d.Find("html").Length())
	assert.Equal(t, 1, d.Find("#page").Length())
	assert.Equal(t, 1, d.Find("footer").Length())
	_, oob := d.Find("nav#navbar").Attr("hx-swap-oob")
	assert.False(t, oob)
	active := d.Find(`[data-layout="desktop"] a[data-style="active"]`)
	assert.Equal(t, "About", strings.TrimSpace(active.Text()))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.PageViews.WithLabelValues("/about", "full")))
	assert.Zero(t, testutil.ToFloat64(s.metrics.PageViews.WithLabelValues("/about", "fragment")))
}

func TestMetricsAndHealth(t *testing.T) {
	s := newTestServer(t)
	_, cookie := load(t, s, "/", nil)
	post(s, "/nav/menu", cookie, click(), true)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portfolio_menu_toggles_total 1")

	rec = serve(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","instances":1}`, rec.Body.String())
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t)
	rec := serve(s, httptest.NewRequest(http.MethodGet, "/static/site.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "theme-changed")
}

func TestCurrentRoute(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		referer  string
		expected string
	}{
		{name: "htmx header", header: "http://localhost/about?x=1", expected: "/about"},
		{name: "referer", referer: "http://localhost/experience", expected: "/experience"},
		{name: "none", expected: "/"},
		{name: "bare host", header: "http://localhost", expected: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/nav/menu", nil)
			if tt.header != "" {
				c.Request.Header.Set("HX-Current-URL", tt.header)
			}
			if tt.referer != "" {
				c.Request.Header.Set("Referer", tt.referer)
			}
			assert.Equal(t, tt.expected, currentRoute(c))
		})
	}
}
