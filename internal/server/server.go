// Package server serves the portfolio over HTTP with gin and keeps each
// visitor's navigation bar mounted between htmx requests.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/abobadilla02/portfolio/internal/config"
	"github.com/abobadilla02/portfolio/internal/site"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	cfg       *config.Config
	log       *zap.Logger
	site      *site.Site
	instances *Instances
	metrics   *Metrics
	registry  *prometheus.Registry
	router    *gin.Engine
}

// New wires the site, the instance store and the routes.
func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	st, err := site.New(cfg.SiteOwner, site.DefaultPages())
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	s := &Server{
		cfg:       cfg,
		log:       log,
		site:      st,
		instances: NewInstances(cfg.Nav.InstanceTTL, cfg.Nav.CleanupInterval, cfg.SiteOwner, m, log),
		metrics:   m,
		registry:  reg,
	}
	s.router = s.setupRouter()
	return s, nil
}

func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(s.cfg.GinMode)
	r := gin.New()
	r.Use(recovery(s.log))
	r.Use(visitorLogger(s.log, s.cfg.VisitorSalt))

	r.StaticFS("/static", http.FS(site.StaticFS()))

	for _, p := range s.site.Pages() {
		r.GET(p.Path, s.page)
	}
	r.NoRoute(s.page)

	nav := r.Group("/nav")
	nav.POST("/theme", s.toggleTheme)
	nav.POST("/menu", s.toggleMenu)
	nav.POST("/navigate", s.navigate)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "instances": s.instances.Len()})
	})

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// HTTPServer creates and configures the HTTP server.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
