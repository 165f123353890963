package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts navigation bar activity.
type Metrics struct {
	ThemeToggles prometheus.Counter
	MenuToggles  prometheus.Counter
	Navigations  *prometheus.CounterVec
	PageViews    *prometheus.CounterVec
	Instances    prometheus.Gauge
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ThemeToggles: f.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "theme_toggles_total",
			Help:      "Theme toggle activations.",
		}),
		MenuToggles: f.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "menu_toggles_total",
			Help:      "Mobile menu toggle activations.",
		}),
		Navigations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "navigations_total",
			Help:      "Navigation link activations by target path.",
		}, []string{"path"}),
		PageViews: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "page_views_total",
			Help:      "Rendered pages by path and kind (full or fragment).",
		}, []string{"path", "kind"}),
		Instances: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "portfolio",
			Name:      "navbar_instances",
			Help:      "Mounted navigation bar instances.",
		}),
	}
}
