package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/abobadilla02/portfolio/internal/navbar"
	"github.com/abobadilla02/portfolio/internal/theme"
)

// ErrNoInstance is returned for unknown or expired instance ids.
var ErrNoInstance = errors.New("navbar instance not mounted")

// Instance is one mounted navigation bar and the theme context it writes to.
type Instance struct {
	ID    string
	Bar   *navbar.Bar
	Theme *theme.Provider
}

// Instances keeps mounted bars in memory. Entries expire after ttl without
// activity; expiry and Unmount both unmount the bar.
type Instances struct {
	cache   *cache.Cache
	brand   string
	metrics *Metrics
	log     *zap.Logger
}

// NewInstances returns an empty store whose bars carry brand and expire after
// ttl without activity. Expired bars are swept every cleanup interval.
func NewInstances(ttl, cleanup time.Duration, brand string, m *Metrics, log *zap.Logger) *Instances {
	s := &Instances{
		cache:   cache.New(ttl, cleanup),
		brand:   brand,
		metrics: m,
		log:     log,
	}
	s.cache.OnEvicted(s.evicted)
	return s
}

// Mount creates a bar in its initial state: light theme, menu closed.
func (s *Instances) Mount() *Instance {
	id := uuid.NewString()
	p := theme.NewProvider()
	inst := &Instance{
		ID:    id,
		Bar:   navbar.New(p, navbar.WithID(id), navbar.WithBrand(s.brand)),
		Theme: p,
	}
	s.cache.SetDefault(id, inst)
	s.metrics.Instances.Inc()
	s.log.Debug("navbar mounted", zap.String("instance", id))
	return inst
}

// Get returns a mounted instance and extends its lifetime.
func (s *Instances) Get(id string) (*Instance, error) {
	if id == "" {
		return nil, ErrNoInstance
	}
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, errors.Wrapf(ErrNoInstance, "instance %s", id)
	}
	// Replace only refreshes a live entry, so a concurrent Unmount is not undone.
	if err := s.cache.Replace(id, v, cache.DefaultExpiration); err != nil {
		return nil, errors.Wrapf(ErrNoInstance, "instance %s", id)
	}
	return v.(*Instance), nil
}

// Unmount discards an instance. Unknown ids are ignored.
func (s *Instances) Unmount(id string) {
	s.cache.Delete(id)
}

// Len counts stored instances, including expired ones not yet swept.
func (s *Instances) Len() int {
	return s.cache.ItemCount()
}

func (s *Instances) evicted(id string, v interface{}) {
	inst, ok := v.(*Instance)
	if !ok {
		return
	}
	inst.Bar.Unmount()
	s.metrics.Instances.Dec()
	s.log.Debug("navbar unmounted", zap.String("instance", id))
}
