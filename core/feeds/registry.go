// ABOUTME: Registry of per-domain pipeline services
// ABOUTME: Built once at startup from the source configuration

package feeds

import (
	"localpulse-api/core/domain"
	"localpulse-api/core/interfaces"
)

// Registry holds one pipeline Service per configured feed domain.
type Registry struct {
	services map[domain.FeedDomain]*Service
}

// NewRegistry builds a Service for every source. The geocoder is handed only
// to the real estate pipeline.
func NewRegistry(sources map[domain.FeedDomain]SourceConfig, deps interfaces.Dependencies, geocoder interfaces.Geocoder) *Registry {
	r := &Registry{services: make(map[domain.FeedDomain]*Service, len(sources))}
	for d, cfg := range sources {
		var g interfaces.Geocoder
		if d == domain.DomainRealEstate {
			g = geocoder
		}
		r.services[d] = NewService(cfg, deps, g)
	}
	return r
}

// Service returns the pipeline for a domain.
func (r *Registry) Service(d domain.FeedDomain) (*Service, bool) {
	s, ok := r.services[d]
	return s, ok
}

// All returns every registered pipeline.
func (r *Registry) All() []*Service {
	out := make([]*Service, 0, len(r.services))
	for _, d := range domain.AllDomains() {
		if s, ok := r.services[d]; ok {
			out = append(out, s)
		}
	}
	return out
}
