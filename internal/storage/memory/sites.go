// Package memory holds the process-local stores: the built-in site catalog
// and session-owned photo previews.
package memory

import (
	"context"
	"fmt"
	"sync"

	"monastery_tours/internal/domain"
)

// SiteRepo keeps sites in insertion order.
type SiteRepo struct {
	mu    sync.RWMutex
	sites []domain.Site
}

func NewSiteRepo(seed []domain.Site) *SiteRepo {
	return &SiteRepo{sites: append([]domain.Site(nil), seed...)}
}

func (r *SiteRepo) UpsertSite(ctx context.Context, s domain.Site) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sites {
		if r.sites[i].ID == s.ID {
			r.sites[i] = s
			return nil
		}
	}
	r.sites = append(r.sites, s)
	return nil
}

func (r *SiteRepo) GetSite(ctx context.Context, id string) (domain.Site, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sites {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Site{}, fmt.Errorf("site %q: %w", id, domain.ErrNotFound)
}

func (r *SiteRepo) ListSites(ctx context.Context) ([]domain.Site, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Site(nil), r.sites...), nil
}
