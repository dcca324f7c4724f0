package app

import (
	"context"
	"time"

	"monastery_tours/internal/domain"
)

const sitesKey = "sites:all"

func siteKey(id string) string { return "site:" + id }

type QueryService struct {
	repo     domain.SiteRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService wires a cache in front of repo. c may be nil.
func NewQueryService(r domain.SiteRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetSite(ctx context.Context, id string) (domain.Site, error) {
	key := siteKey(id)
	var site domain.Site
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &site); ok {
			return site, nil
		}
	}
	site, err := s.repo.GetSite(ctx, id)
	if err != nil {
		return domain.Site{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, site, int(s.cacheTTL.Seconds()))
	}
	return site, nil
}

func (s *QueryService) ListSites(ctx context.Context) ([]domain.Site, error) {
	var out []domain.Site
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, sitesKey, &out); ok {
			return out, nil
		}
	}
	sites, err := s.repo.ListSites(ctx)
	if err != nil {
		return nil, err
	}

	// copy so callers never alias the repo's backing array
	out = make([]domain.Site, len(sites))
	copy(out, sites)
	if s.cache != nil {
		_ = s.cache.Set(ctx, sitesKey, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}
