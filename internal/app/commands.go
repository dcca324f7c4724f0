package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"monastery_tours/internal/domain"
)

// ImportService loads catalog records into the site repository and evicts
// the cached views they affect.
type ImportService struct {
	catalog domain.CatalogClient
	repo    domain.SiteRepository
	cache   domain.Cache
}

// NewImportService builds an importer. catalog and cache may be nil; without
// a catalog only ImportSite can be used.
func NewImportService(c domain.CatalogClient, r domain.SiteRepository, cache domain.Cache) *ImportService {
	return &ImportService{catalog: c, repo: r, cache: cache}
}

// ImportRemote fetches one record from the catalog and upserts it. A record
// the catalog no longer has is skipped, not failed.
func (s *ImportService) ImportRemote(ctx context.Context, id string) error {
	if s.catalog == nil {
		return errors.New("no catalog client configured")
	}
	raw, err := s.catalog.GetSite(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn().Str("id", id).Msg("site missing from catalog; skipped")
			s.invalidate(ctx, id)
			return nil
		}
		return fmt.Errorf("fetch site %s: %w", id, err)
	}
	site, err := mapSite(raw)
	if err != nil {
		return fmt.Errorf("map site %s: %w", id, err)
	}
	if site.ID == "" {
		site.ID = id
	}
	return s.ImportSite(ctx, site)
}

func (s *ImportService) ImportSite(ctx context.Context, site domain.Site) error {
	if err := s.repo.UpsertSite(ctx, site); err != nil {
		return fmt.Errorf("upsert site %s: %w", site.ID, err)
	}
	s.invalidate(ctx, site.ID)
	return nil
}

func (s *ImportService) RemoteIDs(ctx context.Context) ([]string, error) {
	if s.catalog == nil {
		return nil, errors.New("no catalog client configured")
	}
	return s.catalog.ListSiteIDs(ctx)
}

func (s *ImportService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, siteKey(id))
	_ = s.cache.Del(ctx, sitesKey)
}
