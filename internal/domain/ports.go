package domain

import "context"

type SiteRepository interface {
	// Write paths
	UpsertSite(ctx context.Context, s Site) error

	// Read paths
	GetSite(ctx context.Context, id string) (Site, error)
	ListSites(ctx context.Context) ([]Site, error)
}

type CatalogClient interface {
	ListSiteIDs(ctx context.Context) ([]string, error)
	GetSite(ctx context.Context, id string) (map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// MediaStore holds photo previews owned by a session.
type MediaStore interface {
	Put(owner string, p Photo) error
	Get(owner, id string) (Photo, error)
	Release(owner string, ids ...string)
	ReleaseOwner(owner string)
}
