package memory_test

import (
	"context"
	"errors"
	"testing"

	"monastery_tours/internal/domain"
	"monastery_tours/internal/shared"
	"monastery_tours/internal/storage/memory"
)

func TestSiteRepo_OrderAndUpsert(t *testing.T) {
	repo := memory.NewSiteRepo(shared.SeedSites())
	ctx := context.Background()

	all, _ := repo.ListSites(ctx)
	if len(all) != 5 || all[0].ID != "rumtek" || all[4].ID != "ralang" {
		t.Fatalf("unexpected seed order: %v", all)
	}

	upd := all[1]
	upd.Rating = 5
	if err := repo.UpsertSite(ctx, upd); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := repo.GetSite(ctx, upd.ID)
	if err != nil || got.Rating != 5 {
		t.Fatalf("expected updated rating, got %+v err=%v", got, err)
	}
	if all2, _ := repo.ListSites(ctx); len(all2) != 5 || all2[1].ID != upd.ID {
		t.Fatalf("upsert of existing site must keep its position")
	}

	if _, err := repo.GetSite(ctx, "nowhere"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMediaStore_OwnershipAndRelease(t *testing.T) {
	m := memory.NewMediaStore(0)
	_ = m.Put("a", domain.Photo{ID: "p1", Data: []byte("1234")})
	_ = m.Put("a", domain.Photo{ID: "p2", Data: []byte("56")})
	_ = m.Put("b", domain.Photo{ID: "p3", Data: []byte("7")})

	if _, err := m.Get("b", "p1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("photos must not resolve across owners")
	}
	if m.Bytes() != 7 {
		t.Fatalf("bytes: %d", m.Bytes())
	}

	m.Release("a", "p1")
	if _, err := m.Get("a", "p1"); err == nil {
		t.Fatalf("expected p1 released")
	}
	if _, err := m.Get("a", "p2"); err != nil {
		t.Fatalf("p2 should remain: %v", err)
	}

	m.ReleaseOwner("a")
	if m.Bytes() != 1 {
		t.Fatalf("bytes after owner release: %d", m.Bytes())
	}
}

func TestMediaStore_Budget(t *testing.T) {
	m := memory.NewMediaStore(4)
	if err := m.Put("a", domain.Photo{ID: "p1", Data: []byte("123")}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := m.Put("a", domain.Photo{ID: "p2", Data: []byte("45")}); !errors.Is(err, memory.ErrMediaFull) || !errors.Is(err, domain.ErrMediaFull) {
		t.Fatalf("expected ErrMediaFull, got %v", err)
	}
}
