package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "monastery_tours/internal/adapters/redis"
	"monastery_tours/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	var got domain.Site
	ok, err := c.Get(ctx, "site:rumtek", &got)
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	in := domain.Site{ID: "rumtek", Name: "Rumtek Monastery", Highlights: []string{"Golden Stupa"}}
	if err := c.Set(ctx, "site:rumtek", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("mt:site:rumtek") {
		t.Fatalf("expected prefixed key in redis")
	}

	ok, err = c.Get(ctx, "site:rumtek", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Name != in.Name || len(got.Highlights) != 1 {
		t.Fatalf("unexpected cached site: %+v", got)
	}

	if err := c.Del(ctx, "site:rumtek"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "site:rumtek", &got); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestCache_TTLExpires(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "sites:all", []domain.Site{{ID: "enchey"}}, 5); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(6 * time.Second)

	var out []domain.Site
	if ok, _ := c.Get(ctx, "sites:all", &out); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	c, mr := newCache(t)
	if err := mr.Set("mt:site:x", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var got domain.Site
	ok, err := c.Get(context.Background(), "site:x", &got)
	if ok || err == nil {
		t.Fatalf("expected miss with decode error, got ok=%v err=%v", ok, err)
	}
}
