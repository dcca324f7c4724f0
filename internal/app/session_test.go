package app_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"monastery_tours/internal/app"
	"monastery_tours/internal/domain"
	"monastery_tours/internal/shared"
	"monastery_tours/internal/storage/memory"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, G: 120, B: 40, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newSessions(t *testing.T) (*app.Sessions, *memory.MediaStore) {
	t.Helper()
	media := memory.NewMediaStore(0)
	q := app.NewQueryService(memory.NewSiteRepo(shared.SeedSites()), nil, time.Minute)
	return app.NewSessions(q, media, app.SessionOptions{TTL: time.Hour, MaxPhotos: 2, PreviewSize: 32}), media
}

func TestSessions_Isolated(t *testing.T) {
	reg, _ := newSessions(t)
	a, _ := reg.Create(context.Background())
	b, _ := reg.Create(context.Background())

	a.ToggleLike("1")
	if _, err := a.Select("enchey"); err != nil {
		t.Fatalf("select: %v", err)
	}

	if b.Filter(domain.CategoryAll)[0].LikedByUser {
		t.Fatalf("like leaked across sessions")
	}
	if v := b.Explorer(); v.Detail == nil || v.Detail.ID != "rumtek" {
		t.Fatalf("selection leaked across sessions")
	}
	if got, ok := reg.Get(a.ID); !ok || got != a {
		t.Fatalf("registry lookup failed")
	}
}

func TestSession_PhotosFlowIntoReview(t *testing.T) {
	reg, media := newSessions(t)
	s, _ := reg.Create(context.Background())

	urls, err := s.AttachPhotos([]app.Upload{{Name: "a.png", Body: bytes.NewReader(pngBytes(t, 120, 60))}})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if len(urls) != 1 || !strings.HasPrefix(urls[0], "/v1/media/") {
		t.Fatalf("unexpected urls: %v", urls)
	}
	id := strings.TrimPrefix(urls[0], "/v1/media/")
	p, err := s.Photo(id)
	if err != nil {
		t.Fatalf("photo: %v", err)
	}
	if p.Width != 32 || p.Height != 16 || p.ContentType != "image/jpeg" {
		t.Fatalf("preview not bounded: %dx%d %s", p.Width, p.Height, p.ContentType)
	}

	r, err := s.Submit(validForm())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(r.Images) != 1 || r.Images[0] != urls[0] {
		t.Fatalf("review images: %v", r.Images)
	}

	// the published photo outlives the draft reset
	s.ResetDraft()
	if _, err := s.Photo(id); err != nil {
		t.Fatalf("published photo released by reset: %v", err)
	}

	reg.End(s.ID)
	if media.Bytes() != 0 {
		t.Fatalf("session teardown left %d bytes", media.Bytes())
	}
}

func TestSession_ResetReleasesDraft(t *testing.T) {
	reg, media := newSessions(t)
	s, _ := reg.Create(context.Background())

	if _, err := s.AttachPhotos([]app.Upload{{Name: "a.png", Body: bytes.NewReader(pngBytes(t, 10, 10))}}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if media.Bytes() == 0 {
		t.Fatalf("expected preview stored")
	}
	s.ResetDraft()
	if media.Bytes() != 0 {
		t.Fatalf("reset left %d bytes", media.Bytes())
	}

	r, err := s.Submit(validForm())
	if err != nil || len(r.Images) != 0 {
		t.Fatalf("submit after reset should carry no images: %v %v", r.Images, err)
	}
}

func TestSession_ReattachReplacesDraft(t *testing.T) {
	reg, _ := newSessions(t)
	s, _ := reg.Create(context.Background())

	first, _ := s.AttachPhotos([]app.Upload{{Name: "a.png", Body: bytes.NewReader(pngBytes(t, 10, 10))}})
	if _, err := s.AttachPhotos([]app.Upload{{Name: "b.png", Body: bytes.NewReader(pngBytes(t, 10, 10))}}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if _, err := s.Photo(strings.TrimPrefix(first[0], "/v1/media/")); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("previous selection should be released, got %v", err)
	}
}

func TestSession_AttachRejects(t *testing.T) {
	reg, media := newSessions(t)
	s, _ := reg.Create(context.Background())

	_, err := s.AttachPhotos([]app.Upload{{Name: "notes.txt", Body: strings.NewReader("hello")}})
	if !errors.Is(err, domain.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	three := make([]app.Upload, 3)
	for i := range three {
		three[i] = app.Upload{Name: "x.png", Body: bytes.NewReader(pngBytes(t, 4, 4))}
	}
	if _, err := s.AttachPhotos(three); !errors.Is(err, domain.ErrTooManyPhotos) {
		t.Fatalf("expected ErrTooManyPhotos, got %v", err)
	}
	if media.Bytes() != 0 {
		t.Fatalf("rejected uploads must store nothing")
	}
}

func TestSession_RejectedSubmitKeepsDraft(t *testing.T) {
	reg, _ := newSessions(t)
	s, _ := reg.Create(context.Background())
	urls, _ := s.AttachPhotos([]app.Upload{{Name: "a.png", Body: bytes.NewReader(pngBytes(t, 10, 10))}})

	form := validForm()
	form.Rating = 0
	if _, err := s.Submit(form); err == nil {
		t.Fatalf("expected rejection")
	}
	form.Rating = 4
	r, err := s.Submit(form)
	if err != nil || len(r.Images) != 1 || r.Images[0] != urls[0] {
		t.Fatalf("draft photos should survive a rejected submit: %v %v", r.Images, err)
	}
}

func TestSessions_SweepExpiresIdle(t *testing.T) {
	media := memory.NewMediaStore(0)
	q := app.NewQueryService(memory.NewSiteRepo(shared.SeedSites()), nil, time.Minute)
	reg := app.NewSessions(q, media, app.SessionOptions{TTL: 10 * time.Millisecond})

	s, _ := reg.Create(context.Background())
	time.Sleep(30 * time.Millisecond)
	if n := reg.Sweep(); n != 1 {
		t.Fatalf("expected one expired session, got %d", n)
	}
	if _, ok := reg.Get(s.ID); ok {
		t.Fatalf("expired session still resolvable")
	}
}

func TestSession_ConcurrentLikes(t *testing.T) {
	reg, _ := newSessions(t)
	s, _ := reg.Create(context.Background())
	start := s.Filter(domain.CategoryAll)[0].Likes

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ToggleLike("1")
		}()
	}
	wg.Wait()

	// an even number of toggles restores the original state
	r := s.Filter(domain.CategoryAll)[0]
	if r.Likes != start || r.LikedByUser {
		t.Fatalf("concurrent toggles lost updates: likes=%d liked=%v", r.Likes, r.LikedByUser)
	}
}

func TestSessions_CreateFailsWithoutCatalog(t *testing.T) {
	reg := app.NewSessions(failingLister{}, memory.NewMediaStore(0), app.SessionOptions{})
	if _, err := reg.Create(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

type failingLister struct{}

func (failingLister) ListSites(ctx context.Context) ([]domain.Site, error) {
	return nil, errors.New("db down")
}

func TestSession_EndedSessionStoresNothing(t *testing.T) {
	reg, media := newSessions(t)
	s, _ := reg.Create(context.Background())

	// a request that resolved s before teardown is still holding it
	reg.End(s.ID)

	_, err := s.AttachPhotos([]app.Upload{{Name: "a.png", Body: bytes.NewReader(pngBytes(t, 10, 10))}})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after end, got %v", err)
	}
	if media.Bytes() != 0 {
		t.Fatalf("ended session stored %d bytes", media.Bytes())
	}
	if _, err := s.Submit(validForm()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected submit refused after end, got %v", err)
	}
}

func TestSessions_CapEvictsLeastRecentlySeen(t *testing.T) {
	media := memory.NewMediaStore(0)
	q := app.NewQueryService(memory.NewSiteRepo(shared.SeedSites()), nil, time.Minute)
	reg := app.NewSessions(q, media, app.SessionOptions{TTL: time.Hour, MaxSessions: 2, PreviewSize: 16})

	a, _ := reg.Create(context.Background())
	time.Sleep(2 * time.Millisecond)
	b, _ := reg.Create(context.Background())
	if _, err := b.AttachPhotos([]app.Upload{{Name: "b.png", Body: bytes.NewReader(pngBytes(t, 10, 10))}}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	reg.Get(a.ID) // a is now the most recently seen
	time.Sleep(2 * time.Millisecond)

	c, _ := reg.Create(context.Background())
	if reg.Len() != 2 {
		t.Fatalf("registry over capacity: %d", reg.Len())
	}
	if _, ok := reg.Get(b.ID); ok {
		t.Fatalf("least recently seen session survived")
	}
	if _, ok := reg.Get(a.ID); !ok {
		t.Fatalf("recently seen session evicted")
	}
	if _, ok := reg.Get(c.ID); !ok {
		t.Fatalf("new session missing")
	}
	if media.Bytes() != 0 {
		t.Fatalf("evicted session left %d bytes", media.Bytes())
	}
}

func TestSession_AddCommentKeepsFeedState(t *testing.T) {
	reg, _ := newSessions(t)
	s, _ := reg.Create(context.Background())

	s.AddComment("1", "   ")
	r, ok := s.AddComment("1", "Peaceful")
	if !ok || r.UserComments[len(r.UserComments)-1] != "Peaceful" {
		t.Fatalf("comment not appended: %+v", r)
	}
	if _, ok := s.AddComment("missing", "x"); ok {
		t.Fatalf("unknown id should report not found")
	}
}
