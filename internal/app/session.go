package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"monastery_tours/internal/adapters/observability"
	"monastery_tours/internal/domain"
	"monastery_tours/internal/shared"
)

// Session is the state one viewer accumulates: their copy of the feed, the
// explorer selection and the upload draft. All methods are safe for
// concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	feed     *Feed
	explorer *Explorer
	draft    []string // photo ids attached to the upload form
	kept     []string // photo ids referenced by submitted reviews
	lastSeen time.Time
	closed   bool // set once the registry has ended the session

	media     domain.MediaStore
	previewer Previewer
	maxPhotos int
}

func (s *Session) Filter(c domain.Category) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.Filter(c)
}

func (s *Session) CategoryCounts() map[domain.Category]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.CategoryCounts()
}

func (s *Session) ToggleLike(id string) (domain.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.feed.ToggleLike(id)
	if ok {
		if r.LikedByUser {
			observability.ObserveCommunity("like")
		} else {
			observability.ObserveCommunity("unlike")
		}
	}
	return r, ok
}

func (s *Session) AddComment(id, text string) (domain.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, _ := s.feed.Get(id)
	r, ok := s.feed.AddComment(id, text)
	if ok && r.Comments > prev.Comments {
		observability.ObserveCommunity("comment")
	}
	return r, ok
}

// Upload is one file picked in the upload form.
type Upload struct {
	Name string
	Body io.Reader
}

// AttachPhotos replaces the draft's photos, as a fresh file-picker selection
// does. Previews of the previous selection are released.
func (s *Session) AttachPhotos(files []Upload) ([]string, error) {
	if s.maxPhotos > 0 && len(files) > s.maxPhotos {
		return nil, fmt.Errorf("%d files, limit %d: %w", len(files), s.maxPhotos, domain.ErrTooManyPhotos)
	}
	photos := make([]domain.Photo, 0, len(files))
	for _, f := range files {
		p, err := s.previewer.Preview(f.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		photos = append(photos, p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, s.errClosed()
	}
	s.media.Release(s.ID, s.draft...)
	s.draft = s.draft[:0]
	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		if err := s.media.Put(s.ID, p); err != nil {
			s.media.Release(s.ID, s.draft...)
			s.draft = nil
			return nil, err
		}
		s.draft = append(s.draft, p.ID)
		urls = append(urls, MediaURL(p.ID))
		observability.ObserveCommunity("photo")
	}
	return urls, nil
}

// ResetDraft clears the upload form and releases its previews.
func (s *Session) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetDraftLocked()
}

func (s *Session) resetDraftLocked() {
	s.media.Release(s.ID, s.draft...)
	s.draft = nil
}

// Submit publishes the form into the feed. A rejected form keeps its draft.
func (s *Session) Submit(in domain.NewReviewFields) (domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.Review{}, s.errClosed()
	}
	images := make([]string, len(s.draft))
	for i, id := range s.draft {
		images[i] = MediaURL(id)
	}
	r, err := s.feed.Submit(in, images)
	if err != nil {
		return domain.Review{}, err
	}
	// ownership of the draft previews moves to the published review
	s.kept = append(s.kept, s.draft...)
	s.draft = nil
	observability.ObserveCommunity("review")
	return r, nil
}

func (s *Session) errClosed() error {
	return fmt.Errorf("session %s ended: %w", s.ID, domain.ErrNotFound)
}

// close marks the session ended. Media stored before this returns is
// released by the caller; nothing can be stored after it.
func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *Session) Photo(id string) (domain.Photo, error) {
	return s.media.Get(s.ID, id)
}

func (s *Session) Explorer() ExplorerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.explorer.View()
}

func (s *Session) SetMode(m domain.ViewMode) ExplorerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.explorer.SetMode(m)
	return s.explorer.View()
}

func (s *Session) Select(id string) (ExplorerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.explorer.Select(id); err != nil {
		return ExplorerView{}, err
	}
	return s.explorer.View(), nil
}

func (s *Session) ClearSelection() ExplorerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.explorer.ClearSelection()
	return s.explorer.View()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SiteLister supplies the catalog a new session's explorer is built on.
type SiteLister interface {
	ListSites(ctx context.Context) ([]domain.Site, error)
}

type SessionOptions struct {
	TTL         time.Duration
	MaxSessions int // zero means unbounded; the least recently seen session is evicted
	MaxPhotos   int
	PreviewSize int
}

// Sessions is the registry of live viewer sessions.
type Sessions struct {
	mu    sync.Mutex
	byID  map[string]*Session
	sites SiteLister
	media domain.MediaStore
	opts  SessionOptions
	now   func() time.Time
}

func NewSessions(sites SiteLister, media domain.MediaStore, opts SessionOptions) *Sessions {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	return &Sessions{
		byID:  make(map[string]*Session),
		sites: sites,
		media: media,
		opts:  opts,
		now:   time.Now,
	}
}

// Get returns the live session for id and marks it as seen.
func (r *Sessions) Get(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.byID[id]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	s.touch(r.now())
	return s, true
}

func (r *Sessions) Create(ctx context.Context) (*Session, error) {
	sites, err := r.sites.ListSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sites: %w", err)
	}
	s := &Session{
		ID:        uuid.NewString(),
		feed:      NewFeed(shared.SeedReviews()),
		explorer:  NewExplorer(sites),
		lastSeen:  r.now(),
		media:     r.media,
		previewer: NewPreviewer(r.opts.PreviewSize),
		maxPhotos: r.opts.MaxPhotos,
	}
	var evicted *Session
	r.mu.Lock()
	if r.opts.MaxSessions > 0 && len(r.byID) >= r.opts.MaxSessions {
		evicted = r.oldestLocked()
		if evicted != nil {
			delete(r.byID, evicted.ID)
		}
	}
	r.byID[s.ID] = s
	n := len(r.byID)
	r.mu.Unlock()
	if evicted != nil {
		r.release(evicted)
		log.Debug().Str("session", evicted.ID).Msg("session evicted at capacity")
	}
	observability.SetActiveSessions(n)
	return s, nil
}

func (r *Sessions) oldestLocked() *Session {
	var oldest *Session
	var at time.Time
	for _, s := range r.byID {
		if seen := s.idleSince(); oldest == nil || seen.Before(at) {
			oldest, at = s, seen
		}
	}
	return oldest
}

func (r *Sessions) release(s *Session) {
	s.close()
	r.media.ReleaseOwner(s.ID)
}

// End tears a session down and releases everything it owns.
func (r *Sessions) End(id string) {
	r.mu.Lock()
	s, ok := r.byID[id]
	delete(r.byID, id)
	n := len(r.byID)
	r.mu.Unlock()
	if ok {
		r.release(s)
		observability.SetActiveSessions(n)
	}
}

// Sweep ends every session idle for longer than the TTL and reports how many.
func (r *Sessions) Sweep() int {
	cutoff := r.now().Add(-r.opts.TTL)
	r.mu.Lock()
	var stale []string
	for id, s := range r.byID {
		if s.idleSince().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	r.mu.Unlock()
	for _, id := range stale {
		r.End(id)
	}
	return len(stale)
}

func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// RunSweeper sweeps every interval until ctx is done.
func (r *Sessions) RunSweeper(ctx context.Context, every time.Duration) error {
	if every <= 0 {
		every = time.Minute
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-t.C:
			if n := r.Sweep(); n > 0 {
				log.Info().Int("expired", n).Msg("sessions swept")
			}
		}
	}
}
