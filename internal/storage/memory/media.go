package memory

import (
	"fmt"
	"sync"

	"monastery_tours/internal/domain"
)

var ErrMediaFull = domain.ErrMediaFull

// MediaStore keeps photo previews grouped by owning session. A zero
// maxBytes means unbounded.
type MediaStore struct {
	mu       sync.Mutex
	byOwner  map[string]map[string]domain.Photo
	size     int64
	maxBytes int64
}

func NewMediaStore(maxBytes int64) *MediaStore {
	return &MediaStore{byOwner: make(map[string]map[string]domain.Photo), maxBytes: maxBytes}
}

func (m *MediaStore) Put(owner string, p domain.Photo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(p.Data))
	if m.maxBytes > 0 && m.size+n > m.maxBytes {
		return fmt.Errorf("photo %q (%d bytes): %w", p.ID, n, ErrMediaFull)
	}
	photos, ok := m.byOwner[owner]
	if !ok {
		photos = make(map[string]domain.Photo)
		m.byOwner[owner] = photos
	}
	if old, ok := photos[p.ID]; ok {
		m.size -= int64(len(old.Data))
	}
	photos[p.ID] = p
	m.size += n
	return nil
}

// Get only resolves photos belonging to owner.
func (m *MediaStore) Get(owner, id string) (domain.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byOwner[owner][id]
	if !ok {
		return domain.Photo{}, fmt.Errorf("photo %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (m *MediaStore) Release(owner string, ids ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	photos := m.byOwner[owner]
	for _, id := range ids {
		if p, ok := photos[id]; ok {
			m.size -= int64(len(p.Data))
			delete(photos, id)
		}
	}
	if len(photos) == 0 {
		delete(m.byOwner, owner)
	}
}

func (m *MediaStore) ReleaseOwner(owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.byOwner[owner] {
		m.size -= int64(len(p.Data))
	}
	delete(m.byOwner, owner)
}

// Bytes reports the total preview payload currently held.
func (m *MediaStore) Bytes() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}
