package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-inventory-report/internal/engine"
)

// DefaultCapacity is the number of datasets kept when no limit is given.
const DefaultCapacity = 32

// ErrNotFound is returned for unknown or evicted session IDs.
var ErrNotFound = errors.New("session not found")

// Session is an uploaded dataset. The dataset is never modified after
// registration, so it can be aggregated from several requests at once.
type Session struct {
	ID         string
	Source     string
	UploadedAt time.Time
	Dataset    *engine.Dataset
}

// Registry holds the most recent sessions in memory.
type Registry struct {
	mu       sync.RWMutex
	capacity int
	sessions map[string]*Session
	order    []string // oldest first
}

// NewRegistry returns a registry keeping at most capacity sessions.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{
		capacity: capacity,
		sessions: make(map[string]*Session),
	}
}

// Add registers ds and returns its session. The oldest session is evicted
// when the registry is full.
func (r *Registry) Add(source string, ds *engine.Dataset) *Session {
	s := &Session{
		ID:         uuid.New().String(),
		Source:     source,
		UploadedAt: time.Now().UTC(),
		Dataset:    ds,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for len(r.order) >= r.capacity {
		delete(r.sessions, r.order[0])
		r.order = r.order[1:]
	}
	r.sessions[s.ID] = s
	r.order = append(r.order, s.ID)
	return s
}

// Get returns the session with the given ID.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// List returns all sessions, newest first.
func (r *Registry) List() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*Session, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.sessions[id])
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].UploadedAt.After(list[j].UploadedAt)
	})
	return list
}

// Remove drops a session. It reports whether the session existed.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of sessions held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
