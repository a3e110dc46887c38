package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store implementation, useful for tests and
// for runs that opt out of persistence entirely.
type MemoryStore struct {
	sessions *memorySessionRepo
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: &memorySessionRepo{
			byID: make(map[string]*Session),
		},
	}
}

func (s *MemoryStore) Sessions() SessionRepository      { return s.sessions }
func (s *MemoryStore) Migrate(ctx context.Context) error { return nil }
func (s *MemoryStore) Close() error                     { return nil }

type memorySessionRepo struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

func (r *memorySessionRepo) Store(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *memorySessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *memorySessionRepo) Best(ctx context.Context) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *Session
	for _, s := range r.byID {
		if best == nil || s.Score > best.Score {
			best = s
		}
	}
	if best == nil {
		return nil, ErrNotFound
	}
	clone := *best
	return &clone, nil
}

func (r *memorySessionRepo) List(ctx context.Context, filter SessionFilter) ([]*SessionSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []*Session
	for _, s := range r.byID {
		if filter.MinScore > 0 && s.Score < filter.MinScore {
			continue
		}
		if filter.Interrupted != nil && s.Interrupted != *filter.Interrupted {
			continue
		}
		all = append(all, s)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].FinishedAt.After(all[j].FinishedAt)
	})

	if filter.Offset > 0 && filter.Offset < len(all) {
		all = all[filter.Offset:]
	} else if filter.Offset >= len(all) {
		all = nil
	}
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}

	result := make([]*SessionSummary, 0, len(all))
	for _, s := range all {
		result = append(result, &SessionSummary{
			ID:          s.ID,
			Height:      s.Height,
			Width:       s.Width,
			Score:       s.Score,
			Placements:  countPlacements(s.Placements),
			Interrupted: s.Interrupted,
			StartedAt:   s.StartedAt,
			FinishedAt:  s.FinishedAt,
		})
	}
	return result, nil
}

func (r *memorySessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
