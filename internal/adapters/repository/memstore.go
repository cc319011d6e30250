package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/okian/encore/internal/domain/model"
)

// MemStore bundles in-memory implementations of the three stores.
// Values are deep-copied on the way in and out, so callers can never
// mutate stored state through a retained pointer.
type MemStore struct {
	Profiles  *ProfileMem
	Favorites *FavoriteMem
	Shares    *ShareMem
}

// NewMemStore creates empty stores. A zero share TTL means share
// snapshots never expire.
func NewMemStore(opts ...MemOption) *MemStore {
	s := &MemStore{
		Profiles:  &ProfileMem{profiles: make(map[string]*model.TasteProfile)},
		Favorites: &FavoriteMem{favorites: make(map[string][]*model.Favorite)},
		Shares: &ShareMem{
			clock:  time.Now,
			shares: make(map[string]*model.ShareSnapshot),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// MemOption configures a MemStore.
type MemOption func(*MemStore)

// WithShareTTL expires share snapshots after ttl.
func WithShareTTL(ttl time.Duration) MemOption {
	return func(s *MemStore) {
		s.Shares.ttl = ttl
	}
}

// WithClock overrides the time source, for tests.
func WithClock(clock func() time.Time) MemOption {
	return func(s *MemStore) {
		if clock != nil {
			s.Shares.clock = clock
		}
	}
}

// ProfileMem implements ProfileStore.
type ProfileMem struct {
	mu       sync.RWMutex
	profiles map[string]*model.TasteProfile // by user id
}

// Replace stores the profile, overwriting the user's previous one.
func (s *ProfileMem) Replace(_ context.Context, profile *model.TasteProfile) error {
	if profile == nil || profile.UserID == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	s.profiles[profile.UserID] = profile.Clone()
	s.mu.Unlock()
	return nil
}

// Get returns the user's profile.
func (s *ProfileMem) Get(_ context.Context, userID string) (*model.TasteProfile, error) {
	s.mu.RLock()
	profile, ok := s.profiles[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return profile.Clone(), nil
}

// FavoriteMem implements FavoriteStore.
type FavoriteMem struct {
	mu        sync.RWMutex
	favorites map[string][]*model.Favorite // by user id, insertion order
}

// Add stores a favorite, replacing an earlier save of the same concert
// by the same user.
func (s *FavoriteMem) Add(_ context.Context, favorite *model.Favorite) error {
	if favorite == nil || favorite.ID == "" || favorite.UserID == "" {
		return ErrInvalidInput
	}

	stored := *favorite
	stored.Concert = favorite.Concert.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.favorites[favorite.UserID]
	for i, existing := range list {
		if sameConcert(existing.Concert.Candidate, stored.Concert.Candidate) {
			list[i] = &stored
			return nil
		}
	}
	s.favorites[favorite.UserID] = append(list, &stored)
	return nil
}

// Remove deletes a favorite by id.
func (s *FavoriteMem) Remove(_ context.Context, userID, favoriteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.favorites[userID]
	for i, existing := range list {
		if existing.ID == favoriteID {
			s.favorites[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListByUser returns the user's favorites, newest first.
func (s *FavoriteMem) ListByUser(_ context.Context, userID string) ([]*model.Favorite, error) {
	s.mu.RLock()
	list := s.favorites[userID]
	out := make([]*model.Favorite, 0, len(list))
	for _, favorite := range list {
		cp := *favorite
		cp.Concert = favorite.Concert.Clone()
		out = append(out, &cp)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}

// ShareMem implements ShareStore.
type ShareMem struct {
	ttl   time.Duration
	clock func() time.Time

	mu     sync.RWMutex
	shares map[string]*model.ShareSnapshot
}

// Put stores a share snapshot.
func (s *ShareMem) Put(_ context.Context, snapshot *model.ShareSnapshot) error {
	if snapshot == nil || snapshot.ID == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	s.shares[snapshot.ID] = cloneSnapshot(snapshot)
	s.mu.Unlock()
	return nil
}

// Get returns a share snapshot, treating expired snapshots as absent.
func (s *ShareMem) Get(_ context.Context, shareID string) (*model.ShareSnapshot, error) {
	s.mu.RLock()
	snapshot, ok := s.shares[shareID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if s.ttl > 0 && s.clock().Sub(snapshot.CreatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.shares, shareID)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	return cloneSnapshot(snapshot), nil
}

func cloneSnapshot(snapshot *model.ShareSnapshot) *model.ShareSnapshot {
	cp := *snapshot
	cp.TopGenres = append([]string(nil), snapshot.TopGenres...)
	if snapshot.RootGenreMap != nil {
		cp.RootGenreMap = make(map[string]float64, len(snapshot.RootGenreMap))
		for k, v := range snapshot.RootGenreMap {
			cp.RootGenreMap[k] = v
		}
	}
	return &cp
}

// sameConcert reports whether two candidates describe the same show.
func sameConcert(a, b model.Candidate) bool {
	if a.SourceID != "" && a.Source == b.Source && a.SourceID == b.SourceID {
		return true
	}
	return a.ArtistName == b.ArtistName &&
		a.VenueName == b.VenueName &&
		a.Date.Equal(b.Date)
}
