package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/store"
)

// UserStore is a mutex-guarded in-memory implementation used by tests. It
// resolves watchlist movie references against the given MovieStore, the way
// the postgres implementation joins on the movies table.
type UserStore struct {
	mu     sync.Mutex
	seq    int64
	users  map[int64]*model.User
	movies *MovieStore
}

func NewUserStore(movies *MovieStore) *UserStore {
	s := &UserStore{users: make(map[int64]*model.User), movies: movies}
	if movies != nil {
		movies.resolveUser = s.userName
	}
	return s
}

func (s *UserStore) userName(id int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return "", false
	}
	return u.Name, true
}

func (s *UserStore) Insert(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}

	s.seq++
	now := time.Now()
	stored := *u
	stored.ID = s.seq
	stored.WatchList = []model.WatchItem{}
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.users[stored.ID] = &stored
	*u = stored
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyUser(u), nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) UpsertWatchItem(ctx context.Context, userID, movieID int64, watched bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	for i := range u.WatchList {
		if u.WatchList[i].MovieID == movieID {
			u.WatchList[i].Watched = watched
			return nil
		}
	}
	u.WatchList = append(u.WatchList, model.WatchItem{MovieID: movieID, Watched: watched})
	return nil
}

func (s *UserStore) RemoveWatchItem(ctx context.Context, userID, movieID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	kept := u.WatchList[:0]
	for _, item := range u.WatchList {
		if item.MovieID != movieID {
			kept = append(kept, item)
		}
	}
	u.WatchList = kept
	return nil
}

func (s *UserStore) WatchList(ctx context.Context, userID int64) ([]model.WatchListEntry, error) {
	s.mu.Lock()
	items := []model.WatchItem{}
	u, ok := s.users[userID]
	if ok {
		items = append(items, u.WatchList...)
	}
	s.mu.Unlock()
	if !ok {
		return nil, store.ErrNotFound
	}

	entries := []model.WatchListEntry{}
	for _, item := range items {
		m, err := s.movies.FindByID(ctx, item.MovieID)
		if err != nil {
			// Dangling reference, the movie was deleted.
			continue
		}
		entries = append(entries, model.WatchListEntry{
			Movie:   model.MovieSummary{ID: m.ID, Name: m.Name, Category: m.Category},
			Watched: item.Watched,
		})
	}
	return entries, nil
}

func copyUser(u *model.User) *model.User {
	cp := *u
	cp.WatchList = append([]model.WatchItem{}, u.WatchList...)
	return &cp
}
