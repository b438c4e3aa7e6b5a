package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/store"
)

// MovieStore is a mutex-guarded in-memory implementation used by tests.
type MovieStore struct {
	mu     sync.Mutex
	seq    int64
	movies map[int64]*model.Movie

	// resolveUser lets Reviews resolve reviewer names without a real join.
	resolveUser func(id int64) (string, bool)
}

func NewMovieStore() *MovieStore {
	return &MovieStore{movies: make(map[int64]*model.Movie)}
}

func (s *MovieStore) Insert(ctx context.Context, m *model.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := time.Now()
	stored := *m
	stored.ID = s.seq
	stored.Rate = 0
	stored.Reviews = []model.Review{}
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.movies[stored.ID] = &stored
	*m = stored
	return nil
}

func (s *MovieStore) FindByID(ctx context.Context, id int64) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *m
	cp.Reviews = append([]model.Review{}, m.Reviews...)
	return &cp, nil
}

func (s *MovieStore) Update(ctx context.Context, id int64, patch store.MoviePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	m.UpdatedAt = time.Now()
	return nil
}

func (s *MovieStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.movies, id)
	return nil
}

func (s *MovieStore) List(ctx context.Context, offset, limit int) ([]model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Movie{}
	for id := int64(1); id <= s.seq; id++ {
		m, ok := s.movies[id]
		if !ok {
			continue
		}
		if offset > 0 {
			offset--
			continue
		}
		if len(out) == limit {
			break
		}
		cp := *m
		cp.Reviews = nil
		out = append(out, cp)
	}
	return out, nil
}

func (s *MovieStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.movies)), nil
}

func (s *MovieStore) AddReview(ctx context.Context, movieID int64, rev model.Review) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[movieID]
	if !ok {
		return 0, store.ErrNotFound
	}
	for _, existing := range m.Reviews {
		if existing.UserID == rev.UserID {
			return 0, store.ErrDuplicateReview
		}
	}

	// Incremental mean. A zero rate is a legitimate value and is counted.
	sum := 0.0
	for _, existing := range m.Reviews {
		sum += existing.Rate
	}
	m.Rate = (sum + rev.Rate) / float64(len(m.Reviews)+1)
	m.Reviews = append(m.Reviews, rev)
	m.UpdatedAt = time.Now()
	return m.Rate, nil
}

func (s *MovieStore) Reviews(ctx context.Context, movieID int64) ([]model.ReviewEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[movieID]
	if !ok {
		return nil, store.ErrNotFound
	}
	entries := []model.ReviewEntry{}
	for _, r := range m.Reviews {
		entry := model.ReviewEntry{
			User:    model.ReviewAuthor{ID: r.UserID},
			Comment: r.Comment,
			Rate:    r.Rate,
		}
		if s.resolveUser != nil {
			if name, ok := s.resolveUser(r.UserID); ok {
				entry.User.Name = name
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
