package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/store"
)

type MovieStore struct {
	pool *pgxpool.Pool
}

func NewMovieStore(pool *pgxpool.Pool) *MovieStore {
	return &MovieStore{pool: pool}
}

func (s *MovieStore) Insert(ctx context.Context, m *model.Movie) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO movies (name, category, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, rate, created_at, updated_at`,
		m.Name, m.Category, m.Description,
	).Scan(&m.ID, &m.Rate, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create movie: %v", err)
	}
	m.Reviews = []model.Review{}
	return nil
}

func (s *MovieStore) FindByID(ctx context.Context, id int64) (*model.Movie, error) {
	var m model.Movie
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, category, description, rate, created_at, updated_at
		 FROM movies WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Category, &m.Description, &m.Rate, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load movie: %v", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT user_id, comment, rate FROM reviews WHERE movie_id = $1 ORDER BY id`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %v", err)
	}
	defer rows.Close()

	m.Reviews = []model.Review{}
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.UserID, &r.Comment, &r.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan review: %v", err)
		}
		m.Reviews = append(m.Reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %v", err)
	}
	return &m, nil
}

func (s *MovieStore) Update(ctx context.Context, id int64, patch store.MoviePatch) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE movies
		 SET name = COALESCE($2, name),
		     category = COALESCE($3, category),
		     description = COALESCE($4, description),
		     updated_at = NOW()
		 WHERE id = $1`,
		id, patch.Name, patch.Category, patch.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update movie: %v", err)
	}
	return nil
}

func (s *MovieStore) Delete(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %v", err)
	}
	return nil
}

func (s *MovieStore) List(ctx context.Context, offset, limit int) ([]model.Movie, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, category, description, rate, created_at, updated_at
		 FROM movies ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %v", err)
	}
	defer rows.Close()

	movies := []model.Movie{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Description, &m.Rate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %v", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movies: %v", err)
	}
	return movies, nil
}

func (s *MovieStore) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count movies: %v", err)
	}
	return total, nil
}

// AddReview runs the append and the rate recomputation in one transaction,
// with the movie row locked so concurrent reviewers of the same movie
// serialize instead of overwriting each other's average.
func (s *MovieStore) AddReview(ctx context.Context, movieID int64, rev model.Review) (float64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM movies WHERE id = $1 FOR UPDATE`, movieID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock movie: %v", err)
	}

	var reviewed bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE movie_id = $1 AND user_id = $2)`,
		movieID, rev.UserID,
	).Scan(&reviewed)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing review: %v", err)
	}
	if reviewed {
		return 0, store.ErrDuplicateReview
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO reviews (movie_id, user_id, comment, rate) VALUES ($1, $2, $3, $4)`,
		movieID, rev.UserID, rev.Comment, rev.Rate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert review: %v", err)
	}

	var rate float64
	err = tx.QueryRow(ctx,
		`UPDATE movies
		 SET rate = (SELECT AVG(rate) FROM reviews WHERE movie_id = $1),
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING rate`,
		movieID,
	).Scan(&rate)
	if err != nil {
		return 0, fmt.Errorf("failed to update movie rate: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit review: %v", err)
	}
	return rate, nil
}

func (s *MovieStore) Reviews(ctx context.Context, movieID int64) ([]model.ReviewEntry, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`, movieID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check movie: %v", err)
	}
	if !exists {
		return nil, store.ErrNotFound
	}

	rows, err := s.pool.Query(ctx,
		`SELECT u.id, u.name, r.comment, r.rate
		 FROM reviews r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.movie_id = $1
		 ORDER BY r.id`,
		movieID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %v", err)
	}
	defer rows.Close()

	entries := []model.ReviewEntry{}
	for rows.Next() {
		var e model.ReviewEntry
		if err := rows.Scan(&e.User.ID, &e.User.Name, &e.Comment, &e.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan review: %v", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %v", err)
	}
	return entries, nil
}
