package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/store"
)

const uniqueViolation = "23505"

type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) Insert(ctx context.Context, u *model.User) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, is_admin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Name, u.Email, u.PasswordHash, u.IsAdmin,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return store.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.findOne(ctx, "id = $1", id)
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findOne(ctx, "email = $1", email)
}

func (s *UserStore) findOne(ctx context.Context, filter string, arg any) (*model.User, error) {
	var u model.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, is_admin, created_at, updated_at
		 FROM users WHERE `+filter, arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %v", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT movie_id, watched FROM watchlist_entries WHERE user_id = $1 ORDER BY id`,
		u.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %v", err)
	}
	defer rows.Close()

	u.WatchList = []model.WatchItem{}
	for rows.Next() {
		var item model.WatchItem
		if err := rows.Scan(&item.MovieID, &item.Watched); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %v", err)
		}
		u.WatchList = append(u.WatchList, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read watchlist: %v", err)
	}
	return &u, nil
}

func (s *UserStore) UpsertWatchItem(ctx context.Context, userID, movieID int64, watched bool) error {
	// ON CONFLICT keeps the original row, so the entry's position survives
	// repeated upserts.
	_, err := s.pool.Exec(ctx,
		`INSERT INTO watchlist_entries (user_id, movie_id, watched)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, movie_id) DO UPDATE SET watched = EXCLUDED.watched`,
		userID, movieID, watched,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert watchlist entry: %v", err)
	}
	return nil
}

func (s *UserStore) RemoveWatchItem(ctx context.Context, userID, movieID int64) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM watchlist_entries WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist entry: %v", err)
	}
	return nil
}

func (s *UserStore) WatchList(ctx context.Context, userID int64) ([]model.WatchListEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT m.id, m.name, m.category, w.watched
		 FROM watchlist_entries w
		 JOIN movies m ON m.id = w.movie_id
		 WHERE w.user_id = $1
		 ORDER BY w.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %v", err)
	}
	defer rows.Close()

	entries := []model.WatchListEntry{}
	for rows.Next() {
		var e model.WatchListEntry
		if err := rows.Scan(&e.Movie.ID, &e.Movie.Name, &e.Movie.Category, &e.Watched); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %v", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read watchlist: %v", err)
	}
	return entries, nil
}
