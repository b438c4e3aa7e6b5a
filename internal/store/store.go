package store

import (
	"context"
	"errors"

	"github.com/cinelog/cinelog/internal/model"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrDuplicateReview = errors.New("review already added")
)

// UserStore persists user aggregates, including their watchlists.
type UserStore interface {
	Insert(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// UpsertWatchItem updates the watched flag of an existing entry in place,
	// or appends a new entry. Repeated identical calls are idempotent.
	UpsertWatchItem(ctx context.Context, userID, movieID int64, watched bool) error
	// RemoveWatchItem deletes the entry for movieID; a missing entry is not
	// an error.
	RemoveWatchItem(ctx context.Context, userID, movieID int64) error
	// WatchList returns the user's entries in insertion order with the movie
	// reference resolved. Entries whose movie no longer exists are skipped.
	WatchList(ctx context.Context, userID int64) ([]model.WatchListEntry, error)
}

// MoviePatch carries a partial movie update; nil fields are left untouched.
type MoviePatch struct {
	Name        *string
	Category    *string
	Description *string
}

// MovieStore persists movie aggregates and their reviews.
type MovieStore interface {
	Insert(ctx context.Context, m *model.Movie) error
	FindByID(ctx context.Context, id int64) (*model.Movie, error)
	Update(ctx context.Context, id int64, patch MoviePatch) error
	Delete(ctx context.Context, id int64) error

	// List returns movies without their review payloads.
	List(ctx context.Context, offset, limit int) ([]model.Movie, error)
	Count(ctx context.Context) (int64, error)

	// AddReview atomically appends a review and sets the movie rate to the
	// mean of all review rates. Returns ErrNotFound for a missing movie and
	// ErrDuplicateReview when the user already reviewed it.
	AddReview(ctx context.Context, movieID int64, rev model.Review) (float64, error)
	// Reviews returns a movie's reviews with the reviewer resolved.
	Reviews(ctx context.Context, movieID int64) ([]model.ReviewEntry, error)
}
