package service

import (
	"context"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/store"
)

type ReviewService struct {
	movies store.MovieStore
}

func NewReviewService(movies store.MovieStore) *ReviewService {
	return &ReviewService{movies: movies}
}

// AddReview appends a user's review to a movie and refreshes the movie's
// mean rating. A user gets at most one review per movie: a second attempt
// returns store.ErrDuplicateReview and leaves the movie untouched.
func (s *ReviewService) AddReview(ctx context.Context, movieID, userID int64, comment string, rate float64) error {
	_, err := s.movies.AddReview(ctx, movieID, model.Review{
		UserID:  userID,
		Comment: comment,
		Rate:    rate,
	})
	return err
}

// ListReviews returns a movie's reviews with the reviewer name resolved.
func (s *ReviewService) ListReviews(ctx context.Context, movieID int64) ([]model.ReviewEntry, error) {
	return s.movies.Reviews(ctx, movieID)
}
