package service

import (
	"context"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/store"
)

type WatchlistService struct {
	users store.UserStore
}

func NewWatchlistService(users store.UserStore) *WatchlistService {
	return &WatchlistService{users: users}
}

// Upsert records the user's intent for a movie: an existing entry keeps its
// position and gets the new watched flag, otherwise a new entry is appended.
// Returns the user with the refreshed watchlist.
func (s *WatchlistService) Upsert(ctx context.Context, userID, movieID int64, watched bool) (*model.User, error) {
	if err := s.users.UpsertWatchItem(ctx, userID, movieID, watched); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

// Remove drops the entry for movieID; removing an absent entry succeeds.
func (s *WatchlistService) Remove(ctx context.Context, userID, movieID int64) error {
	return s.users.RemoveWatchItem(ctx, userID, movieID)
}

func (s *WatchlistService) List(ctx context.Context, userID int64) ([]model.WatchListEntry, error) {
	return s.users.WatchList(ctx, userID)
}
