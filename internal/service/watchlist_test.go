package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/service"
	"github.com/cinelog/cinelog/internal/store/memory"
)

func newWatchlistFixture(t *testing.T) (*service.WatchlistService, *service.CatalogueService, int64) {
	t.Helper()
	movies := memory.NewMovieStore()
	users := memory.NewUserStore(movies)

	owner := &model.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, users.Insert(context.Background(), owner))

	return service.NewWatchlistService(users), service.NewCatalogueService(movies), owner.ID
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	watchlist, catalogue, userID := newWatchlistFixture(t)
	seedMovies(t, catalogue, 2)

	user, err := watchlist.Upsert(ctx, userID, 1, false)
	require.NoError(t, err)
	require.Len(t, user.WatchList, 1)
	require.False(t, user.WatchList[0].Watched)

	user, err = watchlist.Upsert(ctx, userID, 2, false)
	require.NoError(t, err)
	require.Len(t, user.WatchList, 2)

	// Upserting the first movie again flips the flag without duplicating
	// the entry or moving it from the front.
	user, err = watchlist.Upsert(ctx, userID, 1, true)
	require.NoError(t, err)
	require.Len(t, user.WatchList, 2)
	require.Equal(t, int64(1), user.WatchList[0].MovieID)
	require.True(t, user.WatchList[0].Watched)
	require.Equal(t, int64(2), user.WatchList[1].MovieID)
}

func TestUpsertIdempotent(t *testing.T) {
	ctx := context.Background()
	watchlist, catalogue, userID := newWatchlistFixture(t)
	seedMovies(t, catalogue, 1)

	for i := 0; i < 3; i++ {
		user, err := watchlist.Upsert(ctx, userID, 1, true)
		require.NoError(t, err)
		require.Len(t, user.WatchList, 1)
		require.True(t, user.WatchList[0].Watched)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	watchlist, _, userID := newWatchlistFixture(t)

	require.NoError(t, watchlist.Remove(ctx, userID, 42))

	entries, err := watchlist.List(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	watchlist, catalogue, userID := newWatchlistFixture(t)
	seedMovies(t, catalogue, 2)

	_, err := watchlist.Upsert(ctx, userID, 1, false)
	require.NoError(t, err)
	_, err = watchlist.Upsert(ctx, userID, 2, true)
	require.NoError(t, err)

	require.NoError(t, watchlist.Remove(ctx, userID, 1))

	entries, err := watchlist.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int64(2), entries[0].Movie.ID)
}

func TestListResolvesMovie(t *testing.T) {
	ctx := context.Background()
	watchlist, catalogue, userID := newWatchlistFixture(t)
	seedMovies(t, catalogue, 1)

	_, err := watchlist.Upsert(ctx, userID, 1, true)
	require.NoError(t, err)

	entries, err := watchlist.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Movie 1", entries[0].Movie.Name)
	require.Equal(t, "Drama", entries[0].Movie.Category)
	require.True(t, entries[0].Watched)
}

func TestListSkipsDeletedMovie(t *testing.T) {
	ctx := context.Background()
	watchlist, catalogue, userID := newWatchlistFixture(t)
	seedMovies(t, catalogue, 2)

	_, err := watchlist.Upsert(ctx, userID, 1, false)
	require.NoError(t, err)
	_, err = watchlist.Upsert(ctx, userID, 2, false)
	require.NoError(t, err)

	require.NoError(t, catalogue.Delete(ctx, 1))

	entries, err := watchlist.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int64(2), entries[0].Movie.ID)
}
