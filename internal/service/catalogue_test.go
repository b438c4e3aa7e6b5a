package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/service"
	"github.com/cinelog/cinelog/internal/store"
	"github.com/cinelog/cinelog/internal/store/memory"
)

func newCatalogue() (*service.CatalogueService, *memory.MovieStore) {
	movies := memory.NewMovieStore()
	return service.NewCatalogueService(movies), movies
}

func seedMovies(t *testing.T, catalogue *service.CatalogueService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := catalogue.Create(context.Background(), service.MovieInput{
			Name:        fmt.Sprintf("Movie %d", i+1),
			Category:    "Drama",
			Description: "Something happens.",
		})
		require.NoError(t, err)
	}
}

func TestCreateRequiresAllFields(t *testing.T) {
	catalogue, _ := newCatalogue()

	for _, in := range []service.MovieInput{
		{Category: "Drama", Description: "d"},
		{Name: "n", Description: "d"},
		{Name: "n", Category: "Drama"},
		{Name: "  ", Category: "Drama", Description: "d"},
	} {
		_, err := catalogue.Create(context.Background(), in)
		require.ErrorIs(t, err, service.ErrMissingFields)
	}
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	catalogue, _ := newCatalogue()
	seedMovies(t, catalogue, 5)

	movies, pages, err := catalogue.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 3, pages)
	require.Len(t, movies, 2)
	require.Equal(t, "Movie 1", movies[0].Name)

	movies, pages, err = catalogue.List(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 3, pages)
	require.Len(t, movies, 1)
	require.Equal(t, "Movie 5", movies[0].Name)

	// Zero and negative pages behave as page one.
	for _, page := range []int{0, -1} {
		movies, _, err = catalogue.List(ctx, page)
		require.NoError(t, err)
		require.Len(t, movies, 2)
		require.Equal(t, "Movie 1", movies[0].Name)
	}

	movies, _, err = catalogue.List(ctx, 4)
	require.NoError(t, err)
	require.Empty(t, movies)
}

func TestListExcludesReviews(t *testing.T) {
	ctx := context.Background()
	catalogue, movies := newCatalogue()
	seedMovies(t, catalogue, 1)

	reviews := service.NewReviewService(movies)
	require.NoError(t, reviews.AddReview(ctx, 1, 1, "fine", 3))

	listed, _, err := catalogue.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Nil(t, listed[0].Reviews)
	require.InDelta(t, 3.0, listed[0].Rate, 1e-9)
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	catalogue, _ := newCatalogue()
	seedMovies(t, catalogue, 1)

	category := "Comedy"
	require.NoError(t, catalogue.Update(ctx, 1, store.MoviePatch{Category: &category}))

	got, err := catalogue.Find(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Movie 1", got.Name)
	require.Equal(t, "Comedy", got.Category)
	require.Equal(t, "Something happens.", got.Description)
}

func TestFindNotFound(t *testing.T) {
	catalogue, _ := newCatalogue()

	_, err := catalogue.Find(context.Background(), 999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteThenFind(t *testing.T) {
	ctx := context.Background()
	catalogue, _ := newCatalogue()
	seedMovies(t, catalogue, 1)

	require.NoError(t, catalogue.Delete(ctx, 1))

	_, err := catalogue.Find(ctx, 1)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestImportSkipsIncompleteRows(t *testing.T) {
	ctx := context.Background()
	catalogue, _ := newCatalogue()

	imported, err := catalogue.Import(ctx, []service.MovieInput{
		{Name: "A", Category: "Drama", Description: "a"},
		{Name: "", Category: "Drama", Description: "missing name"},
		{Name: "B", Category: "Comedy", Description: "b"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, imported)

	_, pages, err := catalogue.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, pages)
}
