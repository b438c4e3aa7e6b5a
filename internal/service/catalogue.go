package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/store"
)

// pageSize is the fixed listing page size.
const pageSize = 2

var ErrMissingFields = errors.New("name, category and description are required")

type CatalogueService struct {
	movies store.MovieStore
}

func NewCatalogueService(movies store.MovieStore) *CatalogueService {
	return &CatalogueService{movies: movies}
}

// MovieInput carries the writable movie fields.
type MovieInput struct {
	Name        string
	Category    string
	Description string
}

func (in MovieInput) complete() bool {
	return strings.TrimSpace(in.Name) != "" &&
		strings.TrimSpace(in.Category) != "" &&
		strings.TrimSpace(in.Description) != ""
}

func (s *CatalogueService) Create(ctx context.Context, in MovieInput) (*model.Movie, error) {
	if !in.complete() {
		return nil, ErrMissingFields
	}
	movie := &model.Movie{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
	}
	if err := s.movies.Insert(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *CatalogueService) Find(ctx context.Context, id int64) (*model.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

func (s *CatalogueService) Update(ctx context.Context, id int64, patch store.MoviePatch) error {
	return s.movies.Update(ctx, id, patch)
}

// Delete removes the movie. References from user watchlists are left behind
// and filtered out when the watchlist is listed.
func (s *CatalogueService) Delete(ctx context.Context, id int64) error {
	return s.movies.Delete(ctx, id)
}

// List returns one page of movies without review payloads, and the total
// page count. Zero or negative pages read as page one.
func (s *CatalogueService) List(ctx context.Context, page int) ([]model.Movie, int, error) {
	if page < 1 {
		page = 1
	}
	movies, err := s.movies.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.movies.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	pages := int(math.Ceil(float64(total) / float64(pageSize)))
	return movies, pages, nil
}

// Import creates one movie per well-formed row, skipping incomplete ones,
// and reports how many were created.
func (s *CatalogueService) Import(ctx context.Context, rows []MovieInput) (int, error) {
	imported := 0
	for _, in := range rows {
		if !in.complete() {
			continue
		}
		if _, err := s.Create(ctx, in); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
