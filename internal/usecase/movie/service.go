// Package movie implements the movie CRUD use cases: validation and
// orchestration between the transport layer and the repository.
package movie

import (
	"context"
	"fmt"
	"strings"

	"github.com/mflix-lab/mflixd/internal/domain"
	dommovie "github.com/mflix-lab/mflixd/internal/domain/movie"
	"github.com/mflix-lab/mflixd/internal/domain/search/criteria"
	"github.com/mflix-lab/mflixd/internal/metrics"
)

// Service handles movie CRUD operations.
type Service struct {
	repo Repository
}

// New creates a movie service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns movies matching the search criteria. The criteria is
// already total over its inputs, so listing cannot fail on parameters.
func (s *Service) List(ctx context.Context, c criteria.Criteria) ([]dommovie.Movie, error) {
	expr, sort := c.Compile()

	movies, err := s.repo.Find(ctx, expr, sort, c.Limit(), c.Skip())
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	metrics.ObserveMovieQuery(c.Query() != "", len(movies))
	return movies, nil
}

// Get retrieves a movie by ID.
func (s *Service) Get(ctx context.Context, id string) (dommovie.Movie, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dommovie.Movie{}, fmt.Errorf("get movie: %w", err)
	}
	return m, nil
}

// Create validates and stores a movie, returning the stored document.
func (s *Service) Create(ctx context.Context, in dommovie.Input) (dommovie.Movie, error) {
	if err := in.Validate(); err != nil {
		return dommovie.Movie{}, err
	}

	id, err := s.repo.Insert(ctx, in.ToMovie())
	if err != nil {
		return dommovie.Movie{}, fmt.Errorf("create movie: %w", err)
	}

	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dommovie.Movie{}, fmt.Errorf("read back created movie: %w", err)
	}
	return created, nil
}

// BatchInsertResult summarizes a batch create.
type BatchInsertResult struct {
	InsertedCount int      `json:"insertedCount"`
	InsertedIDs   []string `json:"insertedIds"`
}

// CreateBatch validates and stores multiple movies in one insert.
func (s *Service) CreateBatch(ctx context.Context, inputs []dommovie.Input) (BatchInsertResult, error) {
	if len(inputs) == 0 {
		return BatchInsertResult{}, domain.NewValidation("Request body must be a non-empty array of movie objects")
	}

	movies := make([]dommovie.Movie, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.Title) == "" {
			return BatchInsertResult{}, domain.NewValidation("Movie at index %d: Title is required", i)
		}
		movies[i] = in.ToMovie()
	}

	ids, err := s.repo.InsertMany(ctx, movies)
	if err != nil {
		return BatchInsertResult{}, fmt.Errorf("create movies batch: %w", err)
	}

	return BatchInsertResult{InsertedCount: len(ids), InsertedIDs: ids}, nil
}

// Update applies a partial update and returns the updated document.
func (s *Service) Update(ctx context.Context, id string, u dommovie.Update) (dommovie.Movie, error) {
	if u.IsEmpty() {
		return dommovie.Movie{}, domain.NewValidation("No update data provided")
	}

	matched, err := s.repo.Update(ctx, id, u)
	if err != nil {
		return dommovie.Movie{}, fmt.Errorf("update movie: %w", err)
	}
	if matched == 0 {
		return dommovie.Movie{}, fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dommovie.Movie{}, fmt.Errorf("read back updated movie: %w", err)
	}
	return updated, nil
}

// BatchUpdateResult summarizes a batch update.
type BatchUpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// UpdateBatch applies a $set update to every movie matching the filter.
// Filter and update documents are passed through to the storage engine
// verbatim.
func (s *Service) UpdateBatch(
	ctx context.Context, rawFilter, rawUpdate map[string]any,
) (BatchUpdateResult, error) {
	if rawFilter == nil || rawUpdate == nil {
		return BatchUpdateResult{}, domain.NewValidation("Both filter and update objects are required")
	}
	if len(rawUpdate) == 0 {
		return BatchUpdateResult{}, domain.NewValidation("No update data provided")
	}

	matched, modified, err := s.repo.UpdateMany(ctx, rawFilter, rawUpdate)
	if err != nil {
		return BatchUpdateResult{}, fmt.Errorf("update movies batch: %w", err)
	}
	return BatchUpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

// Delete removes one movie and returns the deleted count (always 1).
func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete movie: %w", err)
	}
	if deleted == 0 {
		return 0, fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
	}
	return deleted, nil
}

// DeleteBatch removes every movie matching the filter and returns the
// deleted count. An empty filter is rejected rather than wiping the
// collection.
func (s *Service) DeleteBatch(ctx context.Context, rawFilter map[string]any) (int64, error) {
	if len(rawFilter) == 0 {
		return 0, domain.NewValidation("A filter object is required")
	}

	deleted, err := s.repo.DeleteMany(ctx, rawFilter)
	if err != nil {
		return 0, fmt.Errorf("delete movies batch: %w", err)
	}
	return deleted, nil
}

// FindAndDelete atomically removes a movie and returns the deleted
// document.
func (s *Service) FindAndDelete(ctx context.Context, id string) (dommovie.Movie, error) {
	m, err := s.repo.FindOneAndDelete(ctx, id)
	if err != nil {
		return dommovie.Movie{}, fmt.Errorf("find and delete movie: %w", err)
	}
	return m, nil
}
