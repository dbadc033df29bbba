package movie

import (
	"context"

	dommovie "github.com/mflix-lab/mflixd/internal/domain/movie"
	"github.com/mflix-lab/mflixd/internal/domain/search/filter"
)

// Repository defines the storage contract for movies.
type Repository interface {
	Find(ctx context.Context, expr filter.Expression, sort filter.Sort, limit, skip int) ([]dommovie.Movie, error)
	FindByID(ctx context.Context, id string) (dommovie.Movie, error)
	Insert(ctx context.Context, m dommovie.Movie) (id string, err error)
	InsertMany(ctx context.Context, movies []dommovie.Movie) (ids []string, err error)
	Update(ctx context.Context, id string, u dommovie.Update) (matched int64, err error)
	UpdateMany(ctx context.Context, rawFilter, rawUpdate map[string]any) (matched, modified int64, err error)
	Delete(ctx context.Context, id string) (deleted int64, err error)
	DeleteMany(ctx context.Context, rawFilter map[string]any) (deleted int64, err error)
	FindOneAndDelete(ctx context.Context, id string) (dommovie.Movie, error)
}
