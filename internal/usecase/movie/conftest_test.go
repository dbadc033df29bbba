package movie

import (
	"context"

	dommovie "github.com/mflix-lab/mflixd/internal/domain/movie"
	"github.com/mflix-lab/mflixd/internal/domain/search/filter"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	findFn             func(ctx context.Context, expr filter.Expression, sort filter.Sort, limit, skip int) ([]dommovie.Movie, error)
	findByIDFn         func(ctx context.Context, id string) (dommovie.Movie, error)
	insertFn           func(ctx context.Context, m dommovie.Movie) (string, error)
	insertManyFn       func(ctx context.Context, movies []dommovie.Movie) ([]string, error)
	updateFn           func(ctx context.Context, id string, u dommovie.Update) (int64, error)
	updateManyFn       func(ctx context.Context, rawFilter, rawUpdate map[string]any) (int64, int64, error)
	deleteFn           func(ctx context.Context, id string) (int64, error)
	deleteManyFn       func(ctx context.Context, rawFilter map[string]any) (int64, error)
	findOneAndDeleteFn func(ctx context.Context, id string) (dommovie.Movie, error)
}

func (m *mockRepo) Find(
	ctx context.Context, expr filter.Expression, sort filter.Sort, limit, skip int,
) ([]dommovie.Movie, error) {
	if m.findFn != nil {
		return m.findFn(ctx, expr, sort, limit, skip)
	}
	return nil, nil
}

func (m *mockRepo) FindByID(ctx context.Context, id string) (dommovie.Movie, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return dommovie.Movie{}, nil
}

func (m *mockRepo) Insert(ctx context.Context, mv dommovie.Movie) (string, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, mv)
	}
	return "", nil
}

func (m *mockRepo) InsertMany(ctx context.Context, movies []dommovie.Movie) ([]string, error) {
	if m.insertManyFn != nil {
		return m.insertManyFn(ctx, movies)
	}
	return nil, nil
}

func (m *mockRepo) Update(ctx context.Context, id string, u dommovie.Update) (int64, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, u)
	}
	return 0, nil
}

func (m *mockRepo) UpdateMany(
	ctx context.Context, rawFilter, rawUpdate map[string]any,
) (int64, int64, error) {
	if m.updateManyFn != nil {
		return m.updateManyFn(ctx, rawFilter, rawUpdate)
	}
	return 0, 0, nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 0, nil
}

func (m *mockRepo) DeleteMany(ctx context.Context, rawFilter map[string]any) (int64, error) {
	if m.deleteManyFn != nil {
		return m.deleteManyFn(ctx, rawFilter)
	}
	return 0, nil
}

func (m *mockRepo) FindOneAndDelete(ctx context.Context, id string) (dommovie.Movie, error) {
	if m.findOneAndDeleteFn != nil {
		return m.findOneAndDeleteFn(ctx, id)
	}
	return dommovie.Movie{}, nil
}
