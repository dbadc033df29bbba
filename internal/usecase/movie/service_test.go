package movie

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mflix-lab/mflixd/internal/domain"
	dommovie "github.com/mflix-lab/mflixd/internal/domain/movie"
	"github.com/mflix-lab/mflixd/internal/domain/search/criteria"
	"github.com/mflix-lab/mflixd/internal/domain/search/filter"
)

func TestList_PassesCompiledCriteria(t *testing.T) {
	var gotExpr filter.Expression
	var gotSort filter.Sort
	var gotLimit, gotSkip int

	repo := &mockRepo{
		findFn: func(_ context.Context, expr filter.Expression, sort filter.Sort, limit, skip int) ([]dommovie.Movie, error) {
			gotExpr, gotSort, gotLimit, gotSkip = expr, sort, limit, skip
			return []dommovie.Movie{{Title: "The Matrix"}}, nil
		},
	}
	svc := New(repo)

	c := criteria.Parse(criteria.Raw{Year: "1999", SortBy: "year", SortOrder: "desc", Limit: "5"})
	movies, err := svc.List(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("got %d movies, want 1", len(movies))
	}
	if len(gotExpr.Clauses()) != 1 {
		t.Errorf("expression has %d clauses, want 1", len(gotExpr.Clauses()))
	}
	if gotSort.Field() != "year" || !gotSort.Descending() {
		t.Errorf("sort = (%q, desc=%v)", gotSort.Field(), gotSort.Descending())
	}
	if gotLimit != 5 || gotSkip != 0 {
		t.Errorf("pagination = (%d, %d), want (5, 0)", gotLimit, gotSkip)
	}
}

func TestList_GarbledParamsStillQuery(t *testing.T) {
	called := false
	repo := &mockRepo{
		findFn: func(_ context.Context, expr filter.Expression, _ filter.Sort, limit, skip int) ([]dommovie.Movie, error) {
			called = true
			if !expr.IsEmpty() {
				t.Errorf("expression has %d clauses, want 0", len(expr.Clauses()))
			}
			if limit != criteria.DefaultLimit || skip != 0 {
				t.Errorf("pagination = (%d, %d), want defaults", limit, skip)
			}
			return nil, nil
		},
	}
	svc := New(repo)

	c := criteria.Parse(criteria.Raw{Limit: "abc", Skip: "-3", Year: "not-a-year"})
	if _, err := svc.List(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("repository was not queried")
	}
}

func TestCreate_RequiresTitle(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.Create(context.Background(), dommovie.Input{Title: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestCreate_ReturnsStoredDocument(t *testing.T) {
	repo := &mockRepo{
		insertFn: func(_ context.Context, m dommovie.Movie) (string, error) {
			if m.Title != "Heat" {
				t.Errorf("inserted title = %q", m.Title)
			}
			return "60c72b2f9b1d8a5f0c8e4d2a", nil
		},
		findByIDFn: func(_ context.Context, id string) (dommovie.Movie, error) {
			if id != "60c72b2f9b1d8a5f0c8e4d2a" {
				t.Errorf("read back id = %q", id)
			}
			return dommovie.Movie{Title: "Heat"}, nil
		},
	}
	svc := New(repo)

	created, err := svc.Create(context.Background(), dommovie.Input{Title: "Heat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Heat" {
		t.Errorf("Title = %q", created.Title)
	}
}

func TestCreateBatch_EmptyRejected(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.CreateBatch(context.Background(), nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestCreateBatch_IndexInValidationMessage(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.CreateBatch(context.Background(), []dommovie.Input{
		{Title: "Alien"},
		{Title: ""},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "index 1") {
		t.Errorf("error = %q, want position of the invalid item", err)
	}
}

func TestCreateBatch_ReturnsInsertedIDs(t *testing.T) {
	repo := &mockRepo{
		insertManyFn: func(_ context.Context, movies []dommovie.Movie) ([]string, error) {
			if len(movies) != 2 {
				t.Errorf("inserting %d movies, want 2", len(movies))
			}
			return []string{"a1", "b2"}, nil
		},
	}
	svc := New(repo)

	res, err := svc.CreateBatch(context.Background(), []dommovie.Input{
		{Title: "Alien"},
		{Title: "Aliens"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.InsertedCount != 2 || len(res.InsertedIDs) != 2 {
		t.Errorf("result = %+v", res)
	}
}

func TestUpdate_EmptyPayloadRejected(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.Update(context.Background(), "60c72b2f9b1d8a5f0c8e4d2a", dommovie.Update{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestUpdate_NoMatchIsNotFound(t *testing.T) {
	repo := &mockRepo{
		updateFn: func(_ context.Context, _ string, _ dommovie.Update) (int64, error) {
			return 0, nil
		},
	}
	svc := New(repo)

	title := "Renamed"
	_, err := svc.Update(context.Background(), "60c72b2f9b1d8a5f0c8e4d2a", dommovie.Update{Title: &title})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdate_InvalidIDPropagates(t *testing.T) {
	repo := &mockRepo{
		updateFn: func(_ context.Context, _ string, _ dommovie.Update) (int64, error) {
			return 0, domain.ErrInvalidID
		},
	}
	svc := New(repo)

	title := "x"
	_, err := svc.Update(context.Background(), "nope", dommovie.Update{Title: &title})
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("error = %v, want ErrInvalidID", err)
	}
}

func TestUpdateBatch_RequiresFilterAndUpdate(t *testing.T) {
	svc := New(&mockRepo{})

	if _, err := svc.UpdateBatch(context.Background(), nil, map[string]any{"rated": "PG"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("nil filter: error = %v, want ErrValidation", err)
	}
	if _, err := svc.UpdateBatch(context.Background(), map[string]any{"year": 1980}, nil); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("nil update: error = %v, want ErrValidation", err)
	}
	if _, err := svc.UpdateBatch(context.Background(), map[string]any{"year": 1980}, map[string]any{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty update: error = %v, want ErrValidation", err)
	}
}

func TestUpdateBatch_ReturnsCounts(t *testing.T) {
	repo := &mockRepo{
		updateManyFn: func(_ context.Context, _, _ map[string]any) (int64, int64, error) {
			return 7, 5, nil
		},
	}
	svc := New(repo)

	res, err := svc.UpdateBatch(context.Background(),
		map[string]any{"year": 1980}, map[string]any{"rated": "PG"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MatchedCount != 7 || res.ModifiedCount != 5 {
		t.Errorf("result = %+v", res)
	}
}

func TestDelete_ZeroDeletedIsNotFound(t *testing.T) {
	repo := &mockRepo{
		deleteFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
	svc := New(repo)

	_, err := svc.Delete(context.Background(), "60c72b2f9b1d8a5f0c8e4d2a")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteBatch_EmptyFilterRejected(t *testing.T) {
	svc := New(&mockRepo{})

	if _, err := svc.DeleteBatch(context.Background(), nil); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("nil filter: error = %v, want ErrValidation", err)
	}
	if _, err := svc.DeleteBatch(context.Background(), map[string]any{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty filter: error = %v, want ErrValidation", err)
	}
}

func TestFindAndDelete_ReturnsDeletedDocument(t *testing.T) {
	repo := &mockRepo{
		findOneAndDeleteFn: func(_ context.Context, id string) (dommovie.Movie, error) {
			return dommovie.Movie{Title: "Doomed"}, nil
		},
	}
	svc := New(repo)

	m, err := svc.FindAndDelete(context.Background(), "60c72b2f9b1d8a5f0c8e4d2a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Title != "Doomed" {
		t.Errorf("Title = %q", m.Title)
	}
}
