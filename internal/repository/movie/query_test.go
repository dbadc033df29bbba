package movie

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mflix-lab/mflixd/internal/domain/search/criteria"
	"github.com/mflix-lab/mflixd/internal/domain/search/filter"
)

func TestCompileFilter_Empty(t *testing.T) {
	q := compileFilter(filter.NewExpression())
	if len(q) != 0 {
		t.Errorf("empty expression compiled to %v, want empty document", q)
	}
}

func TestCompileFilter_TextSearch(t *testing.T) {
	q := compileFilter(filter.NewExpression(filter.NewTextSearch("space opera")))

	want := bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: "space opera"}}}}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("compiled = %v, want %v", q, want)
	}
}

func TestCompileFilter_GenreCaseInsensitive(t *testing.T) {
	q := compileFilter(filter.NewExpression(filter.NewGenreSubstring("ACTION")))

	want := bson.D{{Key: "genres", Value: bson.D{
		{Key: "$regex", Value: "ACTION"},
		{Key: "$options", Value: "i"},
	}}}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("compiled = %v, want %v", q, want)
	}
}

func TestCompileFilter_RatingRangeInclusive(t *testing.T) {
	lo, hi := 7.0, 9.0
	clause, err := filter.NewRatingRange(&lo, &hi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := compileFilter(filter.NewExpression(clause))
	want := bson.D{{Key: "imdb.rating", Value: bson.D{
		{Key: "$gte", Value: 7.0},
		{Key: "$lte", Value: 9.0},
	}}}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("compiled = %v, want %v", q, want)
	}
}

func TestCompileFilter_OpenEndedRating(t *testing.T) {
	lo := 8.0
	clause, err := filter.NewRatingRange(&lo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := compileFilter(filter.NewExpression(clause))
	want := bson.D{{Key: "imdb.rating", Value: bson.D{{Key: "$gte", Value: 8.0}}}}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("compiled = %v, want %v", q, want)
	}
}

func TestCompileSort(t *testing.T) {
	tests := []struct {
		name string
		sort filter.Sort
		want bson.D
	}{
		{"ascending", filter.NewSort("title", false), bson.D{{Key: "title", Value: 1}}},
		{"descending", filter.NewSort("year", true), bson.D{{Key: "year", Value: -1}}},
		{"nested field", filter.NewSort("imdb.rating", true), bson.D{{Key: "imdb.rating", Value: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compileSort(tt.sort); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("compileSort() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompile_YearDescendingScenario(t *testing.T) {
	c := criteria.Parse(criteria.Raw{Year: "1999", SortBy: "year", SortOrder: "desc", Limit: "5"})
	expr, sort := c.Compile()

	wantFilter := bson.D{{Key: "year", Value: 1999}}
	if got := compileFilter(expr); !reflect.DeepEqual(got, wantFilter) {
		t.Errorf("filter = %v, want %v", got, wantFilter)
	}

	wantSort := bson.D{{Key: "year", Value: -1}}
	if got := compileSort(sort); !reflect.DeepEqual(got, wantSort) {
		t.Errorf("sort = %v, want %v", got, wantSort)
	}
}

func TestTextIndexCoversQueryFields(t *testing.T) {
	// The text clause depends on the index spanning exactly these fields.
	want := bson.D{
		{Key: "plot", Value: "text"},
		{Key: "title", Value: "text"},
		{Key: "fullplot", Value: "text"},
	}
	if !reflect.DeepEqual(textIndexKeys, want) {
		t.Errorf("textIndexKeys = %v, want %v", textIndexKeys, want)
	}
	if TextIndexName != "text_search_index" {
		t.Errorf("TextIndexName = %q", TextIndexName)
	}
}
