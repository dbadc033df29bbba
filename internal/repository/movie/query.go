package movie

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mflix-lab/mflixd/internal/domain/search/filter"
)

// Queryable field names. fieldPlot/fieldTitle/fieldFullplot also define
// the text index; changing one side of that contract requires the other.
const (
	fieldTitle    = "title"
	fieldPlot     = "plot"
	fieldFullplot = "fullplot"
	fieldGenres   = "genres"
	fieldYear     = "year"
	fieldRating   = "imdb.rating"
)

// compileFilter translates a filter expression into a driver filter
// document. Zero clauses yields an empty document, matching everything.
func compileFilter(expr filter.Expression) bson.D {
	q := bson.D{}
	for _, c := range expr.Clauses() {
		switch c.Kind() {
		case filter.KindText:
			q = append(q, bson.E{Key: "$text", Value: bson.D{
				{Key: "$search", Value: c.Text()},
			}})
		case filter.KindGenre:
			q = append(q, bson.E{Key: fieldGenres, Value: bson.D{
				{Key: "$regex", Value: c.Genre()},
				{Key: "$options", Value: "i"},
			}})
		case filter.KindYear:
			q = append(q, bson.E{Key: fieldYear, Value: c.Year()})
		case filter.KindRating:
			rng := bson.D{}
			if lo := c.MinRating(); lo != nil {
				rng = append(rng, bson.E{Key: "$gte", Value: *lo})
			}
			if hi := c.MaxRating(); hi != nil {
				rng = append(rng, bson.E{Key: "$lte", Value: *hi})
			}
			q = append(q, bson.E{Key: fieldRating, Value: rng})
		}
	}
	return q
}

// compileSort translates the sort specification into a driver sort
// document: 1 ascending, -1 descending.
func compileSort(s filter.Sort) bson.D {
	order := 1
	if s.Descending() {
		order = -1
	}
	return bson.D{{Key: s.Field(), Value: order}}
}
