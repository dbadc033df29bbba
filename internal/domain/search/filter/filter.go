// Package filter describes which movies a search matches, independent of
// the storage engine. An Expression is an ordered conjunction of clauses;
// the repository layer translates it verbatim into a driver query.
package filter

import "fmt"

// Kind identifies the type of a filter clause.
type Kind int

// Clause kinds.
const (
	// KindText is a full-text search over the title/plot/fullplot text index.
	KindText Kind = iota
	// KindGenre is a case-insensitive, unanchored substring match on the genre list.
	KindGenre
	// KindYear is an exact-equality match on the release year.
	KindYear
	// KindRating is an inclusive range on the IMDB rating.
	KindRating
)

// Clause is a single predicate in a filter conjunction.
type Clause struct {
	kind      Kind
	text      string
	genre     string
	year      int
	minRating *float64
	maxRating *float64
}

// NewTextSearch creates a full-text search clause. The query is handed to
// the storage engine's text index as-is; no tokenization happens here.
func NewTextSearch(query string) Clause {
	return Clause{kind: KindText, text: query}
}

// NewGenreSubstring creates a genre substring-match clause.
func NewGenreSubstring(genre string) Clause {
	return Clause{kind: KindGenre, genre: genre}
}

// NewYearEquals creates an exact-year clause.
func NewYearEquals(year int) Clause {
	return Clause{kind: KindYear, year: year}
}

// NewRatingRange creates an inclusive rating-range clause. Either bound
// alone is a valid open-ended range; both absent is an error.
func NewRatingRange(minRating, maxRating *float64) (Clause, error) {
	if minRating == nil && maxRating == nil {
		return Clause{}, fmt.Errorf("at least one rating bound is required")
	}
	return Clause{kind: KindRating, minRating: minRating, maxRating: maxRating}, nil
}

// Kind returns the clause type.
func (c Clause) Kind() Kind { return c.kind }

// Text returns the full-text query.
func (c Clause) Text() string { return c.text }

// Genre returns the genre substring.
func (c Clause) Genre() string { return c.genre }

// Year returns the exact year.
func (c Clause) Year() int { return c.year }

// MinRating returns the inclusive lower rating bound, nil when open.
func (c Clause) MinRating() *float64 { return c.minRating }

// MaxRating returns the inclusive upper rating bound, nil when open.
func (c Clause) MaxRating() *float64 { return c.maxRating }

// Expression is an immutable conjunction of clauses. All clauses must
// hold; zero clauses matches every document.
type Expression struct {
	clauses []Clause
}

// NewExpression creates a filter expression from the given clauses.
func NewExpression(clauses ...Clause) Expression {
	return Expression{clauses: clauses}
}

// Clauses returns the clauses in construction order.
func (e Expression) Clauses() []Clause { return e.clauses }

// IsEmpty reports whether the expression matches every document.
func (e Expression) IsEmpty() bool { return len(e.clauses) == 0 }

// Sort is a single (field, direction) sort specification. Multi-field
// sorting is not supported.
type Sort struct {
	field      string
	descending bool
}

// NewSort creates a sort specification.
func NewSort(field string, descending bool) Sort {
	return Sort{field: field, descending: descending}
}

// Field returns the sort field name.
func (s Sort) Field() string { return s.field }

// Descending reports whether the sort direction is descending.
func (s Sort) Descending() bool { return s.descending }
