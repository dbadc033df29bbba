// Package criteria turns raw, string-typed search parameters into a
// validated search description. Parsing is total: malformed numeric
// input falls back to the documented default instead of failing, so a
// listing request never breaks on garbled parameters.
package criteria

import (
	"strconv"
	"strings"

	"github.com/mflix-lab/mflixd/internal/domain/search/filter"
)

// Pagination and sort defaults.
const (
	DefaultLimit     = 20
	MinLimit         = 1
	MaxLimit         = 100
	DefaultSkip      = 0
	DefaultSortField = "title"
)

// Raw holds the optional search parameters exactly as the transport
// received them. Every field may be empty.
type Raw struct {
	Q         string
	Genre     string
	Year      string
	MinRating string
	MaxRating string
	Limit     string
	Skip      string
	SortBy    string
	SortOrder string
}

// Criteria is a normalized, immutable search description for one request.
type Criteria struct {
	query      string
	genre      string
	year       *int
	minRating  *float64
	maxRating  *float64
	limit      int
	skip       int
	sortBy     string
	descending bool
}

// Parse normalizes raw parameters into Criteria. It never fails:
// unparseable numbers become defaults, out-of-range values are clamped.
func Parse(raw Raw) Criteria {
	return Criteria{
		query:      strings.TrimSpace(raw.Q),
		genre:      strings.TrimSpace(raw.Genre),
		year:       parseIntOpt(raw.Year),
		minRating:  parseFloatOpt(raw.MinRating),
		maxRating:  parseFloatOpt(raw.MaxRating),
		limit:      parseLimit(raw.Limit),
		skip:       parseSkip(raw.Skip),
		sortBy:     parseSortField(raw.SortBy),
		descending: strings.EqualFold(strings.TrimSpace(raw.SortOrder), "desc"),
	}
}

// parseLimit resolves the page size: default on absent or unparseable
// input, then clamped into [MinLimit, MaxLimit].
func parseLimit(s string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		limit = DefaultLimit
	}
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit
}

// parseSkip resolves the pagination offset: default on absent or
// unparseable input, negative parsed values clamp to zero.
func parseSkip(s string) int {
	skip, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultSkip
	}
	if skip < 0 {
		return 0
	}
	return skip
}

func parseSortField(s string) string {
	field := strings.TrimSpace(s)
	if field == "" {
		return DefaultSortField
	}
	return field
}

func parseIntOpt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatOpt(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

// Compile builds the filter conjunction and sort specification for this
// criteria. Pure: no I/O, no mutation, same output for the same input.
func (c Criteria) Compile() (filter.Expression, filter.Sort) {
	var clauses []filter.Clause
	if c.query != "" {
		clauses = append(clauses, filter.NewTextSearch(c.query))
	}
	if c.genre != "" {
		clauses = append(clauses, filter.NewGenreSubstring(c.genre))
	}
	if c.year != nil {
		clauses = append(clauses, filter.NewYearEquals(*c.year))
	}
	if c.minRating != nil || c.maxRating != nil {
		// Both-nil misuse is impossible here, so the error cannot fire.
		if clause, err := filter.NewRatingRange(c.minRating, c.maxRating); err == nil {
			clauses = append(clauses, clause)
		}
	}
	return filter.NewExpression(clauses...), filter.NewSort(c.sortBy, c.descending)
}

// Query returns the free-text search query, empty when absent.
func (c Criteria) Query() string { return c.query }

// Genre returns the genre substring, empty when absent.
func (c Criteria) Genre() string { return c.genre }

// Year returns the exact-year filter, nil when absent.
func (c Criteria) Year() *int { return c.year }

// MinRating returns the inclusive lower rating bound, nil when absent.
func (c Criteria) MinRating() *float64 { return c.minRating }

// MaxRating returns the inclusive upper rating bound, nil when absent.
func (c Criteria) MaxRating() *float64 { return c.maxRating }

// Limit returns the clamped page size, always in [MinLimit, MaxLimit].
func (c Criteria) Limit() int { return c.limit }

// Skip returns the clamped pagination offset, never negative.
func (c Criteria) Skip() int { return c.skip }

// SortBy returns the sort field.
func (c Criteria) SortBy() string { return c.sortBy }

// Descending reports whether the sort direction is descending.
func (c Criteria) Descending() bool { return c.descending }
