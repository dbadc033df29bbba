// Package movie holds the movie document model persisted in the
// sample_mflix movies collection. Only title is required; the dataset
// leaves most other fields unset on plenty of documents, so everything
// else is optional and omitted from the wire format when absent.
package movie

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mflix-lab/mflixd/internal/domain"
)

// Imdb holds the nested IMDB rating block. The rating field backs the
// minRating/maxRating search bounds.
type Imdb struct {
	Rating float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Votes  int     `bson:"votes,omitempty" json:"votes,omitempty"`
	ID     int     `bson:"id,omitempty" json:"id,omitempty"`
}

// Awards holds the nested awards summary block.
type Awards struct {
	Wins        int    `bson:"wins,omitempty" json:"wins,omitempty"`
	Nominations int    `bson:"nominations,omitempty" json:"nominations,omitempty"`
	Text        string `bson:"text,omitempty" json:"text,omitempty"`
}

// Movie is a document in the movies collection.
type Movie struct {
	ID          bson.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string         `bson:"title" json:"title"`
	Year        *int           `bson:"year,omitempty" json:"year,omitempty"`
	Plot        string         `bson:"plot,omitempty" json:"plot,omitempty"`
	Fullplot    string         `bson:"fullplot,omitempty" json:"fullplot,omitempty"`
	Released    *bson.DateTime `bson:"released,omitempty" json:"released,omitempty"`
	Runtime     *int           `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Poster      string         `bson:"poster,omitempty" json:"poster,omitempty"`
	Genres      []string       `bson:"genres,omitempty" json:"genres,omitempty"`
	Directors   []string       `bson:"directors,omitempty" json:"directors,omitempty"`
	Writers     []string       `bson:"writers,omitempty" json:"writers,omitempty"`
	Cast        []string       `bson:"cast,omitempty" json:"cast,omitempty"`
	Countries   []string       `bson:"countries,omitempty" json:"countries,omitempty"`
	Languages   []string       `bson:"languages,omitempty" json:"languages,omitempty"`
	Rated       string         `bson:"rated,omitempty" json:"rated,omitempty"`
	Awards      *Awards        `bson:"awards,omitempty" json:"awards,omitempty"`
	Imdb        *Imdb          `bson:"imdb,omitempty" json:"imdb,omitempty"`
	Tomatoes    bson.M         `bson:"tomatoes,omitempty" json:"tomatoes,omitempty"`
	Metacritic  *int           `bson:"metacritic,omitempty" json:"metacritic,omitempty"`
	Type        string         `bson:"type,omitempty" json:"type,omitempty"`
	Lastupdated string         `bson:"lastupdated,omitempty" json:"lastupdated,omitempty"`
}

// Input is the create payload for a movie. It deliberately excludes _id
// and the dataset-maintained blocks (awards, imdb, tomatoes).
type Input struct {
	Title     string   `json:"title"`
	Year      *int     `json:"year,omitempty"`
	Plot      string   `json:"plot,omitempty"`
	Fullplot  string   `json:"fullplot,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Directors []string `json:"directors,omitempty"`
	Writers   []string `json:"writers,omitempty"`
	Cast      []string `json:"cast,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Rated     string   `json:"rated,omitempty"`
	Runtime   *int     `json:"runtime,omitempty"`
	Poster    string   `json:"poster,omitempty"`
}

// Validate checks the create payload. Title must be non-blank.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.NewValidation("Title is required")
	}
	return nil
}

// ToMovie builds a Movie from the create payload.
func (in Input) ToMovie() Movie {
	return Movie{
		Title:     in.Title,
		Year:      in.Year,
		Plot:      in.Plot,
		Fullplot:  in.Fullplot,
		Genres:    in.Genres,
		Directors: in.Directors,
		Writers:   in.Writers,
		Cast:      in.Cast,
		Countries: in.Countries,
		Languages: in.Languages,
		Rated:     in.Rated,
		Runtime:   in.Runtime,
		Poster:    in.Poster,
	}
}

// Update is a partial update payload. Nil fields are left untouched.
type Update struct {
	Title     *string   `json:"title,omitempty"`
	Year      *int      `json:"year,omitempty"`
	Plot      *string   `json:"plot,omitempty"`
	Fullplot  *string   `json:"fullplot,omitempty"`
	Genres    *[]string `json:"genres,omitempty"`
	Directors *[]string `json:"directors,omitempty"`
	Writers   *[]string `json:"writers,omitempty"`
	Cast      *[]string `json:"cast,omitempty"`
	Countries *[]string `json:"countries,omitempty"`
	Languages *[]string `json:"languages,omitempty"`
	Rated     *string   `json:"rated,omitempty"`
	Runtime   *int      `json:"runtime,omitempty"`
	Poster    *string   `json:"poster,omitempty"`
}

// Fields returns the set fields keyed by their stored names, ready for a
// $set-style update. Empty when no field was provided.
func (u Update) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Year != nil {
		fields["year"] = *u.Year
	}
	if u.Plot != nil {
		fields["plot"] = *u.Plot
	}
	if u.Fullplot != nil {
		fields["fullplot"] = *u.Fullplot
	}
	if u.Genres != nil {
		fields["genres"] = *u.Genres
	}
	if u.Directors != nil {
		fields["directors"] = *u.Directors
	}
	if u.Writers != nil {
		fields["writers"] = *u.Writers
	}
	if u.Cast != nil {
		fields["cast"] = *u.Cast
	}
	if u.Countries != nil {
		fields["countries"] = *u.Countries
	}
	if u.Languages != nil {
		fields["languages"] = *u.Languages
	}
	if u.Rated != nil {
		fields["rated"] = *u.Rated
	}
	if u.Runtime != nil {
		fields["runtime"] = *u.Runtime
	}
	if u.Poster != nil {
		fields["poster"] = *u.Poster
	}
	return fields
}

// IsEmpty reports whether the update sets no fields.
func (u Update) IsEmpty() bool {
	return len(u.Fields()) == 0
}
