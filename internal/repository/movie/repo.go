// Package movie implements the movies collection repository on top of
// the MongoDB driver. It is the only package that translates domain
// filter expressions into driver queries, keeping the field names here
// in lockstep with the text index definition below.
package movie

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mflix-lab/mflixd/internal/domain"
	dommovie "github.com/mflix-lab/mflixd/internal/domain/movie"
	"github.com/mflix-lab/mflixd/internal/domain/search/filter"
)

const (
	// CollectionName is the fixed movies collection of sample_mflix.
	CollectionName = "movies"
	// TextIndexName is the well-known name of the compound text index.
	// Stable across restarts; operator tooling matches on it.
	TextIndexName = "text_search_index"
)

// textIndexKeys spans the three fields served by $text search. The query
// compiler's text clause relies on exactly this definition.
var textIndexKeys = bson.D{
	{Key: fieldPlot, Value: "text"},
	{Key: fieldTitle, Value: "text"},
	{Key: fieldFullplot, Value: "text"},
}

// Repo provides movies collection access.
type Repo struct {
	coll *mongo.Collection
}

// New creates a movies repository on the given database.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(CollectionName)}
}

// Find returns movies matching the filter, sorted and paginated.
func (r *Repo) Find(
	ctx context.Context, expr filter.Expression, sort filter.Sort, limit, skip int,
) ([]dommovie.Movie, error) {
	opts := options.Find().
		SetSort(compileSort(sort)).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, compileFilter(expr), opts)
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}

	movies := make([]dommovie.Movie, 0, limit)
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

// FindByID returns a single movie by hex ObjectID.
func (r *Repo) FindByID(ctx context.Context, id string) (dommovie.Movie, error) {
	oid, err := parseID(id)
	if err != nil {
		return dommovie.Movie{}, err
	}

	var m dommovie.Movie
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dommovie.Movie{}, fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
		}
		return dommovie.Movie{}, fmt.Errorf("find movie: %w", err)
	}
	return m, nil
}

// Insert stores a movie and returns the inserted hex ID.
func (r *Repo) Insert(ctx context.Context, m dommovie.Movie) (string, error) {
	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return "", fmt.Errorf("insert movie: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// InsertMany stores a batch of movies and returns the inserted hex IDs
// in input order.
func (r *Repo) InsertMany(ctx context.Context, movies []dommovie.Movie) ([]string, error) {
	docs := make([]any, len(movies))
	for i, m := range movies {
		docs[i] = m
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("insert movies: %w", err)
	}

	ids := make([]string, 0, len(res.InsertedIDs))
	for _, raw := range res.InsertedIDs {
		oid, ok := raw.(bson.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type %T", raw)
		}
		ids = append(ids, oid.Hex())
	}
	return ids, nil
}

// Update applies a $set of the given fields to one movie. Returns the
// matched count (zero when the movie does not exist).
func (r *Repo) Update(ctx context.Context, id string, u dommovie.Update) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.M{"$set": u.Fields()},
	)
	if err != nil {
		return 0, fmt.Errorf("update movie: %w", err)
	}
	return res.MatchedCount, nil
}

// UpdateMany applies a $set update to every movie matching the raw
// filter, passed through verbatim.
func (r *Repo) UpdateMany(
	ctx context.Context, rawFilter, rawUpdate map[string]any,
) (matched, modified int64, err error) {
	res, err := r.coll.UpdateMany(ctx, bson.M(rawFilter), bson.M{"$set": bson.M(rawUpdate)})
	if err != nil {
		return 0, 0, fmt.Errorf("update movies: %w", err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Delete removes one movie by ID and returns the deleted count.
func (r *Repo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("delete movie: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteMany removes every movie matching the raw filter.
func (r *Repo) DeleteMany(ctx context.Context, rawFilter map[string]any) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M(rawFilter))
	if err != nil {
		return 0, fmt.Errorf("delete movies: %w", err)
	}
	return res.DeletedCount, nil
}

// FindOneAndDelete atomically removes a movie and returns it.
func (r *Repo) FindOneAndDelete(ctx context.Context, id string) (dommovie.Movie, error) {
	oid, err := parseID(id)
	if err != nil {
		return dommovie.Movie{}, err
	}

	var m dommovie.Movie
	if err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dommovie.Movie{}, fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
		}
		return dommovie.Movie{}, fmt.Errorf("find and delete movie: %w", err)
	}
	return m, nil
}

// EstimatedCount returns a fast, approximate document count. Used by the
// startup check where exactness does not matter.
func (r *Repo) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("estimated count: %w", err)
	}
	return count, nil
}

// TextIndexExists reports whether the named text index is present.
func (r *Repo) TextIndexExists(ctx context.Context) (bool, error) {
	cur, err := r.coll.Indexes().List(ctx)
	if err != nil {
		return false, fmt.Errorf("list indexes: %w", err)
	}

	var specs []struct {
		Name string `bson:"name"`
	}
	if err := cur.All(ctx, &specs); err != nil {
		return false, fmt.Errorf("decode indexes: %w", err)
	}

	for _, spec := range specs {
		if spec.Name == TextIndexName {
			return true, nil
		}
	}
	return false, nil
}

// CreateTextIndex creates the compound text index under its fixed name.
// The server treats a creation request for an identical existing index
// as a no-op, so calling this on every startup is safe. Index builds on
// MongoDB 4.2+ never hold a collection-wide lock.
func (r *Repo) CreateTextIndex(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    textIndexKeys,
		Options: options.Index().SetName(TextIndexName),
	})
	if err != nil {
		return fmt.Errorf("create text index: %w", err)
	}
	return nil
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("id %q: %w", id, domain.ErrInvalidID)
	}
	return oid, nil
}
