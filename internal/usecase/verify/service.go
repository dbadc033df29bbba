// Package verify runs the one-shot startup check of the movies
// collection: confirm it has data and make sure the text-search index
// exists. Nothing in here is ever fatal — a demo deployment against an
// empty or half-provisioned database must still be able to start, so
// every failure path is logged and swallowed at the Run boundary.
package verify

import (
	"context"

	"go.uber.org/zap"
)

const sampleDataURL = "https://www.mongodb.com/docs/atlas/sample-data/"

// IndexState is the outcome of the text-index check.
type IndexState string

// Text-index outcomes.
const (
	// IndexPresent means the index already existed under its fixed name.
	IndexPresent IndexState = "present"
	// IndexCreated means the index was created by this run.
	IndexCreated IndexState = "created"
	// IndexFailed means listing or creating the index failed.
	IndexFailed IndexState = "failed"
)

// Result is the transient outcome of one verification run. It only
// feeds log output; the durable effect is the index itself.
type Result struct {
	DocumentCount int64
	IndexState    IndexState
}

// Collection is the storage contract the verifier needs.
type Collection interface {
	EstimatedCount(ctx context.Context) (int64, error)
	TextIndexExists(ctx context.Context) (bool, error)
	CreateTextIndex(ctx context.Context) error
}

// Service performs the startup verification.
type Service struct {
	movies Collection
	logger *zap.Logger
}

// New creates a verification service.
func New(movies Collection, logger *zap.Logger) *Service {
	return &Service{movies: movies, logger: logger}
}

// Run executes the verification sequence once. It never returns an
// error and never panics: failures inside are converted to log entries.
func (s *Service) Run(ctx context.Context) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("database verification panicked", zap.Any("panic", r))
			res.IndexState = IndexFailed
		}
	}()

	s.logger.Info("starting database verification")

	res.DocumentCount = s.checkDocumentCount(ctx)
	res.IndexState = s.ensureTextIndex(ctx)

	s.logger.Info("database verification completed",
		zap.Int64("documents", res.DocumentCount),
		zap.String("text_index", string(res.IndexState)),
	)
	return res
}

// checkDocumentCount reads an approximate count and warns on an empty
// collection. A read failure is logged and reported as zero.
func (s *Service) checkDocumentCount(ctx context.Context) int64 {
	count, err := s.movies.EstimatedCount(ctx)
	if err != nil {
		s.logger.Error("could not count movies", zap.Error(err))
		return 0
	}

	s.logger.Info("movies collection found", zap.Int64("documents", count))
	if count == 0 {
		s.logger.Warn("movies collection is empty; load the sample_mflix dataset",
			zap.String("instructions", sampleDataURL))
	}
	return count
}

// ensureTextIndex makes the text-search index exist under its fixed
// name. Repeated runs are no-ops once the index is there.
func (s *Service) ensureTextIndex(ctx context.Context) IndexState {
	exists, err := s.movies.TextIndexExists(ctx)
	if err != nil {
		s.logger.Error("could not inspect indexes", zap.Error(err))
		s.logger.Warn("full-text search may not work without the text index")
		return IndexFailed
	}

	if exists {
		s.logger.Info("text search index verified")
		return IndexPresent
	}

	if err := s.movies.CreateTextIndex(ctx); err != nil {
		s.logger.Error("could not create text search index", zap.Error(err))
		s.logger.Warn("full-text search may not work without the text index")
		return IndexFailed
	}

	s.logger.Info("text search index created")
	return IndexCreated
}
