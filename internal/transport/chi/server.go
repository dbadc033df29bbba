// Package chi wires the movie API onto a chi router: request decoding,
// the response envelope, and mapping domain errors to HTTP statuses.
package chi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mflix-lab/mflixd/internal/domain"
	dommovie "github.com/mflix-lab/mflixd/internal/domain/movie"
	"github.com/mflix-lab/mflixd/internal/domain/search/criteria"
	healthuc "github.com/mflix-lab/mflixd/internal/usecase/health"
	movieuc "github.com/mflix-lab/mflixd/internal/usecase/movie"
)

// Server holds the HTTP handlers for the movie API.
type Server struct {
	movies        *movieuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(movies *movieuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		movies: movies,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrInvalidID, http.StatusBadRequest, codeInvalidID),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", s.ListMovies)
		r.Post("/", s.CreateMovie)
		r.Post("/batch", s.CreateMoviesBatch)
		r.Patch("/", s.UpdateMoviesBatch)
		r.Delete("/", s.DeleteMoviesBatch)

		r.Get("/{id}", s.GetMovie)
		r.Put("/{id}", s.UpdateMovie)
		r.Delete("/{id}", s.DeleteMovie)
		r.Delete("/{id}/find-and-delete", s.FindAndDeleteMovie)
	})

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListMovies handles GET /api/movies. Malformed query parameters fall
// back to defaults instead of failing the request.
func (s *Server) ListMovies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := criteria.Raw{
		Q:         q.Get("q"),
		Genre:     q.Get("genre"),
		Year:      q.Get("year"),
		MinRating: q.Get("minRating"),
		MaxRating: q.Get("maxRating"),
		Limit:     q.Get("limit"),
		Skip:      q.Get("skip"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	movies, err := s.movies.List(r.Context(), criteria.Parse(raw))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, fmt.Sprintf("Found %d movies", len(movies)), movies)
}

// GetMovie handles GET /api/movies/{id}.
func (s *Server) GetMovie(w http.ResponseWriter, r *http.Request) {
	m, err := s.movies.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Movie retrieved successfully", m)
}

// CreateMovie handles POST /api/movies.
func (s *Server) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var in dommovie.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	m, err := s.movies.Create(r.Context(), in)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Movie created successfully", m)
}

// CreateMoviesBatch handles POST /api/movies/batch.
func (s *Server) CreateMoviesBatch(w http.ResponseWriter, r *http.Request) {
	var inputs []dommovie.Input
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.movies.CreateBatch(r.Context(), inputs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated,
		fmt.Sprintf("%d movies created successfully", res.InsertedCount), res)
}

// UpdateMovie handles PUT /api/movies/{id}.
func (s *Server) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var u dommovie.Update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	m, err := s.movies.Update(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Movie updated successfully", m)
}

// batchUpdateRequest is the PATCH /api/movies body.
type batchUpdateRequest struct {
	Filter map[string]any `json:"filter"`
	Update map[string]any `json:"update"`
}

// UpdateMoviesBatch handles PATCH /api/movies.
func (s *Server) UpdateMoviesBatch(w http.ResponseWriter, r *http.Request) {
	var req batchUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.movies.UpdateBatch(r.Context(), req.Filter, req.Update)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK,
		fmt.Sprintf("%d movies updated successfully", res.ModifiedCount), res)
}

// DeleteMovie handles DELETE /api/movies/{id}.
func (s *Server) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.movies.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Movie deleted successfully",
		map[string]int64{"deletedCount": deleted})
}

// batchDeleteRequest is the DELETE /api/movies body.
type batchDeleteRequest struct {
	Filter map[string]any `json:"filter"`
}

// DeleteMoviesBatch handles DELETE /api/movies.
func (s *Server) DeleteMoviesBatch(w http.ResponseWriter, r *http.Request) {
	var req batchDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	deleted, err := s.movies.DeleteBatch(r.Context(), req.Filter)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK,
		fmt.Sprintf("%d movies deleted successfully", deleted),
		map[string]int64{"deletedCount": deleted})
}

// FindAndDeleteMovie handles DELETE /api/movies/{id}/find-and-delete.
func (s *Server) FindAndDeleteMovie(w http.ResponseWriter, r *http.Request) {
	m, err := s.movies.FindAndDelete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Movie found and deleted successfully", m)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			s.logger.Warn("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
