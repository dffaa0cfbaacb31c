package adaptor

import (
	"errors"
	"io"
	"net/http"

	"movies-api/internal/data/repository"
	"movies-api/internal/schema"
	"movies-api/internal/usecase"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies, optionally filtered by ?genre=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	var genre *string
	if g := r.URL.Query().Get("genre"); g != "" {
		genre = &g
	}

	movies, err := h.service.GetMovies(r.Context(), genre)
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	movie, err := schema.ValidateMovie(body)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	created, err := h.service.CreateMovie(r.Context(), movie)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, created)
}

// UpdateMovie handles PATCH /movies/{id}. The body is validated before the
// movie is looked up.
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	patch, err := schema.ValidatePartialMovie(body)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, patch)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseMessage(w, "Movie deleted")
}

// readBody reads the request body. An unreadable or oversized body is
// answered as a validation failure.
func (h *MovieHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.log.Warn("Failed to read request body", zap.Error(err))

		message := "Invalid request body"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			message = "Request body too large"
		}
		utils.ResponseBadRequest(w, []utils.FieldError{{Field: "body", Message: message}})
		return nil, false
	}
	return body, true
}

// handleServiceError handles errors untuk movie operations
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *utils.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, validationErr.Errors)

	case errors.Is(err, repository.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Movie not found")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
