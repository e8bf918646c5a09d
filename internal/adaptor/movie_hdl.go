package adaptor

import (
	"net/http"
	"strings"

	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

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

// GetAllMovies handles GET /api/Movies/GetAllMovies
func (h *MovieHandler) GetAllMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetAllMovies(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMoviesWithGenres handles GET /api/Movies/GetMoviesWithGenres
func (h *MovieHandler) GetMoviesWithGenres(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMoviesWithGenres(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get movies with genres")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetActiveMovies handles GET /api/Movies/GetActiveMovies
func (h *MovieHandler) GetActiveMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetActiveMovies(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get active movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetActiveMoviesByGenre handles GET /api/Movies/GetActiveMoviesByGenre/{genreId}
func (h *MovieHandler) GetActiveMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	genreID, ok := pathID(w, r, "genreId")
	if !ok {
		return
	}

	movies, err := h.service.GetActiveMoviesByGenre(r.Context(), genreID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get active movies by genre")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMovieByID handles GET /api/Movies/GetMovieById/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// GetMovieByTitle handles GET /api/Movies/GetMovieByTitle/{title}
func (h *MovieHandler) GetMovieByTitle(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByTitle(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		handleServiceError(h.log, w, r, err, "get movie by title")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// SearchMovieByTitle handles GET /api/Movies/SearchMovieByTitle/{title}
func (h *MovieHandler) SearchMovieByTitle(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.SearchMovieByTitle(r.Context(), strings.TrimSpace(chi.URLParam(r, "title")))
	if err != nil {
		handleServiceError(h.log, w, r, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// AddMovie handles POST /api/Movies/AddMovie (admin only)
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovieByID handles PUT /api/Movies/UpdateMovieById/{id} (admin only)
func (h *MovieHandler) UpdateMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.MovieRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateMovieByID(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, r, err, "update movie")
		return
	}

	utils.ResponseNoContent(w)
}

// UpdateMovieByTitle handles PUT /api/Movies/UpdateMovieByTitle/{title} (admin only)
func (h *MovieHandler) UpdateMovieByTitle(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateMovieByTitle(r.Context(), chi.URLParam(r, "title"), &req); err != nil {
		handleServiceError(h.log, w, r, err, "update movie by title")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteMovieByID handles DELETE /api/Movies/DeleteMovieById/{id} (admin only)
func (h *MovieHandler) DeleteMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteMovieByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete movie")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteMovieByTitle handles DELETE /api/Movies/DeleteMovieByTitle/{title} (admin only)
func (h *MovieHandler) DeleteMovieByTitle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovieByTitle(r.Context(), chi.URLParam(r, "title")); err != nil {
		handleServiceError(h.log, w, r, err, "delete movie by title")
		return
	}

	utils.ResponseNoContent(w)
}
