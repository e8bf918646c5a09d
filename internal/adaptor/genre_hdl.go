package adaptor

import (
	"net/http"

	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

func (h *GenreHandler) GetAllGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetAllGenres(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

func (h *GenreHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	genre, err := h.service.GetGenreByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get genre")
		return
	}

	utils.ResponseSuccess(w, "Genre retrieved successfully", genre)
}

func (h *GenreHandler) GetGenreByName(w http.ResponseWriter, r *http.Request) {
	genre, err := h.service.GetGenreByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		handleServiceError(h.log, w, r, err, "get genre by name")
		return
	}

	utils.ResponseSuccess(w, "Genre retrieved successfully", genre)
}

func (h *GenreHandler) AddGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "Genre created successfully", genre)
}

func (h *GenreHandler) UpdateGenreByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.GenreRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateGenreByID(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, r, err, "update genre")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *GenreHandler) UpdateGenreByName(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateGenreByName(r.Context(), chi.URLParam(r, "name"), &req); err != nil {
		handleServiceError(h.log, w, r, err, "update genre by name")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *GenreHandler) DeleteGenreByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteGenreByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete genre")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *GenreHandler) DeleteGenreByName(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGenreByName(r.Context(), chi.URLParam(r, "name")); err != nil {
		handleServiceError(h.log, w, r, err, "delete genre by name")
		return
	}

	utils.ResponseNoContent(w)
}
