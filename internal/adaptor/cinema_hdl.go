package adaptor

import (
	"net/http"

	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// GetAllCinemas handles GET /api/Cinemas/GetAllCinemas
func (h *CinemaHandler) GetAllCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.service.GetAllCinemas(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get cinemas")
		return
	}

	utils.ResponseSuccess(w, "Cinemas retrieved successfully", cinemas)
}

// GetCinemaByID handles GET /api/Cinemas/GetCinemaById/{id}
func (h *CinemaHandler) GetCinemaByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	cinema, err := h.service.GetCinemaByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get cinema")
		return
	}

	utils.ResponseSuccess(w, "Cinema retrieved successfully", cinema)
}

// GetCinemasByMovieID handles GET /api/Cinemas/GetCinemasByMovieId/{movieId}
func (h *CinemaHandler) GetCinemasByMovieID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "movieId")
	if !ok {
		return
	}

	cinemas, err := h.service.GetCinemasByMovieID(r.Context(), movieID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get cinemas by movie")
		return
	}

	utils.ResponseSuccess(w, "Cinemas retrieved successfully", cinemas)
}

// AddCinema handles POST /api/Cinemas/AddCinema (admin only)
func (h *CinemaHandler) AddCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, "Cinema created successfully", cinema)
}

// UpdateCinemaByID handles PUT /api/Cinemas/UpdateCinemaById/{id} (admin only)
func (h *CinemaHandler) UpdateCinemaByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.CinemaRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateCinemaByID(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, r, err, "update cinema")
		return
	}

	utils.ResponseNoContent(w)
}

// UpdateCinemaByName handles PUT /api/Cinemas/UpdateCinemaByName/{name} (admin only)
func (h *CinemaHandler) UpdateCinemaByName(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateCinemaByName(r.Context(), chi.URLParam(r, "name"), &req); err != nil {
		handleServiceError(h.log, w, r, err, "update cinema by name")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteCinemaByID handles DELETE /api/Cinemas/DeleteCinemaById/{id} (admin only)
func (h *CinemaHandler) DeleteCinemaByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCinemaByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete cinema")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteCinemaByName handles DELETE /api/Cinemas/DeleteCinemaByName/{name} (admin only)
func (h *CinemaHandler) DeleteCinemaByName(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCinemaByName(r.Context(), chi.URLParam(r, "name")); err != nil {
		handleServiceError(h.log, w, r, err, "delete cinema by name")
		return
	}

	utils.ResponseNoContent(w)
}
