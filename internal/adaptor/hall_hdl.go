package adaptor

import (
	"net/http"

	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

func (h *HallHandler) GetAllHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetAllHalls(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get halls")
		return
	}

	utils.ResponseSuccess(w, "Halls retrieved successfully", halls)
}

// GetHallByID returns the hall with its seat map.
func (h *HallHandler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	hall, err := h.service.GetHallByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get hall")
		return
	}

	utils.ResponseSuccess(w, "Hall retrieved successfully", hall)
}

func (h *HallHandler) GetHallsByCinemaID(w http.ResponseWriter, r *http.Request) {
	cinemaID, ok := pathID(w, r, "cinemaId")
	if !ok {
		return
	}

	halls, err := h.service.GetHallsByCinemaID(r.Context(), cinemaID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get halls by cinema")
		return
	}

	utils.ResponseSuccess(w, "Halls retrieved successfully", halls)
}

func (h *HallHandler) GetHallIDByShowtimeID(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathID(w, r, "showtimeId")
	if !ok {
		return
	}

	hallID, err := h.service.GetHallIDByShowtimeID(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get hall id by showtime")
		return
	}

	utils.ResponseSuccess(w, "Hall id retrieved successfully", hallID)
}

func (h *HallHandler) AddHall(w http.ResponseWriter, r *http.Request) {
	var req request.HallRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	hall, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "Hall created successfully", hall)
}

func (h *HallHandler) UpdateHallByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.HallRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateHallByID(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, r, err, "update hall")
		return
	}

	utils.ResponseNoContent(w)
}

// UpdateHallByName addresses the hall by cinema and name, since names are
// only unique within a cinema.
func (h *HallHandler) UpdateHallByName(w http.ResponseWriter, r *http.Request) {
	cinemaID, ok := pathID(w, r, "cinemaId")
	if !ok {
		return
	}

	var req request.HallRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateHallByName(r.Context(), cinemaID, chi.URLParam(r, "name"), &req); err != nil {
		handleServiceError(h.log, w, r, err, "update hall by name")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *HallHandler) DeleteHallByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteHallByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete hall")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *HallHandler) DeleteHallByName(w http.ResponseWriter, r *http.Request) {
	cinemaID, ok := pathID(w, r, "cinemaId")
	if !ok {
		return
	}

	if err := h.service.DeleteHallByName(r.Context(), cinemaID, chi.URLParam(r, "name")); err != nil {
		handleServiceError(h.log, w, r, err, "delete hall by name")
		return
	}

	utils.ResponseNoContent(w)
}
