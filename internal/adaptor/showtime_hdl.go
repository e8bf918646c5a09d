package adaptor

import (
	"net/http"

	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

func (h *ShowtimeHandler) GetAllShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.GetAllShowtimes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "Showtimes retrieved successfully", showtimes)
}

func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	showtime, err := h.service.GetShowtimeByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime retrieved successfully", showtime)
}

func (h *ShowtimeHandler) GetShowtimeDetails(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathID(w, r, "showtimeId")
	if !ok {
		return
	}

	details, err := h.service.GetShowtimeDetails(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get showtime details")
		return
	}

	utils.ResponseSuccess(w, "Showtime details retrieved successfully", details)
}

func (h *ShowtimeHandler) GetShowtimesByMovieID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "movieId")
	if !ok {
		return
	}

	showtimes, err := h.service.GetShowtimesByMovieID(r.Context(), movieID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get showtimes by movie")
		return
	}

	utils.ResponseSuccess(w, "Showtimes retrieved successfully", showtimes)
}

// GetShowtimesByMovieAndCinema handles
// GET /api/Showtimes/GetShowtimesByMovies/{movieId}/Cinemas/{cinemaId}/Showtimes
func (h *ShowtimeHandler) GetShowtimesByMovieAndCinema(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "movieId")
	if !ok {
		return
	}
	cinemaID, ok := pathID(w, r, "cinemaId")
	if !ok {
		return
	}

	showtimes, err := h.service.GetShowtimesByMovieAndCinema(r.Context(), movieID, cinemaID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get showtimes by movie and cinema")
		return
	}

	utils.ResponseSuccess(w, "Showtimes retrieved successfully", showtimes)
}

func (h *ShowtimeHandler) AddShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "Showtime created successfully", showtime)
}

func (h *ShowtimeHandler) UpdateShowtimeByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.ShowtimeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateShowtimeByID(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, r, err, "update showtime")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *ShowtimeHandler) DeleteShowtimeByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteShowtimeByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete showtime")
		return
	}

	utils.ResponseNoContent(w)
}
