package adaptor

import (
	"net/http"

	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type SeatHandler struct {
	service      usecase.SeatService
	reservations usecase.ReservationService
	log          *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, reservations usecase.ReservationService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service:      service,
		reservations: reservations,
		log:          log.With(zap.String("handler", "seat")),
	}
}

func (h *SeatHandler) GetAllSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.GetAllSeats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get seats")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved successfully", seats)
}

func (h *SeatHandler) GetSeatByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	seat, err := h.service.GetSeatByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get seat")
		return
	}

	utils.ResponseSuccess(w, "Seat retrieved successfully", seat)
}

func (h *SeatHandler) GetSeatsByHallID(w http.ResponseWriter, r *http.Request) {
	hallID, ok := pathID(w, r, "hallId")
	if !ok {
		return
	}

	seats, err := h.service.GetSeatsByHallID(r.Context(), hallID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get seats by hall")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved successfully", seats)
}

// GetSeatsByHallAndShowtime handles GET /api/Seats/GetSeatsByHall/{hallId}/Showtime/{showtimeId}
func (h *SeatHandler) GetSeatsByHallAndShowtime(w http.ResponseWriter, r *http.Request) {
	hallID, ok := pathID(w, r, "hallId")
	if !ok {
		return
	}
	showtimeID, ok := pathID(w, r, "showtimeId")
	if !ok {
		return
	}

	seats, err := h.service.GetSeatsByHallAndShowtime(r.Context(), hallID, showtimeID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get seat availability")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved successfully", seats)
}

func (h *SeatHandler) GetAvailableSeatsByShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathID(w, r, "showtimeId")
	if !ok {
		return
	}

	seats, err := h.service.GetAvailableSeatsByShowtime(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get available seats")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved successfully", seats)
}

func (h *SeatHandler) AddSeat(w http.ResponseWriter, r *http.Request) {
	var req request.SeatRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	seat, err := h.service.CreateSeat(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create seat")
		return
	}

	utils.ResponseCreated(w, "Seat created successfully", seat)
}

// ReserveSeats claims seats through the same atomic path as
// Reservations/AddReservationWithSeats.
func (h *SeatHandler) ReserveSeats(w http.ResponseWriter, r *http.Request) {
	var req request.ReservationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	userID := callerFrom(r).target(req.UserID)
	reservation, err := h.reservations.CreateReservation(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "reserve seats")
		return
	}

	utils.ResponseCreated(w, "Seats reserved successfully", reservation)
}

func (h *SeatHandler) UpdateSeatByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.SeatRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateSeatByID(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, r, err, "update seat")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *SeatHandler) DeleteSeatByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSeatByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete seat")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteSeatByRowAndNumber handles DELETE /api/Seats/DeleteSeatByRowByNumber?hallId=&row=&number=
func (h *SeatHandler) DeleteSeatByRowAndNumber(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	hallID, err := utils.ParseID("hallId", query.Get("hallId"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}
	number, err := utils.ParseID("number", query.Get("number"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	if err := h.service.DeleteSeatByRowAndNumber(r.Context(), hallID, query.Get("row"), int(number)); err != nil {
		handleServiceError(h.log, w, r, err, "delete seat by row and number")
		return
	}

	utils.ResponseNoContent(w)
}
