package adaptor

import (
	"net/http"

	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

// ReservationHandler serves authenticated callers. Non-admin callers only
// see and change their own reservations.
type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// GetAllReservations lists every reservation for admins and the caller's
// own reservations otherwise.
func (h *ReservationHandler) GetAllReservations(w http.ResponseWriter, r *http.Request) {
	c := callerFrom(r)

	var (
		reservations any
		err          error
	)
	if c.admin {
		reservations, err = h.service.GetAllReservations(r.Context())
	} else {
		reservations, err = h.service.GetReservationsByUserID(r.Context(), c.id)
	}
	if err != nil {
		handleServiceError(h.log, w, r, err, "get reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}

func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get reservation")
		return
	}
	if !callerFrom(r).owns(reservation.UserID) {
		forbidden(w)
		return
	}

	utils.ResponseSuccess(w, "Reservation retrieved successfully", reservation)
}

func (h *ReservationHandler) GetReservationsByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	if !callerFrom(r).owns(userID) {
		forbidden(w)
		return
	}

	reservations, err := h.service.GetReservationsByUserID(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get reservations by user")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}

// AddReservationWithSeats handles POST /api/Reservations/AddReservationWithSeats.
// AddReservation is routed here as well.
func (h *ReservationHandler) AddReservationWithSeats(w http.ResponseWriter, r *http.Request) {
	var req request.ReservationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), callerFrom(r).target(req.UserID), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "Reservation created successfully", reservation)
}

func (h *ReservationHandler) UpdateReservationByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.ReservationRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !h.authorize(w, r, id) {
		return
	}

	if err := h.service.UpdateReservationByID(r.Context(), id, callerFrom(r).target(req.UserID), &req); err != nil {
		handleServiceError(h.log, w, r, err, "update reservation")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *ReservationHandler) DeleteReservationByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !h.authorize(w, r, id) {
		return
	}

	if err := h.service.DeleteReservationByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete reservation")
		return
	}

	utils.ResponseNoContent(w)
}

// authorize loads the reservation and checks the caller owns it.
func (h *ReservationHandler) authorize(w http.ResponseWriter, r *http.Request, id int64) bool {
	c := callerFrom(r)
	if c.admin {
		return true
	}

	reservation, err := h.service.GetReservationByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "authorize reservation")
		return false
	}
	if !c.owns(reservation.UserID) {
		forbidden(w)
		return false
	}
	return true
}
