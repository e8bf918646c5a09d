package adaptor

import (
	"net/http"

	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

// TicketHandler checks ownership through the ticket's payment and the
// reservation it was issued against.
type TicketHandler struct {
	service      usecase.TicketService
	payments     usecase.PaymentService
	reservations usecase.ReservationService
	log          *zap.Logger
}

func NewTicketHandler(
	service usecase.TicketService,
	payments usecase.PaymentService,
	reservations usecase.ReservationService,
	log *zap.Logger,
) *TicketHandler {
	return &TicketHandler{
		service:      service,
		payments:     payments,
		reservations: reservations,
		log:          log.With(zap.String("handler", "ticket")),
	}
}

func (h *TicketHandler) GetAllTickets(w http.ResponseWriter, r *http.Request) {
	c := callerFrom(r)

	var (
		tickets any
		err     error
	)
	if c.admin {
		tickets, err = h.service.GetAllTickets(r.Context())
	} else {
		tickets, err = h.service.GetUserTickets(r.Context(), c.id)
	}
	if err != nil {
		handleServiceError(h.log, w, r, err, "get tickets")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved successfully", tickets)
}

func (h *TicketHandler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	ticket, err := h.service.GetTicketByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get ticket")
		return
	}
	if !h.ownsPayment(w, r, ticket.PaymentID) {
		return
	}

	utils.ResponseSuccess(w, "Ticket retrieved successfully", ticket)
}

func (h *TicketHandler) GetUserTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	if !callerFrom(r).owns(userID) {
		forbidden(w)
		return
	}

	tickets, err := h.service.GetUserTickets(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get user tickets")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved successfully", tickets)
}

func (h *TicketHandler) GetTicketDetailsByPaymentID(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := pathID(w, r, "paymentId")
	if !ok {
		return
	}
	if !h.ownsPayment(w, r, paymentID) {
		return
	}

	details, err := h.service.GetTicketDetailsByPaymentID(r.Context(), paymentID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get ticket details")
		return
	}

	utils.ResponseSuccess(w, "Ticket details retrieved successfully", details)
}

// AddTicketsRepo issues one ticket per seat. AddTicket is routed here too.
func (h *TicketHandler) AddTicketsRepo(w http.ResponseWriter, r *http.Request) {
	var req request.TicketRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !h.ownsPayment(w, r, req.PaymentID) || !h.ownsReservation(w, r, req.ReservationID) {
		return
	}

	tickets, err := h.service.IssueTickets(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "issue tickets")
		return
	}

	utils.ResponseCreated(w, "Tickets issued successfully", tickets)
}

func (h *TicketHandler) UpdateTicketByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.TicketUpdateRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !h.ownsTicket(w, r, id) || !h.ownsPayment(w, r, req.PaymentID) || !h.ownsReservation(w, r, req.ReservationID) {
		return
	}

	if err := h.service.UpdateTicketByID(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, r, err, "update ticket")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *TicketHandler) DeleteTicketByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !h.ownsTicket(w, r, id) {
		return
	}

	if err := h.service.DeleteTicketByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete ticket")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *TicketHandler) ownsTicket(w http.ResponseWriter, r *http.Request, id int64) bool {
	if callerFrom(r).admin {
		return true
	}

	ticket, err := h.service.GetTicketByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "authorize ticket")
		return false
	}
	return h.ownsPayment(w, r, ticket.PaymentID)
}

func (h *TicketHandler) ownsPayment(w http.ResponseWriter, r *http.Request, paymentID int64) bool {
	c := callerFrom(r)
	if c.admin {
		return true
	}

	payment, err := h.payments.GetPaymentByID(r.Context(), paymentID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "authorize payment")
		return false
	}
	if !c.owns(payment.UserID) {
		forbidden(w)
		return false
	}
	return true
}

func (h *TicketHandler) ownsReservation(w http.ResponseWriter, r *http.Request, reservationID int64) bool {
	c := callerFrom(r)
	if c.admin {
		return true
	}

	reservation, err := h.reservations.GetReservationByID(r.Context(), reservationID)
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
