package adaptor

import (
	"net/http"

	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

func (h *PaymentHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	c := callerFrom(r)

	var (
		payments any
		err      error
	)
	if c.admin {
		payments, err = h.service.GetAllPayments(r.Context())
	} else {
		payments, err = h.service.GetPaymentsByUserID(r.Context(), c.id)
	}
	if err != nil {
		handleServiceError(h.log, w, r, err, "get payments")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	payment, err := h.service.GetPaymentByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get payment")
		return
	}
	if !callerFrom(r).owns(payment.UserID) {
		forbidden(w)
		return
	}

	utils.ResponseSuccess(w, "Payment retrieved successfully", payment)
}

func (h *PaymentHandler) GetPaymentWithTickets(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	payment, err := h.service.GetPaymentWithTickets(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get payment with tickets")
		return
	}
	if !callerFrom(r).owns(payment.UserID) {
		forbidden(w)
		return
	}

	utils.ResponseSuccess(w, "Payment retrieved successfully", payment)
}

func (h *PaymentHandler) GetPaymentsByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	if !callerFrom(r).owns(userID) {
		forbidden(w)
		return
	}

	payments, err := h.service.GetPaymentsByUserID(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get payments by user")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), callerFrom(r).target(req.UserID), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create payment")
		return
	}

	utils.ResponseCreated(w, "Payment created successfully", payment)
}

func (h *PaymentHandler) UpdatePaymentByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.PaymentRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !h.authorize(w, r, id) {
		return
	}

	if err := h.service.UpdatePaymentByID(r.Context(), id, callerFrom(r).target(req.UserID), &req); err != nil {
		handleServiceError(h.log, w, r, err, "update payment")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *PaymentHandler) DeletePaymentByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !h.authorize(w, r, id) {
		return
	}

	if err := h.service.DeletePaymentByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete payment")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *PaymentHandler) authorize(w http.ResponseWriter, r *http.Request, id int64) bool {
	c := callerFrom(r)
	if c.admin {
		return true
	}

	payment, err := h.service.GetPaymentByID(r.Context(), id)
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
