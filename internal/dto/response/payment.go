package response

import (
	"time"

	"biograf/internal/data/entity"
)

type PaymentResponse struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	Amount      float64          `json:"amount"`
	PaymentDate time.Time        `json:"payment_date"`
	Tickets     []TicketResponse `json:"tickets,omitempty"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:          payment.ID,
		UserID:      payment.UserID,
		Amount:      payment.Amount,
		PaymentDate: payment.PaidAt,
	}

	if payment.Tickets != nil {
		resp.Tickets = make([]TicketResponse, len(payment.Tickets))
		for i := range payment.Tickets {
			resp.Tickets[i] = TicketToResponse(&payment.Tickets[i])
		}
	}

	return resp
}

func PaymentsToResponse(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = PaymentToResponse(p)
	}
	return out
}
