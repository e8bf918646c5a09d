package response

import (
	"time"

	"biograf/internal/data/entity"
)

type TicketResponse struct {
	ID            int64     `json:"id"`
	ShowtimeID    int64     `json:"showtime_id"`
	SeatID        int64     `json:"seat_id"`
	PaymentID     int64     `json:"payment_id"`
	ReservationID int64     `json:"reservation_id"`
	PurchaseDate  time.Time `json:"purchase_date"`
}

// TicketDetailsResponse is the receipt view of one payment.
type TicketDetailsResponse struct {
	PaymentID    int64     `json:"payment_id"`
	PurchaseDate time.Time `json:"purchase_date"`
	CinemaName   string    `json:"cinema_name"`
	HallName     string    `json:"hall_name"`
	MovieTitle   string    `json:"movie_title"`
	ShowtimeTime time.Time `json:"showtime_time"`
	Seats        []string  `json:"seats"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:            ticket.ID,
		ShowtimeID:    ticket.ShowtimeID,
		SeatID:        ticket.SeatID,
		PaymentID:     ticket.PaymentID,
		ReservationID: ticket.ReservationID,
		PurchaseDate:  ticket.PurchasedAt,
	}
}

func TicketsToResponse(tickets []*entity.Ticket) []TicketResponse {
	out := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = TicketToResponse(t)
	}
	return out
}

func TicketDetailsToResponse(details *entity.TicketDetails) TicketDetailsResponse {
	return TicketDetailsResponse{
		PaymentID:    details.PaymentID,
		PurchaseDate: details.PurchasedAt,
		CinemaName:   details.CinemaName,
		HallName:     details.HallName,
		MovieTitle:   details.MovieTitle,
		ShowtimeTime: details.ShowtimeAt,
		Seats:        details.Seats,
	}
}
