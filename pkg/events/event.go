package events

import "time"

// TicketsIssued is published after a ticket batch commits.
type TicketsIssued struct {
	PaymentID     int64     `json:"payment_id"`
	ReservationID int64     `json:"reservation_id"`
	ShowtimeID    int64     `json:"showtime_id"`
	SeatIDs       []int64   `json:"seat_ids"`
	TicketIDs     []int64   `json:"ticket_ids"`
	IssuedAt      time.Time `json:"issued_at"`
}
