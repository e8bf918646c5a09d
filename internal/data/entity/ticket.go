package entity

import "time"

type Ticket struct {
	Base
	ShowtimeID    int64     `db:"showtime_id"`
	SeatID        int64     `db:"seat_id"`
	PaymentID     int64     `db:"payment_id"`
	ReservationID int64     `db:"reservation_id"`
	PurchasedAt   time.Time `db:"purchased_at"`
}

// TicketDetails is the receipt view of every ticket bought with one payment.
type TicketDetails struct {
	PaymentID   int64
	PurchasedAt time.Time
	CinemaName  string
	HallName    string
	MovieTitle  string
	ShowtimeAt  time.Time
	Seats       []string
}
