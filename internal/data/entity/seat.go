package entity

type Seat struct {
	Base
	HallID int64  `db:"hall_id"`
	Row    string `db:"seat_row"`    // A, B, C
	Number int    `db:"seat_number"` // 1, 2, 3
	// Stored flag kept for compatibility. Availability per showtime is
	// derived from reservation_seats, see SeatStatus.
	IsReserved bool `db:"is_reserved"`
}

// SeatStatus is a seat annotated with whether it is claimed for one showtime.
type SeatStatus struct {
	Seat
	Reserved bool `db:"reserved"`
}
