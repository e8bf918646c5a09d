package entity

import "time"

type Reservation struct {
	Base
	UserID     int64     `db:"user_id"`
	ShowtimeID int64     `db:"showtime_id"`
	ReservedAt time.Time `db:"reserved_at"`

	// Claimed seats, loaded from reservation_seats.
	SeatIDs []int64 `db:"-"`
}
