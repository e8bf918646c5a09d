package entity

// ReservationSeat claims one seat for one showtime on behalf of a reservation.
type ReservationSeat struct {
	ReservationID int64 `db:"reservation_id"`
	SeatID        int64 `db:"seat_id"`
	ShowtimeID    int64 `db:"showtime_id"`
}
