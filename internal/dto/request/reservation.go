package request

// ReservationRequest claims seats for a showtime. UserID is taken from the
// token unless an admin books on behalf of someone else.
type ReservationRequest struct {
	UserID     int64   `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	ShowtimeID int64   `json:"showtime_id" validate:"required,gt=0"`
	SeatIDs    []int64 `json:"seat_ids" validate:"required,min=1,dive,gt=0"`
}
