package request

// TicketRequest issues one ticket per seat id.
type TicketRequest struct {
	ShowtimeID    int64   `json:"showtime_id" validate:"required,gt=0"`
	PaymentID     int64   `json:"payment_id" validate:"required,gt=0"`
	ReservationID int64   `json:"reservation_id" validate:"required,gt=0"`
	SeatIDs       []int64 `json:"seat_ids" validate:"required,min=1,dive,gt=0"`
}

type TicketUpdateRequest struct {
	ShowtimeID    int64 `json:"showtime_id" validate:"required,gt=0"`
	SeatID        int64 `json:"seat_id" validate:"required,gt=0"`
	PaymentID     int64 `json:"payment_id" validate:"required,gt=0"`
	ReservationID int64 `json:"reservation_id" validate:"required,gt=0"`
}
