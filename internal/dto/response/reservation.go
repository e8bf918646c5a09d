package response

import (
	"time"

	"biograf/internal/data/entity"
)

type ReservationResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	ShowtimeID      int64     `json:"showtime_id"`
	ReservationTime time.Time `json:"reservation_time"`
	SeatIDs         []int64   `json:"seat_ids"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	seatIDs := reservation.SeatIDs
	if seatIDs == nil {
		seatIDs = []int64{}
	}

	return ReservationResponse{
		ID:              reservation.ID,
		UserID:          reservation.UserID,
		ShowtimeID:      reservation.ShowtimeID,
		ReservationTime: reservation.ReservedAt,
		SeatIDs:         seatIDs,
	}
}

func ReservationsToResponse(reservations []*entity.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		out[i] = ReservationToResponse(r)
	}
	return out
}
