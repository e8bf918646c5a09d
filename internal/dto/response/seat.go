package response

import (
	"biograf/internal/data/entity"
	"biograf/pkg/utils"
)

type SeatResponse struct {
	ID         int64  `json:"id"`
	HallID     int64  `json:"hall_id"`
	Row        string `json:"row"`
	Number     int    `json:"number"`
	Label      string `json:"label"`
	IsReserved bool   `json:"is_reserved"`
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:         seat.ID,
		HallID:     seat.HallID,
		Row:        seat.Row,
		Number:     seat.Number,
		Label:      utils.SeatLabel(seat.Row, seat.Number),
		IsReserved: seat.IsReserved,
	}
}

func SeatsToResponse(seats []*entity.Seat) []SeatResponse {
	out := make([]SeatResponse, len(seats))
	for i, s := range seats {
		out[i] = SeatToResponse(s)
	}
	return out
}

// SeatStatusesToResponse reports is_reserved as claimed for the showtime,
// ignoring the stored flag.
func SeatStatusesToResponse(seats []*entity.SeatStatus) []SeatResponse {
	out := make([]SeatResponse, len(seats))
	for i, s := range seats {
		out[i] = SeatToResponse(&s.Seat)
		out[i].IsReserved = s.Reserved
	}
	return out
}
