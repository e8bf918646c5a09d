package response

import "biograf/internal/data/entity"

type HallResponse struct {
	ID       int64          `json:"id"`
	CinemaID int64          `json:"cinema_id"`
	Name     string         `json:"name"`
	Capacity int            `json:"capacity"`
	Seats    []SeatResponse `json:"seats,omitempty"`
}

type HallIDResponse struct {
	HallID int64 `json:"hall_id"`
}

func HallToResponse(hall *entity.Hall, seats []*entity.Seat) HallResponse {
	resp := HallResponse{
		ID:       hall.ID,
		CinemaID: hall.CinemaID,
		Name:     hall.Name,
		Capacity: hall.Capacity,
	}
	if len(seats) > 0 {
		resp.Seats = SeatsToResponse(seats)
	}
	return resp
}

func HallsToResponse(halls []*entity.Hall) []HallResponse {
	out := make([]HallResponse, len(halls))
	for i, h := range halls {
		out[i] = HallToResponse(h, nil)
	}
	return out
}
