package response

import "biograf/internal/data/entity"

type CinemaResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:       cinema.ID,
		Name:     cinema.Name,
		Location: cinema.Location,
	}
}

func CinemasToResponse(cinemas []*entity.Cinema) []CinemaResponse {
	out := make([]CinemaResponse, len(cinemas))
	for i, c := range cinemas {
		out[i] = CinemaToResponse(c)
	}
	return out
}
