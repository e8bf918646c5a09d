package response

import (
	"time"

	"biograf/internal/data/entity"
)

type ShowtimeResponse struct {
	ID      int64     `json:"id"`
	MovieID int64     `json:"movie_id"`
	HallID  int64     `json:"hall_id"`
	Time    time.Time `json:"time"`
}

type ShowtimeDetailsResponse struct {
	ShowtimeID int64     `json:"showtime_id"`
	MovieTitle string    `json:"movie_title"`
	CinemaName string    `json:"cinema_name"`
	HallName   string    `json:"hall_name"`
	Time       time.Time `json:"time"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:      showtime.ID,
		MovieID: showtime.MovieID,
		HallID:  showtime.HallID,
		Time:    showtime.StartsAt,
	}
}

func ShowtimesToResponse(showtimes []*entity.Showtime) []ShowtimeResponse {
	out := make([]ShowtimeResponse, len(showtimes))
	for i, s := range showtimes {
		out[i] = ShowtimeToResponse(s)
	}
	return out
}

func ShowtimeDetailsToResponse(details *entity.ShowtimeDetails) ShowtimeDetailsResponse {
	return ShowtimeDetailsResponse{
		ShowtimeID: details.ShowtimeID,
		MovieTitle: details.MovieTitle,
		CinemaName: details.CinemaName,
		HallName:   details.HallName,
		Time:       details.StartsAt,
	}
}
