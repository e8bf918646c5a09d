package entity

import "time"

type Showtime struct {
	Base
	MovieID  int64     `db:"movie_id"`
	HallID   int64     `db:"hall_id"`
	StartsAt time.Time `db:"starts_at"`
}

// ShowtimeDetails is the showtime joined with its movie, hall and cinema.
type ShowtimeDetails struct {
	ShowtimeID int64     `db:"showtime_id" json:"showtime_id"`
	MovieTitle string    `db:"movie_title" json:"movie_title"`
	CinemaName string    `db:"cinema_name" json:"cinema_name"`
	HallName   string    `db:"hall_name" json:"hall_name"`
	StartsAt   time.Time `db:"starts_at" json:"starts_at"`
}
