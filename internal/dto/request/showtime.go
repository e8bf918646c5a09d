package request

import "time"

type ShowtimeRequest struct {
	Time    time.Time `json:"time" validate:"required"`
	MovieID int64     `json:"movie_id" validate:"required,gt=0"`
	HallID  int64     `json:"hall_id" validate:"required,gt=0"`
}
