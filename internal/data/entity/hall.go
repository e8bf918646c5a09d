package entity

type Hall struct {
	Base
	CinemaID int64  `db:"cinema_id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
}
