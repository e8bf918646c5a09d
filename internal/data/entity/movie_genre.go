package entity

type MovieGenre struct {
	MovieID int64 `db:"movie_id"`
	GenreID int64 `db:"genre_id"`
}
