package entity

import (
	"time"
)

type Movie struct {
	Base
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	DurationMinutes int       `db:"duration_minutes"`
	IsActive        bool      `db:"is_active"`
	ImagePath       string    `db:"image_path"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`

	// Loaded from movie_genres, not a column.
	Genres []Genre `db:"-"`
}

// GenreIDs returns the ids of the loaded genres.
func (m *Movie) GenreIDs() []int64 {
	ids := make([]int64, 0, len(m.Genres))
	for _, g := range m.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}
