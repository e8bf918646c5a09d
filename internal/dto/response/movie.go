package response

import (
	"time"

	"biograf/internal/data/entity"
)

type MovieResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Duration    int             `json:"duration"`
	IsActive    bool            `json:"is_active"`
	ImagePath   string          `json:"image_path,omitempty"`
	GenreIDs    []int64         `json:"genre_ids"`
	Genres      []GenreResponse `json:"genres,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	genres := make([]GenreResponse, len(movie.Genres))
	for i := range movie.Genres {
		genres[i] = GenreToResponse(&movie.Genres[i])
	}

	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.DurationMinutes,
		IsActive:    movie.IsActive,
		ImagePath:   movie.ImagePath,
		GenreIDs:    movie.GenreIDs(),
		Genres:      genres,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
