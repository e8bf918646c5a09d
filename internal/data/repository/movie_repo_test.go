package repository

import (
	"context"
	"testing"
	"time"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var movieCols = []string{"id", "title", "description", "duration_minutes", "is_active", "image_path", "created_at", "updated_at"}

func newMovieRepo(mock pgxmock.PgxPoolIface) MovieRepository {
	log := testLogger()
	return NewMovieRepository(mock, NewMovieGenreRepository(mock, log), log)
}

func TestMovieCreateLinksGenres(t *testing.T) {
	mock := newMock(t)
	repo := newMovieRepo(mock)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO movies`).
		WithArgs("Dune", "Sand", 155, true, "", now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec(`INSERT INTO movie_genres \(movie_id, genre_id\) VALUES \(\$1, \$2\), \(\$1, \$3\)`).
		WithArgs(int64(3), int64(1), int64(4)).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	movie := &entity.Movie{
		Title:           "Dune",
		Description:     "Sand",
		DurationMinutes: 155,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
		Genres:          []entity.Genre{{Base: entity.Base{ID: 1}}, {Base: entity.Base{ID: 4}}},
	}
	require.NoError(t, repo.Create(context.Background(), movie))

	assert.Equal(t, int64(3), movie.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieCreateUnknownGenre(t *testing.T) {
	mock := newMock(t)
	repo := newMovieRepo(mock)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO movies`).
		WithArgs("Dune", "", 155, false, "", now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec(`INSERT INTO movie_genres`).
		WithArgs(int64(3), int64(99)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	movie := &entity.Movie{
		Title:           "Dune",
		DurationMinutes: 155,
		CreatedAt:       now,
		UpdatedAt:       now,
		Genres:          []entity.Genre{{Base: entity.Base{ID: 99}}},
	}
	err := repo.Create(context.Background(), movie)

	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieFindByIDAttachesGenres(t *testing.T) {
	mock := newMock(t)
	repo := newMovieRepo(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM movies m WHERE m.id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(movieCols).AddRow(int64(3), "Dune", "Sand", 155, true, "", now, now))
	mock.ExpectQuery(`FROM movie_genres mg`).
		WithArgs([]int64{3}).
		WillReturnRows(pgxmock.NewRows([]string{"movie_id", "id", "name"}).
			AddRow(int64(3), int64(1), "Sci-Fi").
			AddRow(int64(3), int64(4), "Drama"))

	movie, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Dune", movie.Title)
	assert.Equal(t, []int64{1, 4}, movie.GenreIDs())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieDeleteReferenced(t *testing.T) {
	mock := newMock(t)
	repo := newMovieRepo(mock)

	mock.ExpectExec(`DELETE FROM movies WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnError(&pgconn.PgError{Code: "23503", TableName: "showtimes"})

	err := repo.Delete(context.Background(), 3)

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Contains(t, apperror.MessageOf(err), "showtimes")
}

func TestMovieDeleteByTitleMissing(t *testing.T) {
	mock := newMock(t)
	repo := newMovieRepo(mock)

	mock.ExpectExec(`DELETE FROM movies WHERE LOWER\(title\) = LOWER\(\$1\)`).
		WithArgs("Nope").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteByTitle(context.Background(), "Nope")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
