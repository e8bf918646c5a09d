package repository

import (
	"context"
	"testing"
	"time"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowtimeUpdateHallChangeWithClaims(t *testing.T) {
	mock := newMock(t)
	repo := NewShowtimeRepository(mock, testLogger())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT hall_id FROM showtimes WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"hall_id"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM reservation_seats WHERE showtime_id = \$1\)`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &entity.Showtime{Base: entity.Base{ID: 7}, MovieID: 1, HallID: 3, StartsAt: time.Now()})

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, "showtime 7 has reserved seats and cannot change hall", apperror.MessageOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowtimeUpdateHallChangeWithoutClaims(t *testing.T) {
	mock := newMock(t)
	repo := NewShowtimeRepository(mock, testLogger())
	starts := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT hall_id FROM showtimes WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"hall_id"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`UPDATE showtimes SET movie_id = \$2, hall_id = \$3, starts_at = \$4 WHERE id = \$1`).
		WithArgs(int64(7), int64(1), int64(3), starts).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &entity.Showtime{Base: entity.Base{ID: 7}, MovieID: 1, HallID: 3, StartsAt: starts})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
