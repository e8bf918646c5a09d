package repository

import (
	"context"
	"testing"
	"time"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationRepo(mock pgxmock.PgxPoolIface) ReservationRepository {
	log := testLogger()
	return NewReservationRepository(mock, NewReservationSeatRepository(mock, log), log)
}

func TestReservationCreate(t *testing.T) {
	mock := newMock(t)
	repo := newReservationRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT hall_id FROM showtimes WHERE id = \$1 FOR SHARE`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"hall_id"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT id FROM seats WHERE hall_id`).
		WithArgs(int64(2), []int64{11, 12}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)).AddRow(int64(12)))
	mock.ExpectQuery(`INSERT INTO reservations`).
		WithArgs(int64(1), int64(7), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(40)))
	mock.ExpectExec(`INSERT INTO reservation_seats`).
		WithArgs(int64(40), int64(7), int64(11), int64(12)).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	reservation := &entity.Reservation{UserID: 1, ShowtimeID: 7, ReservedAt: time.Now(), SeatIDs: []int64{11, 12}}
	require.NoError(t, repo.Create(context.Background(), reservation))

	assert.Equal(t, int64(40), reservation.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCreateRequiresSeats(t *testing.T) {
	mock := newMock(t)
	repo := newReservationRepo(mock)

	err := repo.Create(context.Background(), &entity.Reservation{UserID: 1, ShowtimeID: 7})

	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCreateSeatTaken(t *testing.T) {
	mock := newMock(t)
	repo := newReservationRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT hall_id FROM showtimes`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"hall_id"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT id FROM seats`).
		WithArgs(int64(2), []int64{11}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectQuery(`INSERT INTO reservations`).
		WithArgs(int64(1), int64(7), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectExec(`INSERT INTO reservation_seats`).
		WithArgs(int64(41), int64(7), int64(11)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_reservation_seats_showtime_seat"})
	mock.ExpectRollback()

	reservation := &entity.Reservation{UserID: 1, ShowtimeID: 7, ReservedAt: time.Now(), SeatIDs: []int64{11}}
	err := repo.Create(context.Background(), reservation)

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, "seat already reserved for this showtime", apperror.MessageOf(err))
	assert.Zero(t, reservation.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCreateSeatOutsideHall(t *testing.T) {
	mock := newMock(t)
	repo := newReservationRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT hall_id FROM showtimes`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"hall_id"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT id FROM seats`).
		WithArgs(int64(2), []int64{11, 99}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectRollback()

	reservation := &entity.Reservation{UserID: 1, ShowtimeID: 7, ReservedAt: time.Now(), SeatIDs: []int64{11, 99}}
	err := repo.Create(context.Background(), reservation)

	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.Contains(t, apperror.MessageOf(err), "[99]")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCreateUnknownShowtime(t *testing.T) {
	mock := newMock(t)
	repo := newReservationRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT hall_id FROM showtimes`).
		WithArgs(int64(7)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &entity.Reservation{UserID: 1, ShowtimeID: 7, SeatIDs: []int64{11}})

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, "showtime 7 not found", apperror.MessageOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationDeleteWithTickets(t *testing.T) {
	mock := newMock(t)
	repo := newReservationRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM reservation_seats WHERE reservation_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`DELETE FROM reservations WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnError(&pgconn.PgError{Code: "23503", TableName: "tickets"})
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 5)

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationFindByUserAttachesSeats(t *testing.T) {
	mock := newMock(t)
	repo := newReservationRepo(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM reservations WHERE user_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "showtime_id", "reserved_at"}).
			AddRow(int64(20), int64(3), int64(7), now).
			AddRow(int64(19), int64(3), int64(8), now))
	mock.ExpectQuery(`FROM reservation_seats`).
		WithArgs([]int64{20, 19}).
		WillReturnRows(pgxmock.NewRows([]string{"reservation_id", "seat_id"}).
			AddRow(int64(20), int64(11)).
			AddRow(int64(20), int64(12)))

	reservations, err := repo.FindByUserID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.Equal(t, []int64{11, 12}, reservations[0].SeatIDs)
	assert.Equal(t, []int64{}, reservations[1].SeatIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func expectReservationUpdate(mock pgxmock.PgxPoolIface, ticketed bool) {
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT hall_id FROM showtimes WHERE id = \$1 FOR SHARE`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"hall_id"}).AddRow(int64(2)))
	mock.ExpectQuery(`SELECT id FROM seats WHERE hall_id`).
		WithArgs(int64(2), []int64{13}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(13)))
	mock.ExpectExec(`UPDATE reservations SET user_id = \$2, showtime_id = \$3 WHERE id = \$1`).
		WithArgs(int64(40), int64(1), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM tickets WHERE reservation_id = \$1\)`).
		WithArgs(int64(40)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(ticketed))
}

func TestReservationUpdate(t *testing.T) {
	mock := newMock(t)
	repo := newReservationRepo(mock)

	expectReservationUpdate(mock, false)
	mock.ExpectExec(`DELETE FROM reservation_seats WHERE reservation_id = \$1`).
		WithArgs(int64(40)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`INSERT INTO reservation_seats`).
		WithArgs(int64(40), int64(7), int64(13)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &entity.Reservation{Base: entity.Base{ID: 40}, UserID: 1, ShowtimeID: 7, SeatIDs: []int64{13}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationUpdateWithTickets(t *testing.T) {
	mock := newMock(t)
	repo := newReservationRepo(mock)

	expectReservationUpdate(mock, true)
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &entity.Reservation{Base: entity.Base{ID: 40}, UserID: 1, ShowtimeID: 7, SeatIDs: []int64{13}})

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, "reservation 40 already has tickets issued", apperror.MessageOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
