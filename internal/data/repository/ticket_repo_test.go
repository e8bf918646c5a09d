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

var ticketCols = []string{"id", "showtime_id", "seat_id", "payment_id", "reservation_id", "purchased_at"}

func expectTicketChecks(mock pgxmock.PgxPoolIface, claimed ...int64) {
	mock.ExpectQuery(`SELECT showtime_id FROM reservations WHERE id = \$1 FOR SHARE`).
		WithArgs(int64(40)).
		WillReturnRows(pgxmock.NewRows([]string{"showtime_id"}).AddRow(int64(7)))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM payments WHERE id = \$1\)`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	rows := pgxmock.NewRows([]string{"seat_id"})
	for _, id := range claimed {
		rows.AddRow(id)
	}
	mock.ExpectQuery(`SELECT seat_id FROM reservation_seats WHERE reservation_id = \$1`).
		WithArgs(int64(40)).
		WillReturnRows(rows)
}

func TestTicketIssueBatch(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())
	now := time.Now()

	mock.ExpectBegin()
	expectTicketChecks(mock, 11, 12)
	mock.ExpectQuery(`INSERT INTO tickets`).
		WithArgs(int64(7), int64(9), int64(40), now, int64(11), int64(12)).
		WillReturnRows(pgxmock.NewRows(ticketCols).
			AddRow(int64(100), int64(7), int64(11), int64(9), int64(40), now).
			AddRow(int64(101), int64(7), int64(12), int64(9), int64(40), now))
	mock.ExpectCommit()

	tickets, err := repo.IssueBatch(context.Background(), 7, 9, 40, []int64{11, 12}, now)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, int64(100), tickets[0].ID)
	assert.Equal(t, int64(12), tickets[1].SeatID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketIssueBatchUnclaimedSeat(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())

	mock.ExpectBegin()
	expectTicketChecks(mock, 11)
	mock.ExpectRollback()

	_, err := repo.IssueBatch(context.Background(), 7, 9, 40, []int64{11, 13}, time.Now())

	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.Contains(t, apperror.MessageOf(err), "[13]")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketIssueBatchWrongShowtime(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT showtime_id FROM reservations`).
		WithArgs(int64(40)).
		WillReturnRows(pgxmock.NewRows([]string{"showtime_id"}).AddRow(int64(8)))
	mock.ExpectRollback()

	_, err := repo.IssueBatch(context.Background(), 7, 9, 40, []int64{11}, time.Now())

	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketIssueBatchUnknownPayment(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT showtime_id FROM reservations`).
		WithArgs(int64(40)).
		WillReturnRows(pgxmock.NewRows([]string{"showtime_id"}).AddRow(int64(7)))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.IssueBatch(context.Background(), 7, 9, 40, []int64{11}, time.Now())

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, "payment 9 not found", apperror.MessageOf(err))
}

func TestTicketIssueBatchRequiresSeats(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())

	_, err := repo.IssueBatch(context.Background(), 7, 9, 40, nil, time.Now())
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketFindDetailsByPaymentID(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())
	purchased := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	starts := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	cols := []string{"purchased_at", "cinema", "hall", "title", "starts_at", "seat_row", "seat_number"}
	mock.ExpectQuery(`FROM tickets t`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(purchased, "Grand", "Hall 1", "Dune", starts, "A", 1).
			AddRow(purchased, "Grand", "Hall 1", "Dune", starts, "A", 2))

	details, err := repo.FindDetailsByPaymentID(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, int64(9), details.PaymentID)
	assert.Equal(t, "Dune", details.MovieTitle)
	assert.Equal(t, "Grand", details.CinemaName)
	assert.Equal(t, starts, details.ShowtimeAt)
	assert.Equal(t, []string{"A1", "A2"}, details.Seats)
}

func TestTicketFindDetailsNoTickets(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())

	mock.ExpectQuery(`FROM tickets t`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"purchased_at", "cinema", "hall", "title", "starts_at", "seat_row", "seat_number"}))

	_, err := repo.FindDetailsByPaymentID(context.Background(), 9)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, "no tickets found for payment 9", apperror.MessageOf(err))
}

func TestTicketUpdate(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())
	now := time.Now()

	mock.ExpectBegin()
	expectTicketChecks(mock, 11, 12)
	mock.ExpectExec(`UPDATE tickets`).
		WithArgs(int64(5), int64(7), int64(12), int64(9), int64(40), now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &entity.Ticket{
		Base: entity.Base{ID: 5}, ShowtimeID: 7, SeatID: 12, PaymentID: 9, ReservationID: 40, PurchasedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketUpdateUnclaimedSeat(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())

	mock.ExpectBegin()
	expectTicketChecks(mock, 11, 12)
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &entity.Ticket{
		Base: entity.Base{ID: 5}, ShowtimeID: 7, SeatID: 99, PaymentID: 9, ReservationID: 40, PurchasedAt: time.Now(),
	})

	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.Contains(t, apperror.MessageOf(err), "[99]")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketUpdateWrongShowtime(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT showtime_id FROM reservations`).
		WithArgs(int64(40)).
		WillReturnRows(pgxmock.NewRows([]string{"showtime_id"}).AddRow(int64(8)))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &entity.Ticket{
		Base: entity.Base{ID: 5}, ShowtimeID: 7, SeatID: 11, PaymentID: 9, ReservationID: 40, PurchasedAt: time.Now(),
	})

	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketUpdateMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewTicketRepository(mock, testLogger())

	mock.ExpectBegin()
	expectTicketChecks(mock, 11)
	mock.ExpectExec(`UPDATE tickets`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &entity.Ticket{
		Base: entity.Base{ID: 5}, ShowtimeID: 7, SeatID: 11, PaymentID: 9, ReservationID: 40, PurchasedAt: time.Now(),
	})

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, "ticket 5 not found", apperror.MessageOf(err))
}
