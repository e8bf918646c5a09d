package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"biograf/internal/data/entity"
	"biograf/internal/dto/request"
	"biograf/pkg/apperror"
	"biograf/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIssueTickets(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	issued := []*entity.Ticket{
		{Base: entity.Base{ID: 100}, ShowtimeID: 3, SeatID: 11, PaymentID: 5, ReservationID: 2, PurchasedAt: issuedAt},
		{Base: entity.Base{ID: 101}, ShowtimeID: 3, SeatID: 12, PaymentID: 5, ReservationID: 2, PurchasedAt: issuedAt},
	}
	req := &request.TicketRequest{ShowtimeID: 3, PaymentID: 5, ReservationID: 2, SeatIDs: []int64{11, 12, 12}}

	newService := func(repo *ticketRepoMock, pub *publisherMock) *ticketService {
		return &ticketService{ticketRepo: repo, events: pub, now: fixedClock(issuedAt), log: testLogger()}
	}

	t.Run("publishes after commit", func(t *testing.T) {
		repo := new(ticketRepoMock)
		repo.On("IssueBatch", mock.Anything, int64(3), int64(5), int64(2), []int64{11, 12}, issuedAt).Return(issued, nil)
		pub := new(publisherMock)
		pub.On("PublishTicketsIssued", mock.Anything, events.TicketsIssued{
			PaymentID:     5,
			ReservationID: 2,
			ShowtimeID:    3,
			SeatIDs:       []int64{11, 12},
			TicketIDs:     []int64{100, 101},
			IssuedAt:      issuedAt,
		}).Return(nil)

		resp, err := newService(repo, pub).IssueTickets(context.Background(), req)
		require.NoError(t, err)
		assert.Len(t, resp, 2)
		repo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("publish failure is not fatal", func(t *testing.T) {
		repo := new(ticketRepoMock)
		repo.On("IssueBatch", mock.Anything, int64(3), int64(5), int64(2), []int64{11, 12}, issuedAt).Return(issued, nil)
		pub := new(publisherMock)
		pub.On("PublishTicketsIssued", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		resp, err := newService(repo, pub).IssueTickets(context.Background(), req)
		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("conflict skips publish", func(t *testing.T) {
		repo := new(ticketRepoMock)
		repo.On("IssueBatch", mock.Anything, int64(3), int64(5), int64(2), []int64{11, 12}, issuedAt).
			Return(nil, apperror.Conflict("seat already ticketed for this showtime"))
		pub := new(publisherMock)

		_, err := newService(repo, pub).IssueTickets(context.Background(), req)
		assert.True(t, apperror.Is(err, apperror.KindConflict))
		pub.AssertNotCalled(t, "PublishTicketsIssued", mock.Anything, mock.Anything)
	})

	t.Run("empty seats", func(t *testing.T) {
		_, err := newService(new(ticketRepoMock), new(publisherMock)).IssueTickets(context.Background(),
			&request.TicketRequest{ShowtimeID: 3, PaymentID: 5, ReservationID: 2})
		assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
	})
}
