package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type claimKey struct {
	showtimeID int64
	seatID     int64
}

// memReservations models the (showtime, seat) unique claim in memory.
type memReservations struct {
	repository.ReservationRepository

	mu     sync.Mutex
	nextID int64
	claims map[claimKey]int64
	rows   map[int64]*entity.Reservation
}

func newMemReservations() *memReservations {
	return &memReservations{
		claims: make(map[claimKey]int64),
		rows:   make(map[int64]*entity.Reservation),
	}
}

func (m *memReservations) Create(_ context.Context, r *entity.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, seatID := range r.SeatIDs {
		if _, taken := m.claims[claimKey{r.ShowtimeID, seatID}]; taken {
			return apperror.Conflict("seat already reserved for this showtime")
		}
	}

	m.nextID++
	r.ID = m.nextID
	for _, seatID := range r.SeatIDs {
		m.claims[claimKey{r.ShowtimeID, seatID}] = r.ID
	}
	stored := *r
	m.rows[r.ID] = &stored
	return nil
}

func TestCreateReservationRejectsEmptySeats(t *testing.T) {
	repo := newMemReservations()
	srv := NewReservationService(repo, testLogger())

	_, err := srv.CreateReservation(context.Background(), 1, &request.ReservationRequest{ShowtimeID: 3})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
	assert.Equal(t, "seat ids are required", apperror.MessageOf(err))
	assert.Empty(t, repo.rows)
}

func TestCreateReservationRequiresUser(t *testing.T) {
	srv := NewReservationService(newMemReservations(), testLogger())

	_, err := srv.CreateReservation(context.Background(), 0, &request.ReservationRequest{ShowtimeID: 3, SeatIDs: []int64{1}})
	assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
}

func TestCreateReservationDedupesAndStamps(t *testing.T) {
	repo := newMemReservations()
	srv := &reservationService{
		reservationRepo: repo,
		now:             fixedClock(time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)),
		log:             testLogger(),
	}

	resp, err := srv.CreateReservation(context.Background(), 4, &request.ReservationRequest{
		ShowtimeID: 3,
		SeatIDs:    []int64{11, 12, 11},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(4), resp.UserID)
	assert.Equal(t, []int64{11, 12}, resp.SeatIDs)
	assert.Equal(t, time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC), resp.ReservationTime)
}

func TestCreateReservationOverlapConflicts(t *testing.T) {
	repo := newMemReservations()
	srv := NewReservationService(repo, testLogger())
	ctx := context.Background()

	_, err := srv.CreateReservation(ctx, 1, &request.ReservationRequest{ShowtimeID: 3, SeatIDs: []int64{11, 12}})
	require.NoError(t, err)

	_, err = srv.CreateReservation(ctx, 2, &request.ReservationRequest{ShowtimeID: 3, SeatIDs: []int64{12, 13}})
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	// seat 13 was not claimed by the failed attempt
	_, err = srv.CreateReservation(ctx, 2, &request.ReservationRequest{ShowtimeID: 3, SeatIDs: []int64{13}})
	assert.NoError(t, err)

	// same seat, other showtime
	_, err = srv.CreateReservation(ctx, 2, &request.ReservationRequest{ShowtimeID: 4, SeatIDs: []int64{12}})
	assert.NoError(t, err)
}

func TestCreateReservationConcurrentClaims(t *testing.T) {
	repo := newMemReservations()
	srv := NewReservationService(repo, testLogger())

	const workers = 8
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, workers)
	)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = srv.CreateReservation(context.Background(), int64(i+1), &request.ReservationRequest{
				ShowtimeID: 9,
				SeatIDs:    []int64{42},
			})
		}(i)
	}
	close(start)
	wg.Wait()

	var won, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case apperror.Is(err, apperror.KindConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, repo.rows, 1)
}
