package usecase

import (
	"context"
	"testing"
	"time"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/pkg/apperror"
	"biograf/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMovieResolvesGenres(t *testing.T) {
	genres := new(genreRepoMock)
	genres.On("FindByIDs", mock.Anything, []int64{2, 5}).Return([]*entity.Genre{
		{Base: entity.Base{ID: 5}, Name: "Horror"},
		{Base: entity.Base{ID: 2}, Name: "Drama"},
	}, nil)
	movies := new(movieRepoMock)
	movies.On("Create", mock.Anything, mock.AnythingOfType("*entity.Movie")).Return(nil)

	srv := NewMovieService(&repository.Repository{Movie: movies, Genre: genres}, cache.NoopStore[entity.ShowtimeDetails]{}, testLogger())
	resp, err := srv.CreateMovie(context.Background(), &request.MovieRequest{
		Title:    " Agak Laen ",
		Duration: 119,
		IsActive: true,
		GenreIDs: []int64{2, 5, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "Agak Laen", resp.Title)
	assert.ElementsMatch(t, []int64{2, 5}, resp.GenreIDs)
	genres.AssertExpectations(t)
}

func TestCreateMovieUnknownGenre(t *testing.T) {
	genres := new(genreRepoMock)
	genres.On("FindByIDs", mock.Anything, []int64{2, 9}).Return([]*entity.Genre{{Base: entity.Base{ID: 2}}}, nil)
	movies := new(movieRepoMock)

	srv := NewMovieService(&repository.Repository{Movie: movies, Genre: genres}, cache.NoopStore[entity.ShowtimeDetails]{}, testLogger())
	_, err := srv.CreateMovie(context.Background(), &request.MovieRequest{Title: "X", Duration: 90, GenreIDs: []int64{2, 9}})

	assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
	assert.Equal(t, "genres [9] do not exist", apperror.MessageOf(err))
	movies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateHallSeatMap(t *testing.T) {
	tests := []struct {
		name    string
		req     request.HallRequest
		wantErr string
	}{
		{
			name: "over capacity",
			req: request.HallRequest{Name: "Studio 1", Capacity: 1, CinemaID: 1, Seats: []request.HallSeatRequest{
				{Row: "A", Number: 1}, {Row: "A", Number: 2},
			}},
			wantErr: "hall has 2 seats but capacity 1",
		},
		{
			name: "duplicate seat",
			req: request.HallRequest{Name: "Studio 1", Capacity: 5, CinemaID: 1, Seats: []request.HallSeatRequest{
				{Row: "a", Number: 1}, {Row: "A", Number: 1},
			}},
			wantErr: "seat A1 listed twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewHallService(&repository.Repository{Hall: new(hallRepoMock)}, cache.NoopStore[entity.ShowtimeDetails]{}, testLogger())
			_, err := srv.CreateHall(context.Background(), &tt.req)
			assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
			assert.Equal(t, tt.wantErr, apperror.MessageOf(err))
		})
	}

	t.Run("rows are upper cased", func(t *testing.T) {
		halls := new(hallRepoMock)
		halls.On("CreateWithSeats", mock.Anything, mock.AnythingOfType("*entity.Hall"),
			mock.MatchedBy(func(seats []*entity.Seat) bool {
				return len(seats) == 2 && seats[0].Row == "B" && seats[1].Number == 2
			})).Return(nil)

		srv := NewHallService(&repository.Repository{Hall: halls}, cache.NoopStore[entity.ShowtimeDetails]{}, testLogger())
		resp, err := srv.CreateHall(context.Background(), &request.HallRequest{
			Name: "Studio 2", Capacity: 10, CinemaID: 1,
			Seats: []request.HallSeatRequest{{Row: "b", Number: 1}, {Row: "b", Number: 2}},
		})
		require.NoError(t, err)
		assert.Len(t, resp.Seats, 2)
		halls.AssertExpectations(t)
	})
}

func TestPaymentService(t *testing.T) {
	paidAt := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	t.Run("create stamps now", func(t *testing.T) {
		repo := new(paymentRepoMock)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.UserID == 4 && p.Amount == 75000 && p.PaidAt.Equal(paidAt)
		})).Return(nil)

		srv := &paymentService{paymentRepo: repo, now: fixedClock(paidAt), log: testLogger()}
		resp, err := srv.CreatePayment(context.Background(), 4, &request.PaymentRequest{Amount: 75000})
		require.NoError(t, err)
		assert.Equal(t, paidAt, resp.PaymentDate)
		repo.AssertExpectations(t)
	})

	t.Run("amount must be positive", func(t *testing.T) {
		srv := NewPaymentService(new(paymentRepoMock), testLogger())
		_, err := srv.CreatePayment(context.Background(), 4, &request.PaymentRequest{Amount: -5})
		assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
	})

	t.Run("update keeps paid_at", func(t *testing.T) {
		repo := new(paymentRepoMock)
		repo.On("FindByID", mock.Anything, int64(6)).Return(&entity.Payment{Base: entity.Base{ID: 6}, UserID: 4, Amount: 10, PaidAt: paidAt}, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.ID == 6 && p.Amount == 20 && p.PaidAt.Equal(paidAt)
		})).Return(nil)

		srv := NewPaymentService(repo, testLogger())
		require.NoError(t, srv.UpdatePaymentByID(context.Background(), 6, 4, &request.PaymentRequest{Amount: 20}))
		repo.AssertExpectations(t)
	})
}

func TestRequireIDs(t *testing.T) {
	err := requireIDs(map[string]int64{"showtimeId": 0, "hallId": -1})
	assert.Equal(t, "hallId must be a positive integer", apperror.MessageOf(err))
	assert.NoError(t, requireIDs(map[string]int64{"id": 1}))
}

func TestUniqueIDs(t *testing.T) {
	ids, err := uniqueIDs("seat_ids", []int64{3, 1, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)

	_, err = uniqueIDs("seat_ids", []int64{1, 0})
	assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
}

func TestUpdateHallClearsShowtimeDetails(t *testing.T) {
	halls := new(hallRepoMock)
	halls.On("FindByID", mock.Anything, int64(2)).Return(&entity.Hall{Base: entity.Base{ID: 2}, CinemaID: 1, Name: "Hall 1", Capacity: 50}, nil)
	halls.On("Update", mock.Anything, mock.MatchedBy(func(h *entity.Hall) bool {
		return h.ID == 2 && h.Name == "IMAX"
	})).Return(nil)
	store := new(detailsStoreMock)
	store.On("Clear", mock.Anything).Return()

	srv := NewHallService(&repository.Repository{Hall: halls}, store, testLogger())
	err := srv.UpdateHallByID(context.Background(), 2, &request.HallRequest{Name: " IMAX ", Capacity: 50, CinemaID: 1})
	require.NoError(t, err)

	store.AssertExpectations(t)
}

func TestUpdateHallFailureKeepsCache(t *testing.T) {
	halls := new(hallRepoMock)
	halls.On("FindByID", mock.Anything, int64(2)).Return(&entity.Hall{Base: entity.Base{ID: 2}, CinemaID: 1, Name: "Hall 1", Capacity: 50}, nil)
	halls.On("Update", mock.Anything, mock.Anything).Return(apperror.Conflict("hall name already exists"))
	store := new(detailsStoreMock)

	srv := NewHallService(&repository.Repository{Hall: halls}, store, testLogger())
	err := srv.UpdateHallByID(context.Background(), 2, &request.HallRequest{Name: "Hall 2", Capacity: 50, CinemaID: 1})

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	store.AssertNotCalled(t, "Clear", mock.Anything)
}
