package usecase

import (
	"context"
	"time"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/pkg/events"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Each mock embeds its interface so a test only stubs the calls it makes.

type userRepoMock struct {
	repository.UserRepository
	mock.Mock
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *userRepoMock) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type showtimeRepoMock struct {
	repository.ShowtimeRepository
	mock.Mock
}

func (m *showtimeRepoMock) FindDetails(ctx context.Context, id int64) (*entity.ShowtimeDetails, error) {
	args := m.Called(ctx, id)
	details, _ := args.Get(0).(*entity.ShowtimeDetails)
	return details, args.Error(1)
}

func (m *showtimeRepoMock) Update(ctx context.Context, showtime *entity.Showtime) error {
	return m.Called(ctx, showtime).Error(0)
}

func (m *showtimeRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type paymentRepoMock struct {
	repository.PaymentRepository
	mock.Mock
}

func (m *paymentRepoMock) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *paymentRepoMock) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	payment, _ := args.Get(0).(*entity.Payment)
	return payment, args.Error(1)
}

func (m *paymentRepoMock) Update(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

type ticketRepoMock struct {
	repository.TicketRepository
	mock.Mock
}

func (m *ticketRepoMock) IssueBatch(ctx context.Context, showtimeID, paymentID, reservationID int64, seatIDs []int64, purchasedAt time.Time) ([]*entity.Ticket, error) {
	args := m.Called(ctx, showtimeID, paymentID, reservationID, seatIDs, purchasedAt)
	tickets, _ := args.Get(0).([]*entity.Ticket)
	return tickets, args.Error(1)
}

type genreRepoMock struct {
	repository.GenreRepository
	mock.Mock
}

func (m *genreRepoMock) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Genre, error) {
	args := m.Called(ctx, ids)
	genres, _ := args.Get(0).([]*entity.Genre)
	return genres, args.Error(1)
}

type movieRepoMock struct {
	repository.MovieRepository
	mock.Mock
}

func (m *movieRepoMock) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	if args.Error(0) == nil {
		movie.ID = 1
	}
	return args.Error(0)
}

type hallRepoMock struct {
	repository.HallRepository
	mock.Mock
}

func (m *hallRepoMock) CreateWithSeats(ctx context.Context, hall *entity.Hall, seats []*entity.Seat) error {
	return m.Called(ctx, hall, seats).Error(0)
}

func (m *hallRepoMock) FindByID(ctx context.Context, id int64) (*entity.Hall, error) {
	args := m.Called(ctx, id)
	hall, _ := args.Get(0).(*entity.Hall)
	return hall, args.Error(1)
}

func (m *hallRepoMock) Update(ctx context.Context, hall *entity.Hall) error {
	return m.Called(ctx, hall).Error(0)
}

type detailsStoreMock struct {
	mock.Mock
}

func (m *detailsStoreMock) Get(ctx context.Context, key string) (*entity.ShowtimeDetails, bool) {
	args := m.Called(ctx, key)
	details, _ := args.Get(0).(*entity.ShowtimeDetails)
	return details, args.Bool(1)
}

func (m *detailsStoreMock) Set(ctx context.Context, key string, value *entity.ShowtimeDetails) {
	m.Called(ctx, key, value)
}

func (m *detailsStoreMock) Delete(ctx context.Context, key string) {
	m.Called(ctx, key)
}

func (m *detailsStoreMock) Clear(ctx context.Context) {
	m.Called(ctx)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) PublishTicketsIssued(ctx context.Context, event events.TicketsIssued) error {
	return m.Called(ctx, event).Error(0)
}

func (m *publisherMock) Close() error {
	return nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
