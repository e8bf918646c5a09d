package repository

import (
	"context"

	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Capability interfaces shared by the entity repositories.

type Getter[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
}

type Lister[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
}

type Creator[T any] interface {
	Create(ctx context.Context, item *T) error
}

type Updater[T any] interface {
	Update(ctx context.Context, item *T) error
}

type Deleter interface {
	Delete(ctx context.Context, id int64) error
}

type CRUD[T any] interface {
	Getter[T]
	Lister[T]
	Creator[T]
	Updater[T]
	Deleter
}

// querier is satisfied by both the pool and an open pgx.Tx, so helpers can
// run inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	User            UserRepository
	Movie           MovieRepository
	Genre           GenreRepository
	MovieGenre      MovieGenreRepository
	Cinema          CinemaRepository
	Hall            HallRepository
	Seat            SeatRepository
	Showtime        ShowtimeRepository
	Reservation     ReservationRepository
	ReservationSeat ReservationSeatRepository
	Payment         PaymentRepository
	Ticket          TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	movieGenre := NewMovieGenreRepository(db, log)
	reservationSeat := NewReservationSeatRepository(db, log)

	return &Repository{
		User:            NewUserRepository(db, log),
		Movie:           NewMovieRepository(db, movieGenre, log),
		Genre:           NewGenreRepository(db, log),
		MovieGenre:      movieGenre,
		Cinema:          NewCinemaRepository(db, log),
		Hall:            NewHallRepository(db, log),
		Seat:            NewSeatRepository(db, log),
		Showtime:        NewShowtimeRepository(db, log),
		Reservation:     NewReservationRepository(db, reservationSeat, log),
		ReservationSeat: reservationSeat,
		Payment:         NewPaymentRepository(db, log),
		Ticket:          NewTicketRepository(db, log),
	}
}

// collect drains rows through scan. An empty result is an empty slice.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
