package repository

import (
	"context"
	"slices"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"
	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReservationRepository writes a reservation together with its seat claims.
// Create, Update and Delete each run as one transaction. Create fails with
// InvalidInput when reservation.SeatIDs is empty and with Conflict when any
// seat is already claimed for the showtime; nothing is persisted in either case.
type ReservationRepository interface {
	CRUD[entity.Reservation]
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Reservation, error)
}

type reservationRepository struct {
	db    database.PgxIface
	seats ReservationSeatRepository
	log   *zap.Logger
}

func NewReservationRepository(db database.PgxIface, seats ReservationSeatRepository, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:    db,
		seats: seats,
		log:   log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, user_id, showtime_id, reserved_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := row.Scan(&reservation.ID, &reservation.UserID, &reservation.ShowtimeID, &reservation.ReservedAt)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	if len(reservation.SeatIDs) == 0 {
		return apperror.InvalidInput("seat ids are required")
	}

	query := `INSERT INTO reservations (user_id, showtime_id, reserved_at) VALUES ($1, $2, $3) RETURNING id`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		// 1. Lock showtime and check seats belong to its hall
		if err := checkSeatsInShowtimeHall(ctx, tx, reservation.ShowtimeID, reservation.SeatIDs); err != nil {
			return err
		}

		// 2. Insert reservation
		err := tx.QueryRow(ctx, query,
			reservation.UserID,
			reservation.ShowtimeID,
			reservation.ReservedAt,
		).Scan(&reservation.ID)
		if err != nil {
			return dbError(err, "create reservation")
		}

		// 3. Claim seats, unique (showtime, seat) rejects a taken seat
		return r.seats.Claim(ctx, tx, reservation.ID, reservation.ShowtimeID, reservation.SeatIDs)
	})
	if err != nil {
		reservation.ID = 0
		r.log.Warn("Failed to create reservation",
			zap.Error(err),
			zap.Int64("user_id", reservation.UserID),
			zap.Int64("showtime_id", reservation.ShowtimeID),
			zap.Int64s("seat_ids", reservation.SeatIDs),
		)
		return dbError(err, "create reservation")
	}

	r.log.Info("Reservation created",
		zap.Int64("reservation_id", reservation.ID),
		zap.Int64("showtime_id", reservation.ShowtimeID),
		zap.Int("seat_count", len(reservation.SeatIDs)),
	)
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	reservation, err := scanReservation(r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "reservation", id)
	}

	if err := r.attachSeats(ctx, []*entity.Reservation{reservation}); err != nil {
		return nil, err
	}

	return reservation, nil
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	return r.list(ctx, "list reservations", `SELECT `+reservationColumns+` FROM reservations ORDER BY id`)
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Reservation, error) {
	return r.list(ctx, "list reservations by user",
		`SELECT `+reservationColumns+` FROM reservations WHERE user_id = $1 ORDER BY reserved_at DESC, id DESC`, userID)
}

// Update replaces the reservation's user, showtime and seat set. A
// reservation with issued tickets is fixed and fails with Conflict.
func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	if len(reservation.SeatIDs) == 0 {
		return apperror.InvalidInput("seat ids are required")
	}

	query := `UPDATE reservations SET user_id = $2, showtime_id = $3 WHERE id = $1`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := checkSeatsInShowtimeHall(ctx, tx, reservation.ShowtimeID, reservation.SeatIDs); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, query, reservation.ID, reservation.UserID, reservation.ShowtimeID)
		if err != nil {
			return dbError(err, "update reservation")
		}
		if result.RowsAffected() == 0 {
			return apperror.NotFound("reservation %d not found", reservation.ID)
		}

		// The row lock above waits for any IssueBatch holding it FOR SHARE
		var ticketed bool
		err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE reservation_id = $1)`, reservation.ID).
			Scan(&ticketed)
		if err != nil {
			return dbError(err, "check tickets")
		}
		if ticketed {
			return apperror.Conflict("reservation %d already has tickets issued", reservation.ID)
		}

		if err := r.seats.Release(ctx, tx, reservation.ID); err != nil {
			return err
		}
		return r.seats.Claim(ctx, tx, reservation.ID, reservation.ShowtimeID, reservation.SeatIDs)
	})
	if err != nil {
		r.log.Warn("Failed to update reservation", zap.Error(err), zap.Int64("reservation_id", reservation.ID))
		return dbError(err, "update reservation")
	}

	return nil
}

// Delete releases the seat claims and removes the reservation. Issued
// tickets keep it referenced, the delete then fails and the claims stay.
func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.seats.Release(ctx, tx, id); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
		if err != nil {
			return dbError(err, "delete reservation")
		}
		if result.RowsAffected() == 0 {
			return apperror.NotFound("reservation %d not found", id)
		}
		return nil
	})
	if err != nil {
		r.log.Warn("Failed to delete reservation", zap.Error(err), zap.Int64("reservation_id", id))
		return dbError(err, "delete reservation")
	}

	r.log.Info("Reservation deleted", zap.Int64("reservation_id", id))
	return nil
}

// ==================== HELPER METHODS ====================

// checkSeatsInShowtimeHall locks the showtime row against concurrent hall
// changes and verifies every seat id belongs to that hall.
func checkSeatsInShowtimeHall(ctx context.Context, tx pgx.Tx, showtimeID int64, seatIDs []int64) error {
	var hallID int64
	err := tx.QueryRow(ctx, `SELECT hall_id FROM showtimes WHERE id = $1 FOR SHARE`, showtimeID).Scan(&hallID)
	if err != nil {
		return notFound(err, "showtime", showtimeID)
	}

	rows, err := tx.Query(ctx, `SELECT id FROM seats WHERE hall_id = $1 AND id = ANY($2)`, hallID, seatIDs)
	if err != nil {
		return dbError(err, "check seats")
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return dbError(err, "check seats")
	}

	var missing []int64
	for _, id := range seatIDs {
		if !slices.Contains(found, id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return apperror.InvalidInput("seats %v do not belong to the hall of showtime %d", missing, showtimeID)
	}

	return nil
}

func (r *reservationRepository) list(ctx context.Context, action, query string, args ...any) ([]*entity.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+action, zap.Error(err))
		return nil, dbError(err, action)
	}

	reservations, err := collect(rows, scanReservation)
	if err != nil {
		r.log.Error("Failed to scan reservation row", zap.Error(err))
		return nil, dbError(err, action)
	}

	if err := r.attachSeats(ctx, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *reservationRepository) attachSeats(ctx context.Context, reservations []*entity.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	ids := make([]int64, len(reservations))
	for i, res := range reservations {
		ids[i] = res.ID
	}

	byReservation, err := r.seats.FindSeatIDsByReservationIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, res := range reservations {
		res.SeatIDs = byReservation[res.ID]
		if res.SeatIDs == nil {
			res.SeatIDs = []int64{}
		}
	}

	return nil
}
