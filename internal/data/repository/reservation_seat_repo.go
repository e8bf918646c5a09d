package repository

import (
	"context"
	"fmt"
	"strings"

	"biograf/pkg/apperror"
	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReservationSeatRepository manages seat claims. UNIQUE (showtime_id, seat_id)
// makes a second claim of the same seat for the same showtime fail with Conflict.
type ReservationSeatRepository interface {
	Claim(ctx context.Context, tx pgx.Tx, reservationID, showtimeID int64, seatIDs []int64) error
	Release(ctx context.Context, tx pgx.Tx, reservationID int64) error
	FindSeatIDsByReservationIDs(ctx context.Context, reservationIDs []int64) (map[int64][]int64, error)
}

type reservationSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationSeatRepository(db database.PgxIface, log *zap.Logger) ReservationSeatRepository {
	return &reservationSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation_seat")),
	}
}

func (r *reservationSeatRepository) Claim(ctx context.Context, tx pgx.Tx, reservationID, showtimeID int64, seatIDs []int64) error {
	if len(seatIDs) == 0 {
		return apperror.InvalidInput("seat ids are required")
	}

	// reservation id is $1 and showtime id is $2 for every row
	values := make([]string, len(seatIDs))
	args := make([]any, 0, len(seatIDs)+2)
	args = append(args, reservationID, showtimeID)
	for i, seatID := range seatIDs {
		values[i] = fmt.Sprintf("($1, $%d, $2)", i+3)
		args = append(args, seatID)
	}

	query := `INSERT INTO reservation_seats (reservation_id, seat_id, showtime_id) VALUES ` + strings.Join(values, ", ")

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		r.log.Warn("Failed to claim seats",
			zap.Error(err),
			zap.Int64("reservation_id", reservationID),
			zap.Int64("showtime_id", showtimeID),
			zap.Int64s("seat_ids", seatIDs),
		)
		return dbError(err, "claim seats")
	}

	return nil
}

func (r *reservationSeatRepository) Release(ctx context.Context, tx pgx.Tx, reservationID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM reservation_seats WHERE reservation_id = $1`, reservationID); err != nil {
		r.log.Error("Failed to release seats", zap.Error(err), zap.Int64("reservation_id", reservationID))
		return dbError(err, "release seats")
	}
	return nil
}

func (r *reservationSeatRepository) FindSeatIDsByReservationIDs(ctx context.Context, reservationIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(reservationIDs))
	if len(reservationIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT reservation_id, seat_id
		FROM reservation_seats
		WHERE reservation_id = ANY($1)
		ORDER BY reservation_id, seat_id
	`

	rows, err := r.db.Query(ctx, query, reservationIDs)
	if err != nil {
		r.log.Error("Failed to find reservation seats", zap.Error(err), zap.Int64s("reservation_ids", reservationIDs))
		return nil, dbError(err, "find reservation seats")
	}
	defer rows.Close()

	for rows.Next() {
		var reservationID, seatID int64
		if err := rows.Scan(&reservationID, &seatID); err != nil {
			r.log.Error("Failed to scan reservation seat row", zap.Error(err))
			return nil, dbError(err, "scan reservation seats")
		}
		result[reservationID] = append(result[reservationID], seatID)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "read reservation seats")
	}

	return result, nil
}
