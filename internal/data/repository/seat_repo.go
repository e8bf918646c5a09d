package repository

import (
	"context"
	"fmt"
	"strings"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"
	"biograf/pkg/database"
	"biograf/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	CRUD[entity.Seat]
	FindByHallID(ctx context.Context, hallID int64) ([]*entity.Seat, error)
	FindByRowAndNumber(ctx context.Context, hallID int64, row string, number int) (*entity.Seat, error)
	DeleteByRowAndNumber(ctx context.Context, hallID int64, row string, number int) error

	// Availability queries, derived from reservation_seats
	FindWithReservationStatus(ctx context.Context, hallID, showtimeID int64) ([]*entity.SeatStatus, error)
	FindAvailableByShowtime(ctx context.Context, showtimeID int64) ([]*entity.Seat, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

const seatColumns = `s.id, s.hall_id, s.seat_row, s.seat_number, s.is_reserved`

func scanSeat(row pgx.Row) (*entity.Seat, error) {
	var seat entity.Seat
	if err := row.Scan(&seat.ID, &seat.HallID, &seat.Row, &seat.Number, &seat.IsReserved); err != nil {
		return nil, err
	}
	return &seat, nil
}

func scanSeatStatus(row pgx.Row) (*entity.SeatStatus, error) {
	var status entity.SeatStatus
	err := row.Scan(
		&status.ID,
		&status.HallID,
		&status.Row,
		&status.Number,
		&status.IsReserved,
		&status.Reserved,
	)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// insertSeats bulk inserts seats and writes the generated ids back.
func insertSeats(ctx context.Context, q querier, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	values := make([]string, len(seats))
	args := make([]any, 0, len(seats)*4)
	for i, seat := range seats {
		values[i] = fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, seat.HallID, seat.Row, seat.Number, seat.IsReserved)
	}

	query := `INSERT INTO seats (hall_id, seat_row, seat_number, is_reserved) VALUES ` +
		strings.Join(values, ", ") + ` RETURNING id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return dbError(err, "create seats")
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(seats) {
			break
		}
		if err := rows.Scan(&seats[i].ID); err != nil {
			return dbError(err, "create seats")
		}
		i++
	}
	if err := rows.Err(); err != nil {
		return dbError(err, "create seats")
	}

	return nil
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	if err := insertSeats(ctx, r.db, []*entity.Seat{seat}); err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.Int64("hall_id", seat.HallID),
			zap.String("seat", utils.SeatLabel(seat.Row, seat.Number)),
		)
		return err
	}
	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id int64) (*entity.Seat, error) {
	seat, err := scanSeat(r.db.QueryRow(ctx, `SELECT `+seatColumns+` FROM seats s WHERE s.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "seat", id)
	}
	return seat, nil
}

func (r *seatRepository) FindByRowAndNumber(ctx context.Context, hallID int64, row string, number int) (*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats s WHERE s.hall_id = $1 AND s.seat_row = $2 AND s.seat_number = $3`

	seat, err := scanSeat(r.db.QueryRow(ctx, query, hallID, row, number))
	if err != nil {
		return nil, notFound(err, "seat", utils.SeatLabel(row, number))
	}
	return seat, nil
}

func (r *seatRepository) FindAll(ctx context.Context) ([]*entity.Seat, error) {
	return r.list(ctx, "list seats",
		`SELECT `+seatColumns+` FROM seats s ORDER BY s.hall_id, s.seat_row, s.seat_number`)
}

func (r *seatRepository) FindByHallID(ctx context.Context, hallID int64) ([]*entity.Seat, error) {
	return r.list(ctx, "list seats by hall",
		`SELECT `+seatColumns+` FROM seats s WHERE s.hall_id = $1 ORDER BY s.seat_row, s.seat_number`, hallID)
}

// FindWithReservationStatus lists every seat of the hall, marking the ones
// claimed for the showtime. The showtime must run in the hall.
func (r *seatRepository) FindWithReservationStatus(ctx context.Context, hallID, showtimeID int64) ([]*entity.SeatStatus, error) {
	var showtimeHallID int64
	if err := r.db.QueryRow(ctx, `SELECT hall_id FROM showtimes WHERE id = $1`, showtimeID).Scan(&showtimeHallID); err != nil {
		return nil, notFound(err, "showtime", showtimeID)
	}
	if showtimeHallID != hallID {
		return nil, apperror.InvalidInput("showtime %d is not in hall %d", showtimeID, hallID)
	}

	query := `
		SELECT ` + seatColumns + `,
		       EXISTS (
		           SELECT 1 FROM reservation_seats rs
		           WHERE rs.showtime_id = $2 AND rs.seat_id = s.id
		       ) AS reserved
		FROM seats s
		WHERE s.hall_id = $1
		ORDER BY s.seat_row, s.seat_number
	`

	rows, err := r.db.Query(ctx, query, hallID, showtimeID)
	if err != nil {
		r.log.Error("Failed to find seat status",
			zap.Error(err),
			zap.Int64("hall_id", hallID),
			zap.Int64("showtime_id", showtimeID),
		)
		return nil, dbError(err, "find seat status")
	}

	seats, err := collect(rows, scanSeatStatus)
	if err != nil {
		r.log.Error("Failed to scan seat status row", zap.Error(err))
		return nil, dbError(err, "scan seat status")
	}

	return seats, nil
}

// FindAvailableByShowtime lists the seats of the showtime's hall that are
// not claimed for that showtime.
func (r *seatRepository) FindAvailableByShowtime(ctx context.Context, showtimeID int64) ([]*entity.Seat, error) {
	var hallID int64
	if err := r.db.QueryRow(ctx, `SELECT hall_id FROM showtimes WHERE id = $1`, showtimeID).Scan(&hallID); err != nil {
		return nil, notFound(err, "showtime", showtimeID)
	}

	query := `
		SELECT ` + seatColumns + `
		FROM seats s
		WHERE s.hall_id = $1
		  AND NOT EXISTS (
		      SELECT 1 FROM reservation_seats rs
		      WHERE rs.showtime_id = $2 AND rs.seat_id = s.id
		  )
		ORDER BY s.seat_row, s.seat_number
	`

	return r.list(ctx, "list available seats", query, hallID, showtimeID)
}

// Update fails with Conflict when the seat moves to another hall while
// claims exist for it.
func (r *seatRepository) Update(ctx context.Context, seat *entity.Seat) error {
	query := `UPDATE seats SET hall_id = $2, seat_row = $3, seat_number = $4, is_reserved = $5 WHERE id = $1`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var hallID int64
		if err := tx.QueryRow(ctx, `SELECT hall_id FROM seats WHERE id = $1 FOR UPDATE`, seat.ID).Scan(&hallID); err != nil {
			return notFound(err, "seat", seat.ID)
		}

		if hallID != seat.HallID {
			var claimed bool
			err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservation_seats WHERE seat_id = $1)`, seat.ID).
				Scan(&claimed)
			if err != nil {
				return dbError(err, "check seat claims")
			}
			if claimed {
				return apperror.Conflict("seat %d is reserved and cannot change hall", seat.ID)
			}
		}

		if _, err := tx.Exec(ctx, query, seat.ID, seat.HallID, seat.Row, seat.Number, seat.IsReserved); err != nil {
			return dbError(err, "update seat")
		}
		return nil
	})
	if err != nil {
		r.log.Warn("Failed to update seat", zap.Error(err), zap.Int64("seat_id", seat.ID))
		return dbError(err, "update seat")
	}

	return nil
}

func (r *seatRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM seats WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete seat", zap.Error(err), zap.Int64("seat_id", id))
		return dbError(err, "delete seat")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("seat %d not found", id)
	}

	r.log.Info("Seat deleted", zap.Int64("seat_id", id))
	return nil
}

func (r *seatRepository) DeleteByRowAndNumber(ctx context.Context, hallID int64, row string, number int) error {
	query := `DELETE FROM seats WHERE hall_id = $1 AND seat_row = $2 AND seat_number = $3`

	result, err := r.db.Exec(ctx, query, hallID, row, number)
	if err != nil {
		r.log.Error("Failed to delete seat by row and number",
			zap.Error(err),
			zap.Int64("hall_id", hallID),
			zap.String("row", row),
			zap.Int("number", number),
		)
		return dbError(err, "delete seat")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("seat %s%d not found", row, number)
	}

	return nil
}

func (r *seatRepository) list(ctx context.Context, action, query string, args ...any) ([]*entity.Seat, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+action, zap.Error(err))
		return nil, dbError(err, action)
	}

	seats, err := collect(rows, scanSeat)
	if err != nil {
		r.log.Error("Failed to scan seat row", zap.Error(err))
		return nil, dbError(err, action)
	}

	return seats, nil
}
