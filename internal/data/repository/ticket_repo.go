package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"
	"biograf/pkg/database"
	"biograf/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// Create issues one ticket through IssueBatch.
	CRUD[entity.Ticket]

	// IssueBatch creates one ticket per seat in a single transaction. The
	// reservation must belong to the showtime and have claimed every seat.
	IssueBatch(ctx context.Context, showtimeID, paymentID, reservationID int64, seatIDs []int64, purchasedAt time.Time) ([]*entity.Ticket, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Ticket, error)
	FindDetailsByPaymentID(ctx context.Context, paymentID int64) (*entity.TicketDetails, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

const ticketColumns = `id, showtime_id, seat_id, payment_id, reservation_id, purchased_at`

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.ShowtimeID,
		&ticket.SeatID,
		&ticket.PaymentID,
		&ticket.ReservationID,
		&ticket.PurchasedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	tickets, err := r.IssueBatch(ctx,
		ticket.ShowtimeID,
		ticket.PaymentID,
		ticket.ReservationID,
		[]int64{ticket.SeatID},
		ticket.PurchasedAt,
	)
	if err != nil {
		return err
	}

	ticket.ID = tickets[0].ID
	return nil
}

func (r *ticketRepository) IssueBatch(ctx context.Context, showtimeID, paymentID, reservationID int64, seatIDs []int64, purchasedAt time.Time) ([]*entity.Ticket, error) {
	if len(seatIDs) == 0 {
		return nil, apperror.InvalidInput("seat ids are required")
	}

	var tickets []*entity.Ticket
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := checkTicketClaims(ctx, tx, showtimeID, paymentID, reservationID, seatIDs); err != nil {
			return err
		}

		var err error
		tickets, err = insertTickets(ctx, tx, showtimeID, paymentID, reservationID, seatIDs, purchasedAt)
		return err
	})
	if err != nil {
		r.log.Warn("Failed to issue tickets",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
			zap.Int64("payment_id", paymentID),
			zap.Int64("reservation_id", reservationID),
			zap.Int64s("seat_ids", seatIDs),
		)
		return nil, dbError(err, "issue tickets")
	}

	r.log.Info("Tickets issued",
		zap.Int64("payment_id", paymentID),
		zap.Int64("reservation_id", reservationID),
		zap.Int("count", len(tickets)),
	)
	return tickets, nil
}

// checkTicketClaims verifies the reservation is for the showtime, the payment
// exists and every seat is claimed by the reservation. The reservation row is
// held FOR SHARE until the transaction ends.
func checkTicketClaims(ctx context.Context, tx pgx.Tx, showtimeID, paymentID, reservationID int64, seatIDs []int64) error {
	// 1. Reservation must exist and be for this showtime
	var reservationShowtimeID int64
	err := tx.QueryRow(ctx, `SELECT showtime_id FROM reservations WHERE id = $1 FOR SHARE`, reservationID).
		Scan(&reservationShowtimeID)
	if err != nil {
		return notFound(err, "reservation", reservationID)
	}
	if reservationShowtimeID != showtimeID {
		return apperror.InvalidInput("reservation %d is not for showtime %d", reservationID, showtimeID)
	}

	// 2. Payment must exist
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payments WHERE id = $1)`, paymentID).Scan(&exists); err != nil {
		return dbError(err, "check payment")
	}
	if !exists {
		return apperror.NotFound("payment %d not found", paymentID)
	}

	// 3. Every seat must be claimed by the reservation
	rows, err := tx.Query(ctx, `SELECT seat_id FROM reservation_seats WHERE reservation_id = $1`, reservationID)
	if err != nil {
		return dbError(err, "check reserved seats")
	}
	claimed, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return dbError(err, "check reserved seats")
	}

	var unclaimed []int64
	for _, id := range seatIDs {
		if !slices.Contains(claimed, id) {
			unclaimed = append(unclaimed, id)
		}
	}
	if len(unclaimed) > 0 {
		return apperror.InvalidInput("seats %v are not reserved by reservation %d", unclaimed, reservationID)
	}

	return nil
}

func insertTickets(ctx context.Context, tx pgx.Tx, showtimeID, paymentID, reservationID int64, seatIDs []int64, purchasedAt time.Time) ([]*entity.Ticket, error) {
	// $1..$4 are shared, one seat id per row after that
	values := make([]string, len(seatIDs))
	args := make([]any, 0, len(seatIDs)+4)
	args = append(args, showtimeID, paymentID, reservationID, purchasedAt)
	for i, seatID := range seatIDs {
		values[i] = fmt.Sprintf("($1, $%d, $2, $3, $4)", i+5)
		args = append(args, seatID)
	}

	query := `INSERT INTO tickets (showtime_id, seat_id, payment_id, reservation_id, purchased_at) VALUES ` +
		strings.Join(values, ", ") + ` RETURNING ` + ticketColumns

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "insert tickets")
	}

	tickets, err := collect(rows, scanTicket)
	if err != nil {
		return nil, dbError(err, "insert tickets")
	}

	return tickets, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	ticket, err := scanTicket(r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "ticket", id)
	}
	return ticket, nil
}

func (r *ticketRepository) FindAll(ctx context.Context) ([]*entity.Ticket, error) {
	return r.list(ctx, "list tickets", `SELECT `+ticketColumns+` FROM tickets ORDER BY id`)
}

func (r *ticketRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Ticket, error) {
	query := `
		SELECT t.id, t.showtime_id, t.seat_id, t.payment_id, t.reservation_id, t.purchased_at
		FROM tickets t
		JOIN payments p ON p.id = t.payment_id
		WHERE p.user_id = $1
		ORDER BY t.purchased_at DESC, t.id
	`

	return r.list(ctx, "list tickets by user", query, userID)
}

// FindDetailsByPaymentID builds the receipt for a payment. Seats are resolved
// through the reservation's claims and labelled row then number.
func (r *ticketRepository) FindDetailsByPaymentID(ctx context.Context, paymentID int64) (*entity.TicketDetails, error) {
	query := `
		SELECT t.purchased_at, c.name, h.name, m.title, st.starts_at, se.seat_row, se.seat_number
		FROM tickets t
		JOIN showtimes st ON st.id = t.showtime_id
		JOIN movies m ON m.id = st.movie_id
		JOIN halls h ON h.id = st.hall_id
		JOIN cinemas c ON c.id = h.cinema_id
		JOIN reservation_seats rs ON rs.reservation_id = t.reservation_id AND rs.seat_id = t.seat_id
		JOIN seats se ON se.id = rs.seat_id
		WHERE t.payment_id = $1
		ORDER BY se.seat_row, se.seat_number
	`

	rows, err := r.db.Query(ctx, query, paymentID)
	if err != nil {
		r.log.Error("Failed to find ticket details", zap.Error(err), zap.Int64("payment_id", paymentID))
		return nil, dbError(err, "find ticket details")
	}
	defer rows.Close()

	var details *entity.TicketDetails
	for rows.Next() {
		var (
			purchasedAt, showtimeAt     time.Time
			cinemaName, hallName, title string
			seatRow                     string
			seatNumber                  int
		)
		if err := rows.Scan(&purchasedAt, &cinemaName, &hallName, &title, &showtimeAt, &seatRow, &seatNumber); err != nil {
			r.log.Error("Failed to scan ticket details row", zap.Error(err))
			return nil, dbError(err, "scan ticket details")
		}

		if details == nil {
			details = &entity.TicketDetails{
				PaymentID:   paymentID,
				PurchasedAt: purchasedAt,
				CinemaName:  cinemaName,
				HallName:    hallName,
				MovieTitle:  title,
				ShowtimeAt:  showtimeAt,
			}
		}
		details.Seats = append(details.Seats, utils.SeatLabel(seatRow, seatNumber))
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "read ticket details")
	}

	if details == nil {
		return nil, apperror.NotFound("no tickets found for payment %d", paymentID)
	}

	return details, nil
}

// Update replaces a ticket under the same checks as IssueBatch, so a ticket
// can only move to a seat its reservation has claimed.
func (r *ticketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET showtime_id = $2, seat_id = $3, payment_id = $4, reservation_id = $5, purchased_at = $6
		WHERE id = $1
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		err := checkTicketClaims(ctx, tx,
			ticket.ShowtimeID,
			ticket.PaymentID,
			ticket.ReservationID,
			[]int64{ticket.SeatID},
		)
		if err != nil {
			return err
		}

		result, err := tx.Exec(ctx, query,
			ticket.ID,
			ticket.ShowtimeID,
			ticket.SeatID,
			ticket.PaymentID,
			ticket.ReservationID,
			ticket.PurchasedAt,
		)
		if err != nil {
			return dbError(err, "update ticket")
		}
		if result.RowsAffected() == 0 {
			return apperror.NotFound("ticket %d not found", ticket.ID)
		}
		return nil
	})
	if err != nil {
		r.log.Warn("Failed to update ticket", zap.Error(err), zap.Int64("ticket_id", ticket.ID))
		return dbError(err, "update ticket")
	}

	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete ticket", zap.Error(err), zap.Int64("ticket_id", id))
		return dbError(err, "delete ticket")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("ticket %d not found", id)
	}

	r.log.Info("Ticket deleted", zap.Int64("ticket_id", id))
	return nil
}

func (r *ticketRepository) list(ctx context.Context, action, query string, args ...any) ([]*entity.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+action, zap.Error(err))
		return nil, dbError(err, action)
	}

	tickets, err := collect(rows, scanTicket)
	if err != nil {
		r.log.Error("Failed to scan ticket row", zap.Error(err))
		return nil, dbError(err, action)
	}

	return tickets, nil
}
