package repository

import (
	"context"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"
	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	CRUD[entity.Payment]
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Payment, error)
	// FindWithTickets loads the payment and every ticket bought with it.
	FindWithTickets(ctx context.Context, id int64) (*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, user_id, amount, paid_at`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	if err := row.Scan(&payment.ID, &payment.UserID, &payment.Amount, &payment.PaidAt); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `INSERT INTO payments (user_id, amount, paid_at) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRow(ctx, query, payment.UserID, payment.Amount, payment.PaidAt).Scan(&payment.ID)
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.Int64("user_id", payment.UserID),
			zap.Float64("amount", payment.Amount),
		)
		return dbError(err, "create payment")
	}

	r.log.Info("Payment created",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("user_id", payment.UserID),
		zap.Float64("amount", payment.Amount),
	)
	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	payment, err := scanPayment(r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "payment", id)
	}
	return payment, nil
}

func (r *paymentRepository) FindWithTickets(ctx context.Context, id int64) (*entity.Payment, error) {
	payment, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE payment_id = $1 ORDER BY id`, id)
	if err != nil {
		r.log.Error("Failed to find payment tickets", zap.Error(err), zap.Int64("payment_id", id))
		return nil, dbError(err, "find payment tickets")
	}

	tickets, err := collect(rows, scanTicket)
	if err != nil {
		r.log.Error("Failed to scan ticket row", zap.Error(err))
		return nil, dbError(err, "scan payment tickets")
	}

	payment.Tickets = make([]entity.Ticket, len(tickets))
	for i, t := range tickets {
		payment.Tickets[i] = *t
	}

	return payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	return r.list(ctx, "list payments", `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
}

func (r *paymentRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Payment, error) {
	return r.list(ctx, "list payments by user",
		`SELECT `+paymentColumns+` FROM payments WHERE user_id = $1 ORDER BY paid_at DESC, id DESC`, userID)
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	query := `UPDATE payments SET user_id = $2, amount = $3, paid_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, payment.ID, payment.UserID, payment.Amount, payment.PaidAt)
	if err != nil {
		r.log.Error("Failed to update payment", zap.Error(err), zap.Int64("payment_id", payment.ID))
		return dbError(err, "update payment")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("payment %d not found", payment.ID)
	}

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete payment", zap.Error(err), zap.Int64("payment_id", id))
		return dbError(err, "delete payment")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("payment %d not found", id)
	}

	r.log.Info("Payment deleted", zap.Int64("payment_id", id))
	return nil
}

func (r *paymentRepository) list(ctx context.Context, action, query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+action, zap.Error(err))
		return nil, dbError(err, action)
	}

	payments, err := collect(rows, scanPayment)
	if err != nil {
		r.log.Error("Failed to scan payment row", zap.Error(err))
		return nil, dbError(err, action)
	}

	return payments, nil
}
