package repository

import (
	"context"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"
	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HallRepository interface {
	CRUD[entity.Hall]
	// CreateWithSeats inserts the hall and its seat map in one transaction.
	CreateWithSeats(ctx context.Context, hall *entity.Hall, seats []*entity.Seat) error
	FindByCinemaID(ctx context.Context, cinemaID int64) ([]*entity.Hall, error)
	FindByName(ctx context.Context, cinemaID int64, name string) (*entity.Hall, error)
	FindIDByShowtimeID(ctx context.Context, showtimeID int64) (int64, error)
	DeleteByName(ctx context.Context, cinemaID int64, name string) error
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

const hallColumns = `id, cinema_id, name, capacity`

func scanHall(row pgx.Row) (*entity.Hall, error) {
	var hall entity.Hall
	if err := row.Scan(&hall.ID, &hall.CinemaID, &hall.Name, &hall.Capacity); err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *hallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	return r.CreateWithSeats(ctx, hall, nil)
}

func (r *hallRepository) CreateWithSeats(ctx context.Context, hall *entity.Hall, seats []*entity.Seat) error {
	query := `INSERT INTO halls (cinema_id, name, capacity) VALUES ($1, $2, $3) RETURNING id`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query, hall.CinemaID, hall.Name, hall.Capacity).Scan(&hall.ID); err != nil {
			return dbError(err, "create hall")
		}

		for _, seat := range seats {
			seat.HallID = hall.ID
		}
		return insertSeats(ctx, tx, seats)
	})
	if err != nil {
		r.log.Error("Failed to create hall",
			zap.Error(err),
			zap.Int64("cinema_id", hall.CinemaID),
			zap.String("name", hall.Name),
			zap.Int("seat_count", len(seats)),
		)
		return dbError(err, "create hall")
	}

	return nil
}

func (r *hallRepository) FindByID(ctx context.Context, id int64) (*entity.Hall, error) {
	hall, err := scanHall(r.db.QueryRow(ctx, `SELECT `+hallColumns+` FROM halls WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "hall", id)
	}
	return hall, nil
}

func (r *hallRepository) FindByName(ctx context.Context, cinemaID int64, name string) (*entity.Hall, error) {
	query := `SELECT ` + hallColumns + ` FROM halls WHERE cinema_id = $1 AND name = $2`

	hall, err := scanHall(r.db.QueryRow(ctx, query, cinemaID, name))
	if err != nil {
		return nil, notFound(err, "hall", name)
	}
	return hall, nil
}

func (r *hallRepository) FindIDByShowtimeID(ctx context.Context, showtimeID int64) (int64, error) {
	var hallID int64
	err := r.db.QueryRow(ctx, `SELECT hall_id FROM showtimes WHERE id = $1`, showtimeID).Scan(&hallID)
	if err != nil {
		return 0, notFound(err, "showtime", showtimeID)
	}
	return hallID, nil
}

func (r *hallRepository) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	return r.list(ctx, "list halls", `SELECT `+hallColumns+` FROM halls ORDER BY cinema_id, name`)
}

func (r *hallRepository) FindByCinemaID(ctx context.Context, cinemaID int64) ([]*entity.Hall, error) {
	return r.list(ctx, "list halls by cinema",
		`SELECT `+hallColumns+` FROM halls WHERE cinema_id = $1 ORDER BY name`, cinemaID)
}

func (r *hallRepository) Update(ctx context.Context, hall *entity.Hall) error {
	query := `UPDATE halls SET cinema_id = $2, name = $3, capacity = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, hall.ID, hall.CinemaID, hall.Name, hall.Capacity)
	if err != nil {
		r.log.Error("Failed to update hall", zap.Error(err), zap.Int64("hall_id", hall.ID))
		return dbError(err, "update hall")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("hall %d not found", hall.ID)
	}

	return nil
}

func (r *hallRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM halls WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete hall", zap.Error(err), zap.Int64("hall_id", id))
		return dbError(err, "delete hall")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("hall %d not found", id)
	}

	r.log.Info("Hall deleted", zap.Int64("hall_id", id))
	return nil
}

func (r *hallRepository) DeleteByName(ctx context.Context, cinemaID int64, name string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM halls WHERE cinema_id = $1 AND name = $2`, cinemaID, name)
	if err != nil {
		r.log.Error("Failed to delete hall by name",
			zap.Error(err),
			zap.Int64("cinema_id", cinemaID),
			zap.String("name", name),
		)
		return dbError(err, "delete hall")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("hall %s not found", name)
	}

	r.log.Info("Hall deleted", zap.Int64("cinema_id", cinemaID), zap.String("name", name))
	return nil
}

func (r *hallRepository) list(ctx context.Context, action, query string, args ...any) ([]*entity.Hall, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+action, zap.Error(err))
		return nil, dbError(err, action)
	}

	halls, err := collect(rows, scanHall)
	if err != nil {
		r.log.Error("Failed to scan hall row", zap.Error(err))
		return nil, dbError(err, action)
	}

	return halls, nil
}
