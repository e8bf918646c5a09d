package repository

import (
	"context"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"
	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CinemaRepository interface {
	CRUD[entity.Cinema]
	FindByName(ctx context.Context, name string) (*entity.Cinema, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Cinema, error)
	DeleteByName(ctx context.Context, name string) error
}

type cinemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaRepository(db database.PgxIface, log *zap.Logger) CinemaRepository {
	return &cinemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema")),
	}
}

const cinemaColumns = `c.id, c.name, c.location`

func scanCinema(row pgx.Row) (*entity.Cinema, error) {
	var cinema entity.Cinema
	if err := row.Scan(&cinema.ID, &cinema.Name, &cinema.Location); err != nil {
		return nil, err
	}
	return &cinema, nil
}

func (r *cinemaRepository) Create(ctx context.Context, cinema *entity.Cinema) error {
	query := `INSERT INTO cinemas (name, location) VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRow(ctx, query, cinema.Name, cinema.Location).Scan(&cinema.ID); err != nil {
		r.log.Error("Failed to create cinema", zap.Error(err), zap.String("name", cinema.Name))
		return dbError(err, "create cinema")
	}

	return nil
}

func (r *cinemaRepository) FindByID(ctx context.Context, id int64) (*entity.Cinema, error) {
	query := `SELECT ` + cinemaColumns + ` FROM cinemas c WHERE c.id = $1`

	cinema, err := scanCinema(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "cinema", id)
	}

	return cinema, nil
}

func (r *cinemaRepository) FindByName(ctx context.Context, name string) (*entity.Cinema, error) {
	query := `SELECT ` + cinemaColumns + ` FROM cinemas c WHERE c.name = $1`

	cinema, err := scanCinema(r.db.QueryRow(ctx, query, name))
	if err != nil {
		return nil, notFound(err, "cinema", name)
	}

	return cinema, nil
}

func (r *cinemaRepository) FindAll(ctx context.Context) ([]*entity.Cinema, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cinemaColumns+` FROM cinemas c ORDER BY c.name`)
	if err != nil {
		r.log.Error("Failed to list cinemas", zap.Error(err))
		return nil, dbError(err, "list cinemas")
	}

	cinemas, err := collect(rows, scanCinema)
	if err != nil {
		r.log.Error("Failed to scan cinema row", zap.Error(err))
		return nil, dbError(err, "scan cinemas")
	}

	return cinemas, nil
}

// FindByMovieID returns every cinema with at least one showtime of the movie.
func (r *cinemaRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Cinema, error) {
	query := `
		SELECT DISTINCT ` + cinemaColumns + `
		FROM cinemas c
		JOIN halls h ON h.cinema_id = c.id
		JOIN showtimes s ON s.hall_id = h.id
		WHERE s.movie_id = $1
		ORDER BY c.name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find cinemas by movie", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, dbError(err, "find cinemas by movie")
	}

	cinemas, err := collect(rows, scanCinema)
	if err != nil {
		r.log.Error("Failed to scan cinema row", zap.Error(err))
		return nil, dbError(err, "scan cinemas")
	}

	return cinemas, nil
}

func (r *cinemaRepository) Update(ctx context.Context, cinema *entity.Cinema) error {
	query := `UPDATE cinemas SET name = $2, location = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, cinema.ID, cinema.Name, cinema.Location)
	if err != nil {
		r.log.Error("Failed to update cinema", zap.Error(err), zap.Int64("cinema_id", cinema.ID))
		return dbError(err, "update cinema")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("cinema %d not found", cinema.ID)
	}

	return nil
}

func (r *cinemaRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM cinemas WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete cinema", zap.Error(err), zap.Int64("cinema_id", id))
		return dbError(err, "delete cinema")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("cinema %d not found", id)
	}

	r.log.Info("Cinema deleted", zap.Int64("cinema_id", id))
	return nil
}

func (r *cinemaRepository) DeleteByName(ctx context.Context, name string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM cinemas WHERE name = $1`, name)
	if err != nil {
		r.log.Error("Failed to delete cinema by name", zap.Error(err), zap.String("name", name))
		return dbError(err, "delete cinema")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("cinema %s not found", name)
	}

	r.log.Info("Cinema deleted", zap.String("name", name))
	return nil
}
