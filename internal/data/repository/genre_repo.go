package repository

import (
	"context"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"
	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	CRUD[entity.Genre]
	FindByName(ctx context.Context, name string) (*entity.Genre, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Genre, error)
	DeleteByName(ctx context.Context, name string) error
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

const genreColumns = `id, name`

func scanGenre(row pgx.Row) (*entity.Genre, error) {
	var genre entity.Genre
	if err := row.Scan(&genre.ID, &genre.Name); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	query := `INSERT INTO genres (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRow(ctx, query, genre.Name).Scan(&genre.ID); err != nil {
		r.log.Error("Failed to create genre", zap.Error(err), zap.String("name", genre.Name))
		return dbError(err, "create genre")
	}

	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = $1`

	genre, err := scanGenre(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "genre", id)
	}

	return genre, nil
}

func (r *genreRepository) FindByName(ctx context.Context, name string) (*entity.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE name = $1`

	genre, err := scanGenre(r.db.QueryRow(ctx, query, name))
	if err != nil {
		return nil, notFound(err, "genre", name)
	}

	return genre, nil
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Genre, error) {
	if len(ids) == 0 {
		return []*entity.Genre{}, nil
	}

	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = ANY($1) ORDER BY id`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find genres by ids", zap.Error(err), zap.Int64s("genre_ids", ids))
		return nil, dbError(err, "find genres")
	}

	genres, err := collect(rows, scanGenre)
	if err != nil {
		r.log.Error("Failed to scan genre row", zap.Error(err))
		return nil, dbError(err, "scan genres")
	}

	return genres, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list genres", zap.Error(err))
		return nil, dbError(err, "list genres")
	}

	genres, err := collect(rows, scanGenre)
	if err != nil {
		r.log.Error("Failed to scan genre row", zap.Error(err))
		return nil, dbError(err, "scan genres")
	}

	return genres, nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	query := `UPDATE genres SET name = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, genre.ID, genre.Name)
	if err != nil {
		r.log.Error("Failed to update genre", zap.Error(err), zap.Int64("genre_id", genre.ID))
		return dbError(err, "update genre")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("genre %d not found", genre.ID)
	}

	return nil
}

func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM genres WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete genre", zap.Error(err), zap.Int64("genre_id", id))
		return dbError(err, "delete genre")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("genre %d not found", id)
	}

	r.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}

func (r *genreRepository) DeleteByName(ctx context.Context, name string) error {
	query := `DELETE FROM genres WHERE name = $1`

	result, err := r.db.Exec(ctx, query, name)
	if err != nil {
		r.log.Error("Failed to delete genre by name", zap.Error(err), zap.String("name", name))
		return dbError(err, "delete genre")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("genre %s not found", name)
	}

	r.log.Info("Genre deleted", zap.String("name", name))
	return nil
}
