package repository

import (
	"context"
	"fmt"
	"strings"

	"biograf/internal/data/entity"
	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieGenreRepository interface {
	// Bridge table operations, run inside the caller's transaction
	Replace(ctx context.Context, tx pgx.Tx, movieID int64, genreIDs []int64) error
	InsertBatch(ctx context.Context, tx pgx.Tx, movieID int64, genreIDs []int64) error

	FindGenresByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]entity.Genre, error)
}

type movieGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieGenreRepository(db database.PgxIface, log *zap.Logger) MovieGenreRepository {
	return &movieGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_genre")),
	}
}

// Replace swaps the movie's genre set for genreIDs.
func (r *movieGenreRepository) Replace(ctx context.Context, tx pgx.Tx, movieID int64, genreIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movieID); err != nil {
		r.log.Error("Failed to clear movie genres", zap.Error(err), zap.Int64("movie_id", movieID))
		return dbError(err, "clear movie genres")
	}

	return r.InsertBatch(ctx, tx, movieID, genreIDs)
}

func (r *movieGenreRepository) InsertBatch(ctx context.Context, tx pgx.Tx, movieID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}

	// Build batch insert, movie id is shared as $1
	values := make([]string, len(genreIDs))
	args := make([]any, 0, len(genreIDs)+1)
	args = append(args, movieID)
	for i, genreID := range genreIDs {
		values[i] = fmt.Sprintf("($1, $%d)", i+2)
		args = append(args, genreID)
	}

	query := `INSERT INTO movie_genres (movie_id, genre_id) VALUES ` + strings.Join(values, ", ")

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to link movie genres",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.Int64s("genre_ids", genreIDs),
		)
		return dbError(err, "link movie genres")
	}

	return nil
}

func (r *movieGenreRepository) FindGenresByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]entity.Genre, error) {
	result := make(map[int64][]entity.Genre, len(movieIDs))
	if len(movieIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT mg.movie_id, g.id, g.name
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = ANY($1)
		ORDER BY mg.movie_id, g.id
	`

	rows, err := r.db.Query(ctx, query, movieIDs)
	if err != nil {
		r.log.Error("Failed to find movie genres", zap.Error(err), zap.Int64s("movie_ids", movieIDs))
		return nil, dbError(err, "find movie genres")
	}
	defer rows.Close()

	for rows.Next() {
		var movieID int64
		var genre entity.Genre
		if err := rows.Scan(&movieID, &genre.ID, &genre.Name); err != nil {
			r.log.Error("Failed to scan movie genre row", zap.Error(err))
			return nil, dbError(err, "scan movie genres")
		}
		result[movieID] = append(result[movieID], genre)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "read movie genres")
	}

	return result, nil
}
