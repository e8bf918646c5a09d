package repository

import (
	"context"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"
	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// Create and Update persist movie.Genres as the link set in the same transaction.
	CRUD[entity.Movie]

	FindAllWithGenres(ctx context.Context) ([]*entity.Movie, error)
	FindActive(ctx context.Context) ([]*entity.Movie, error)
	FindActiveByGenre(ctx context.Context, genreID int64) ([]*entity.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)
	SearchByTitle(ctx context.Context, fragment string) ([]*entity.Movie, error)
	DeleteByTitle(ctx context.Context, title string) error
}

type movieRepository struct {
	db     database.PgxIface
	genres MovieGenreRepository
	log    *zap.Logger
}

func NewMovieRepository(db database.PgxIface, genres MovieGenreRepository, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:     db,
		genres: genres,
		log:    log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `m.id, m.title, m.description, m.duration_minutes, m.is_active, m.image_path, m.created_at, m.updated_at`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.DurationMinutes,
		&movie.IsActive,
		&movie.ImagePath,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, description, duration_minutes, is_active, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			movie.Title,
			movie.Description,
			movie.DurationMinutes,
			movie.IsActive,
			movie.ImagePath,
			movie.CreatedAt,
			movie.UpdatedAt,
		).Scan(&movie.ID)
		if err != nil {
			return dbError(err, "create movie")
		}

		return r.genres.InsertBatch(ctx, tx, movie.ID, movie.GenreIDs())
	})
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
			zap.Int64s("genre_ids", movie.GenreIDs()),
		)
		return dbError(err, "create movie")
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies m WHERE m.id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "movie", id)
	}

	if err := r.attachGenres(ctx, []*entity.Movie{movie}); err != nil {
		return nil, err
	}

	return movie, nil
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies m WHERE LOWER(m.title) = LOWER($1) ORDER BY m.id LIMIT 1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, title))
	if err != nil {
		return nil, notFound(err, "movie", title)
	}

	if err := r.attachGenres(ctx, []*entity.Movie{movie}); err != nil {
		return nil, err
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return r.list(ctx, "list movies", `SELECT `+movieColumns+` FROM movies m ORDER BY m.id`)
}

func (r *movieRepository) FindAllWithGenres(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.attachGenres(ctx, movies); err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *movieRepository) FindActive(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := r.list(ctx, "list active movies",
		`SELECT `+movieColumns+` FROM movies m WHERE m.is_active ORDER BY m.id`)
	if err != nil {
		return nil, err
	}

	if err := r.attachGenres(ctx, movies); err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *movieRepository) FindActiveByGenre(ctx context.Context, genreID int64) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies m
		JOIN movie_genres mg ON mg.movie_id = m.id
		WHERE m.is_active AND mg.genre_id = $1
		ORDER BY m.id
	`

	movies, err := r.list(ctx, "list active movies by genre", query, genreID)
	if err != nil {
		return nil, err
	}

	if err := r.attachGenres(ctx, movies); err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *movieRepository) SearchByTitle(ctx context.Context, fragment string) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies m WHERE m.title ILIKE '%' || $1 || '%' ORDER BY m.title, m.id`

	return r.list(ctx, "search movies", query, fragment)
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, duration_minutes = $4, is_active = $5,
		    image_path = $6, updated_at = $7
		WHERE id = $1
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query,
			movie.ID,
			movie.Title,
			movie.Description,
			movie.DurationMinutes,
			movie.IsActive,
			movie.ImagePath,
			movie.UpdatedAt,
		)
		if err != nil {
			return dbError(err, "update movie")
		}
		if result.RowsAffected() == 0 {
			return apperror.NotFound("movie %d not found", movie.ID)
		}

		return r.genres.Replace(ctx, tx, movie.ID, movie.GenreIDs())
	})
	if err != nil {
		r.log.Error("Failed to update movie", zap.Error(err), zap.Int64("movie_id", movie.ID))
		return dbError(err, "update movie")
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie", zap.Error(err), zap.Int64("movie_id", id))
		return dbError(err, "delete movie")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("movie %d not found", id)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (r *movieRepository) DeleteByTitle(ctx context.Context, title string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE LOWER(title) = LOWER($1)`, title)
	if err != nil {
		r.log.Error("Failed to delete movie by title", zap.Error(err), zap.String("title", title))
		return dbError(err, "delete movie")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("movie %s not found", title)
	}

	r.log.Info("Movie deleted", zap.String("title", title), zap.Int64("count", result.RowsAffected()))
	return nil
}

// ==================== HELPER METHODS ====================

func (r *movieRepository) list(ctx context.Context, action, query string, args ...any) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+action, zap.Error(err))
		return nil, dbError(err, action)
	}

	movies, err := collect(rows, scanMovie)
	if err != nil {
		r.log.Error("Failed to scan movie row", zap.Error(err))
		return nil, dbError(err, action)
	}

	return movies, nil
}

func (r *movieRepository) attachGenres(ctx context.Context, movies []*entity.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make([]int64, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}

	byMovie, err := r.genres.FindGenresByMovieIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, m := range movies {
		m.Genres = byMovie[m.ID]
		if m.Genres == nil {
			m.Genres = []entity.Genre{}
		}
	}

	return nil
}
