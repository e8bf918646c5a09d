package repository

import (
	"context"

	"biograf/internal/data/entity"
	"biograf/pkg/apperror"
	"biograf/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	CRUD[entity.Showtime]
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Showtime, error)
	FindByMovieAndCinema(ctx context.Context, movieID, cinemaID int64) ([]*entity.Showtime, error)
	FindDetails(ctx context.Context, id int64) (*entity.ShowtimeDetails, error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

const showtimeColumns = `st.id, st.movie_id, st.hall_id, st.starts_at`

func scanShowtime(row pgx.Row) (*entity.Showtime, error) {
	var showtime entity.Showtime
	if err := row.Scan(&showtime.ID, &showtime.MovieID, &showtime.HallID, &showtime.StartsAt); err != nil {
		return nil, err
	}
	return &showtime, nil
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `INSERT INTO showtimes (movie_id, hall_id, starts_at) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRow(ctx, query, showtime.MovieID, showtime.HallID, showtime.StartsAt).Scan(&showtime.ID)
	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.Int64("movie_id", showtime.MovieID),
			zap.Int64("hall_id", showtime.HallID),
		)
		return dbError(err, "create showtime")
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id int64) (*entity.Showtime, error) {
	showtime, err := scanShowtime(r.db.QueryRow(ctx, `SELECT `+showtimeColumns+` FROM showtimes st WHERE st.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "showtime", id)
	}
	return showtime, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	return r.list(ctx, "list showtimes", `SELECT `+showtimeColumns+` FROM showtimes st ORDER BY st.starts_at, st.id`)
}

func (r *showtimeRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Showtime, error) {
	return r.list(ctx, "list showtimes by movie",
		`SELECT `+showtimeColumns+` FROM showtimes st WHERE st.movie_id = $1 ORDER BY st.starts_at, st.id`, movieID)
}

func (r *showtimeRepository) FindByMovieAndCinema(ctx context.Context, movieID, cinemaID int64) ([]*entity.Showtime, error) {
	query := `
		SELECT ` + showtimeColumns + `
		FROM showtimes st
		JOIN halls h ON h.id = st.hall_id
		WHERE st.movie_id = $1 AND h.cinema_id = $2
		ORDER BY st.starts_at, st.id
	`

	return r.list(ctx, "list showtimes by movie and cinema", query, movieID, cinemaID)
}

// FindDetails joins the showtime with its movie, hall and cinema.
func (r *showtimeRepository) FindDetails(ctx context.Context, id int64) (*entity.ShowtimeDetails, error) {
	query := `
		SELECT st.id, m.title, c.name, h.name, st.starts_at
		FROM showtimes st
		JOIN movies m ON m.id = st.movie_id
		JOIN halls h ON h.id = st.hall_id
		JOIN cinemas c ON c.id = h.cinema_id
		WHERE st.id = $1
	`

	var details entity.ShowtimeDetails
	err := r.db.QueryRow(ctx, query, id).Scan(
		&details.ShowtimeID,
		&details.MovieTitle,
		&details.CinemaName,
		&details.HallName,
		&details.StartsAt,
	)
	if err != nil {
		return nil, notFound(err, "showtime", id)
	}

	return &details, nil
}

// Update fails with Conflict when the showtime moves to another hall while
// seats are claimed for it.
func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `UPDATE showtimes SET movie_id = $2, hall_id = $3, starts_at = $4 WHERE id = $1`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		// FOR UPDATE waits for reservations holding the row FOR SHARE
		var hallID int64
		if err := tx.QueryRow(ctx, `SELECT hall_id FROM showtimes WHERE id = $1 FOR UPDATE`, showtime.ID).Scan(&hallID); err != nil {
			return notFound(err, "showtime", showtime.ID)
		}

		if hallID != showtime.HallID {
			var claimed bool
			err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservation_seats WHERE showtime_id = $1)`, showtime.ID).
				Scan(&claimed)
			if err != nil {
				return dbError(err, "check showtime claims")
			}
			if claimed {
				return apperror.Conflict("showtime %d has reserved seats and cannot change hall", showtime.ID)
			}
		}

		if _, err := tx.Exec(ctx, query, showtime.ID, showtime.MovieID, showtime.HallID, showtime.StartsAt); err != nil {
			return dbError(err, "update showtime")
		}
		return nil
	})
	if err != nil {
		r.log.Warn("Failed to update showtime", zap.Error(err), zap.Int64("showtime_id", showtime.ID))
		return dbError(err, "update showtime")
	}

	return nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete showtime", zap.Error(err), zap.Int64("showtime_id", id))
		return dbError(err, "delete showtime")
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("showtime %d not found", id)
	}

	r.log.Info("Showtime deleted", zap.Int64("showtime_id", id))
	return nil
}

func (r *showtimeRepository) list(ctx context.Context, action, query string, args ...any) ([]*entity.Showtime, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+action, zap.Error(err))
		return nil, dbError(err, action)
	}

	showtimes, err := collect(rows, scanShowtime)
	if err != nil {
		r.log.Error("Failed to scan showtime row", zap.Error(err))
		return nil, dbError(err, action)
	}

	return showtimes, nil
}
