package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/internal/dto/response"
	"biograf/pkg/apperror"
	"biograf/pkg/cache"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetAllMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMoviesWithGenres(ctx context.Context) ([]response.MovieResponse, error)
	GetActiveMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetActiveMoviesByGenre(ctx context.Context, genreID int64) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	GetMovieByTitle(ctx context.Context, title string) (*response.MovieResponse, error)
	SearchMovieByTitle(ctx context.Context, fragment string) ([]response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovieByID(ctx context.Context, id int64, req *request.MovieRequest) error
	UpdateMovieByTitle(ctx context.Context, title string, req *request.MovieRequest) error
	DeleteMovieByID(ctx context.Context, id int64) error
	DeleteMovieByTitle(ctx context.Context, title string) error
}

type movieService struct {
	repo    *repository.Repository
	details cache.Store[entity.ShowtimeDetails]
	log     *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	details cache.Store[entity.ShowtimeDetails],
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:    repo,
		details: details,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMoviesWithGenres(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAllWithGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies with genres: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetActiveMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active movies: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetActiveMoviesByGenre(ctx context.Context, genreID int64) ([]response.MovieResponse, error) {
	if err := requireIDs(map[string]int64{"genreId": genreID}); err != nil {
		return nil, err
	}

	movies, err := s.repo.Movie.FindActiveByGenre(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("get active movies by genre: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovieByTitle(ctx context.Context, title string) (*response.MovieResponse, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.InvalidInput("title is required")
	}

	movie, err := s.repo.Movie.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("get movie by title: %w", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) SearchMovieByTitle(ctx context.Context, fragment string) ([]response.MovieResponse, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, apperror.InvalidInput("title is required")
	}

	movies, err := s.repo.Movie.SearchByTitle(ctx, fragment)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	// Validate request data
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	movie := &entity.Movie{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		DurationMinutes: req.Duration,
		IsActive:        req.IsActive,
		ImagePath:       req.ImagePath,
		CreatedAt:       now,
		UpdatedAt:       now,
		Genres:          genres,
	}

	// Movie row and genre links commit together
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int("genre_count", len(genres)),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovieByID(ctx context.Context, id int64, req *request.MovieRequest) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}

	return s.replace(ctx, movie, req)
}

func (s *movieService) UpdateMovieByTitle(ctx context.Context, title string, req *request.MovieRequest) error {
	movie, err := s.repo.Movie.FindByTitle(ctx, strings.TrimSpace(title))
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}

	return s.replace(ctx, movie, req)
}

func (s *movieService) DeleteMovieByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	// showtimes restrict the delete, genre links cascade
	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (s *movieService) DeleteMovieByTitle(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperror.InvalidInput("title is required")
	}

	if err := s.repo.Movie.DeleteByTitle(ctx, title); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("title", title))
	return nil
}

// ==================== HELPER METHODS ====================

// replace overwrites every field and the genre set of movie.
func (s *movieService) replace(ctx context.Context, movie *entity.Movie, req *request.MovieRequest) error {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err), zap.Int64("movie_id", movie.ID))
		return err
	}

	genres, err := s.resolveGenres(ctx, req.GenreIDs)
	if err != nil {
		return err
	}

	movie.Title = strings.TrimSpace(req.Title)
	movie.Description = req.Description
	movie.DurationMinutes = req.Duration
	movie.IsActive = req.IsActive
	movie.ImagePath = req.ImagePath
	movie.Genres = genres
	movie.UpdatedAt = time.Now().UTC()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	// showtime details embed the title
	s.details.Clear(ctx)

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int("genre_count", len(genres)),
	)
	return nil
}

// resolveGenres dedupes ids and loads the genres, rejecting unknown ones.
func (s *movieService) resolveGenres(ctx context.Context, ids []int64) ([]entity.Genre, error) {
	ids, err := uniqueIDs("genre_ids", ids)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []entity.Genre{}, nil
	}

	found, err := s.repo.Genre.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check genres: %w", err)
	}

	byID := make(map[int64]*entity.Genre, len(found))
	for _, g := range found {
		byID[g.ID] = g
	}

	genres := make([]entity.Genre, 0, len(ids))
	var missing []int64
	for _, id := range ids {
		g, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		genres = append(genres, *g)
	}
	if len(missing) > 0 {
		return nil, apperror.InvalidInput("genres %v do not exist", missing)
	}

	return genres, nil
}
