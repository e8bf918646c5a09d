package usecase

import (
	"context"
	"fmt"
	"strconv"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/internal/dto/response"
	"biograf/pkg/cache"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	GetAllShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error)
	GetShowtimeByID(ctx context.Context, id int64) (*response.ShowtimeResponse, error)
	GetShowtimesByMovieID(ctx context.Context, movieID int64) ([]response.ShowtimeResponse, error)
	GetShowtimesByMovieAndCinema(ctx context.Context, movieID, cinemaID int64) ([]response.ShowtimeResponse, error)
	// GetShowtimeDetails is served from cache when possible.
	GetShowtimeDetails(ctx context.Context, id int64) (*response.ShowtimeDetailsResponse, error)
	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	UpdateShowtimeByID(ctx context.Context, id int64, req *request.ShowtimeRequest) error
	DeleteShowtimeByID(ctx context.Context, id int64) error
}

type showtimeService struct {
	showtimeRepo repository.ShowtimeRepository
	details      cache.Store[entity.ShowtimeDetails]
	log          *zap.Logger
}

func NewShowtimeService(
	showtimeRepo repository.ShowtimeRepository,
	details cache.Store[entity.ShowtimeDetails],
	log *zap.Logger,
) ShowtimeService {
	return &showtimeService{
		showtimeRepo: showtimeRepo,
		details:      details,
		log:          log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetAllShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	showtimes, err := s.showtimeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get showtimes: %w", err)
	}
	return response.ShowtimesToResponse(showtimes), nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, id int64) (*response.ShowtimeResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	showtime, err := s.showtimeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get showtime: %w", err)
	}

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) GetShowtimesByMovieID(ctx context.Context, movieID int64) ([]response.ShowtimeResponse, error) {
	if err := requireIDs(map[string]int64{"movieId": movieID}); err != nil {
		return nil, err
	}

	showtimes, err := s.showtimeRepo.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get showtimes by movie: %w", err)
	}
	return response.ShowtimesToResponse(showtimes), nil
}

func (s *showtimeService) GetShowtimesByMovieAndCinema(ctx context.Context, movieID, cinemaID int64) ([]response.ShowtimeResponse, error) {
	if err := requireIDs(map[string]int64{"movieId": movieID, "cinemaId": cinemaID}); err != nil {
		return nil, err
	}

	showtimes, err := s.showtimeRepo.FindByMovieAndCinema(ctx, movieID, cinemaID)
	if err != nil {
		return nil, fmt.Errorf("get showtimes by movie and cinema: %w", err)
	}
	return response.ShowtimesToResponse(showtimes), nil
}

func (s *showtimeService) GetShowtimeDetails(ctx context.Context, id int64) (*response.ShowtimeDetailsResponse, error) {
	if err := requireIDs(map[string]int64{"showtimeId": id}); err != nil {
		return nil, err
	}

	key := strconv.FormatInt(id, 10)
	if cached, ok := s.details.Get(ctx, key); ok {
		resp := response.ShowtimeDetailsToResponse(cached)
		return &resp, nil
	}

	details, err := s.showtimeRepo.FindDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get showtime details: %w", err)
	}
	s.details.Set(ctx, key, details)

	resp := response.ShowtimeDetailsToResponse(details)
	return &resp, nil
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	showtime := &entity.Showtime{
		MovieID:  req.MovieID,
		HallID:   req.HallID,
		StartsAt: req.Time.UTC(),
	}
	if err := s.showtimeRepo.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.Int64("showtime_id", showtime.ID),
		zap.Int64("movie_id", showtime.MovieID),
		zap.Int64("hall_id", showtime.HallID),
		zap.Time("starts_at", showtime.StartsAt),
	)

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) UpdateShowtimeByID(ctx context.Context, id int64, req *request.ShowtimeRequest) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}
	if err := utils.Validate(req); err != nil {
		return err
	}

	showtime := &entity.Showtime{
		Base:     entity.Base{ID: id},
		MovieID:  req.MovieID,
		HallID:   req.HallID,
		StartsAt: req.Time.UTC(),
	}
	if err := s.showtimeRepo.Update(ctx, showtime); err != nil {
		return fmt.Errorf("update showtime: %w", err)
	}
	s.details.Delete(ctx, strconv.FormatInt(id, 10))

	s.log.Info("Showtime updated", zap.Int64("showtime_id", id))
	return nil
}

func (s *showtimeService) DeleteShowtimeByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	// reservations restrict the delete
	if err := s.showtimeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete showtime: %w", err)
	}
	s.details.Delete(ctx, strconv.FormatInt(id, 10))

	s.log.Info("Showtime deleted", zap.Int64("showtime_id", id))
	return nil
}
