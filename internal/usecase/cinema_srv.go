package usecase

import (
	"context"
	"fmt"
	"strings"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/internal/dto/response"
	"biograf/pkg/apperror"
	"biograf/pkg/cache"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type CinemaService interface {
	GetAllCinemas(ctx context.Context) ([]response.CinemaResponse, error)
	GetCinemaByID(ctx context.Context, id int64) (*response.CinemaResponse, error)
	GetCinemaByName(ctx context.Context, name string) (*response.CinemaResponse, error)
	GetCinemasByMovieID(ctx context.Context, movieID int64) ([]response.CinemaResponse, error)
	CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error)
	UpdateCinemaByID(ctx context.Context, id int64, req *request.CinemaRequest) error
	UpdateCinemaByName(ctx context.Context, name string, req *request.CinemaRequest) error
	DeleteCinemaByID(ctx context.Context, id int64) error
	DeleteCinemaByName(ctx context.Context, name string) error
}

type cinemaService struct {
	cinemaRepo repository.CinemaRepository
	details    cache.Store[entity.ShowtimeDetails]
	log        *zap.Logger
}

func NewCinemaService(cinemaRepo repository.CinemaRepository, details cache.Store[entity.ShowtimeDetails], log *zap.Logger) CinemaService {
	return &cinemaService{
		cinemaRepo: cinemaRepo,
		details:    details,
		log:        log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) GetAllCinemas(ctx context.Context) ([]response.CinemaResponse, error) {
	cinemas, err := s.cinemaRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cinemas: %w", err)
	}
	return response.CinemasToResponse(cinemas), nil
}

func (s *cinemaService) GetCinemaByID(ctx context.Context, id int64) (*response.CinemaResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	cinema, err := s.cinemaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cinema: %w", err)
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) GetCinemaByName(ctx context.Context, name string) (*response.CinemaResponse, error) {
	cinema, err := s.findByName(ctx, name)
	if err != nil {
		return nil, err
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

// GetCinemasByMovieID lists the cinemas with at least one showtime of the movie.
func (s *cinemaService) GetCinemasByMovieID(ctx context.Context, movieID int64) ([]response.CinemaResponse, error) {
	if err := requireIDs(map[string]int64{"movieId": movieID}); err != nil {
		return nil, err
	}

	cinemas, err := s.cinemaRepo.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get cinemas by movie: %w", err)
	}
	return response.CinemasToResponse(cinemas), nil
}

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	cinema := &entity.Cinema{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
	}
	if err := s.cinemaRepo.Create(ctx, cinema); err != nil {
		return nil, fmt.Errorf("create cinema: %w", err)
	}

	s.log.Info("Cinema created", zap.Int64("cinema_id", cinema.ID), zap.String("name", cinema.Name))

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) UpdateCinemaByID(ctx context.Context, id int64, req *request.CinemaRequest) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	cinema, err := s.cinemaRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find cinema: %w", err)
	}

	return s.replace(ctx, cinema, req)
}

func (s *cinemaService) UpdateCinemaByName(ctx context.Context, name string, req *request.CinemaRequest) error {
	cinema, err := s.findByName(ctx, name)
	if err != nil {
		return err
	}

	return s.replace(ctx, cinema, req)
}

func (s *cinemaService) DeleteCinemaByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	// halls restrict the delete
	if err := s.cinemaRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete cinema: %w", err)
	}

	s.log.Info("Cinema deleted", zap.Int64("cinema_id", id))
	return nil
}

func (s *cinemaService) DeleteCinemaByName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperror.InvalidInput("name is required")
	}

	if err := s.cinemaRepo.DeleteByName(ctx, name); err != nil {
		return fmt.Errorf("delete cinema: %w", err)
	}

	s.log.Info("Cinema deleted", zap.String("name", name))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *cinemaService) findByName(ctx context.Context, name string) (*entity.Cinema, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.InvalidInput("name is required")
	}

	cinema, err := s.cinemaRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	return cinema, nil
}

func (s *cinemaService) replace(ctx context.Context, cinema *entity.Cinema, req *request.CinemaRequest) error {
	if err := utils.Validate(req); err != nil {
		return err
	}

	cinema.Name = strings.TrimSpace(req.Name)
	cinema.Location = strings.TrimSpace(req.Location)

	if err := s.cinemaRepo.Update(ctx, cinema); err != nil {
		return fmt.Errorf("update cinema: %w", err)
	}
	s.details.Clear(ctx)

	s.log.Info("Cinema updated", zap.Int64("cinema_id", cinema.ID), zap.String("name", cinema.Name))
	return nil
}
