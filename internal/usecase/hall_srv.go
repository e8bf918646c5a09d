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

type HallService interface {
	GetAllHalls(ctx context.Context) ([]response.HallResponse, error)
	// GetHallByID includes the hall's seat map.
	GetHallByID(ctx context.Context, id int64) (*response.HallResponse, error)
	GetHallsByCinemaID(ctx context.Context, cinemaID int64) ([]response.HallResponse, error)
	GetHallIDByShowtimeID(ctx context.Context, showtimeID int64) (*response.HallIDResponse, error)
	CreateHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error)
	UpdateHallByID(ctx context.Context, id int64, req *request.HallRequest) error
	UpdateHallByName(ctx context.Context, cinemaID int64, name string, req *request.HallRequest) error
	DeleteHallByID(ctx context.Context, id int64) error
	DeleteHallByName(ctx context.Context, cinemaID int64, name string) error
}

type hallService struct {
	repo    *repository.Repository
	details cache.Store[entity.ShowtimeDetails]
	log     *zap.Logger
}

func NewHallService(repo *repository.Repository, details cache.Store[entity.ShowtimeDetails], log *zap.Logger) HallService {
	return &hallService{
		repo:    repo,
		details: details,
		log:     log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) GetAllHalls(ctx context.Context) ([]response.HallResponse, error) {
	halls, err := s.repo.Hall.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get halls: %w", err)
	}
	return response.HallsToResponse(halls), nil
}

func (s *hallService) GetHallByID(ctx context.Context, id int64) (*response.HallResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hall: %w", err)
	}

	seats, err := s.repo.Seat.FindByHallID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hall seats: %w", err)
	}

	resp := response.HallToResponse(hall, seats)
	return &resp, nil
}

func (s *hallService) GetHallsByCinemaID(ctx context.Context, cinemaID int64) ([]response.HallResponse, error) {
	if err := requireIDs(map[string]int64{"cinemaId": cinemaID}); err != nil {
		return nil, err
	}

	halls, err := s.repo.Hall.FindByCinemaID(ctx, cinemaID)
	if err != nil {
		return nil, fmt.Errorf("get halls by cinema: %w", err)
	}
	return response.HallsToResponse(halls), nil
}

func (s *hallService) GetHallIDByShowtimeID(ctx context.Context, showtimeID int64) (*response.HallIDResponse, error) {
	if err := requireIDs(map[string]int64{"showtimeId": showtimeID}); err != nil {
		return nil, err
	}

	hallID, err := s.repo.Hall.FindIDByShowtimeID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("get hall by showtime: %w", err)
	}
	return &response.HallIDResponse{HallID: hallID}, nil
}

// CreateHall inserts the hall and its optional seat map in one transaction.
func (s *hallService) CreateHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error) {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Create hall validation failed", zap.Error(err))
		return nil, err
	}

	seats, err := seatMap(req)
	if err != nil {
		return nil, err
	}

	hall := &entity.Hall{
		CinemaID: req.CinemaID,
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
	}
	if err := s.repo.Hall.CreateWithSeats(ctx, hall, seats); err != nil {
		return nil, fmt.Errorf("create hall: %w", err)
	}

	s.log.Info("Hall created",
		zap.Int64("hall_id", hall.ID),
		zap.Int64("cinema_id", hall.CinemaID),
		zap.Int("seat_count", len(seats)),
	)

	resp := response.HallToResponse(hall, seats)
	return &resp, nil
}

func (s *hallService) UpdateHallByID(ctx context.Context, id int64, req *request.HallRequest) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find hall: %w", err)
	}

	return s.replace(ctx, hall, req)
}

func (s *hallService) UpdateHallByName(ctx context.Context, cinemaID int64, name string, req *request.HallRequest) error {
	hall, err := s.findByName(ctx, cinemaID, name)
	if err != nil {
		return err
	}

	return s.replace(ctx, hall, req)
}

func (s *hallService) DeleteHallByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	// seats and showtimes restrict the delete
	if err := s.repo.Hall.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete hall: %w", err)
	}

	s.log.Info("Hall deleted", zap.Int64("hall_id", id))
	return nil
}

func (s *hallService) DeleteHallByName(ctx context.Context, cinemaID int64, name string) error {
	if err := requireIDs(map[string]int64{"cinemaId": cinemaID}); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperror.InvalidInput("name is required")
	}

	if err := s.repo.Hall.DeleteByName(ctx, cinemaID, name); err != nil {
		return fmt.Errorf("delete hall: %w", err)
	}

	s.log.Info("Hall deleted", zap.Int64("cinema_id", cinemaID), zap.String("name", name))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *hallService) findByName(ctx context.Context, cinemaID int64, name string) (*entity.Hall, error) {
	if err := requireIDs(map[string]int64{"cinemaId": cinemaID}); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.InvalidInput("name is required")
	}

	hall, err := s.repo.Hall.FindByName(ctx, cinemaID, name)
	if err != nil {
		return nil, fmt.Errorf("find hall: %w", err)
	}
	return hall, nil
}

// replace overwrites name, capacity and cinema. The seat map is managed
// through the seat routes.
func (s *hallService) replace(ctx context.Context, hall *entity.Hall, req *request.HallRequest) error {
	if err := utils.Validate(req); err != nil {
		return err
	}

	hall.CinemaID = req.CinemaID
	hall.Name = strings.TrimSpace(req.Name)
	hall.Capacity = req.Capacity

	if err := s.repo.Hall.Update(ctx, hall); err != nil {
		return fmt.Errorf("update hall: %w", err)
	}
	s.details.Clear(ctx)

	s.log.Info("Hall updated", zap.Int64("hall_id", hall.ID), zap.String("name", hall.Name))
	return nil
}

// seatMap converts the request seats, rejecting duplicates and maps larger
// than the hall capacity.
func seatMap(req *request.HallRequest) ([]*entity.Seat, error) {
	if len(req.Seats) > req.Capacity {
		return nil, apperror.InvalidInput("hall has %d seats but capacity %d", len(req.Seats), req.Capacity)
	}

	seats := make([]*entity.Seat, 0, len(req.Seats))
	seen := make(map[string]struct{}, len(req.Seats))
	for _, s := range req.Seats {
		row := strings.ToUpper(strings.TrimSpace(s.Row))
		label := utils.SeatLabel(row, s.Number)
		if _, ok := seen[label]; ok {
			return nil, apperror.InvalidInput("seat %s listed twice", label)
		}
		seen[label] = struct{}{}

		seats = append(seats, &entity.Seat{Row: row, Number: s.Number})
	}
	return seats, nil
}
