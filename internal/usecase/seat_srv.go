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
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type SeatService interface {
	GetAllSeats(ctx context.Context) ([]response.SeatResponse, error)
	GetSeatByID(ctx context.Context, id int64) (*response.SeatResponse, error)
	GetSeatsByHallID(ctx context.Context, hallID int64) ([]response.SeatResponse, error)
	// GetSeatsByHallAndShowtime lists every seat of the hall with is_reserved
	// set when the seat is claimed for the showtime.
	GetSeatsByHallAndShowtime(ctx context.Context, hallID, showtimeID int64) ([]response.SeatResponse, error)
	GetAvailableSeatsByShowtime(ctx context.Context, showtimeID int64) ([]response.SeatResponse, error)
	CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error)
	UpdateSeatByID(ctx context.Context, id int64, req *request.SeatRequest) error
	DeleteSeatByID(ctx context.Context, id int64) error
	DeleteSeatByRowAndNumber(ctx context.Context, hallID int64, row string, number int) error
}

type seatService struct {
	seatRepo repository.SeatRepository
	log      *zap.Logger
}

func NewSeatService(seatRepo repository.SeatRepository, log *zap.Logger) SeatService {
	return &seatService{
		seatRepo: seatRepo,
		log:      log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) GetAllSeats(ctx context.Context) ([]response.SeatResponse, error) {
	seats, err := s.seatRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get seats: %w", err)
	}
	return response.SeatsToResponse(seats), nil
}

func (s *seatService) GetSeatByID(ctx context.Context, id int64) (*response.SeatResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	seat, err := s.seatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seat: %w", err)
	}

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) GetSeatsByHallID(ctx context.Context, hallID int64) ([]response.SeatResponse, error) {
	if err := requireIDs(map[string]int64{"hallId": hallID}); err != nil {
		return nil, err
	}

	seats, err := s.seatRepo.FindByHallID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("get seats by hall: %w", err)
	}
	return response.SeatsToResponse(seats), nil
}

func (s *seatService) GetSeatsByHallAndShowtime(ctx context.Context, hallID, showtimeID int64) ([]response.SeatResponse, error) {
	if err := requireIDs(map[string]int64{"hallId": hallID, "showtimeId": showtimeID}); err != nil {
		return nil, err
	}

	seats, err := s.seatRepo.FindWithReservationStatus(ctx, hallID, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("get seat status: %w", err)
	}

	s.log.Debug("Seat status computed",
		zap.Int64("hall_id", hallID),
		zap.Int64("showtime_id", showtimeID),
		zap.Int("seat_count", len(seats)),
	)
	return response.SeatStatusesToResponse(seats), nil
}

func (s *seatService) GetAvailableSeatsByShowtime(ctx context.Context, showtimeID int64) ([]response.SeatResponse, error) {
	if err := requireIDs(map[string]int64{"showtimeId": showtimeID}); err != nil {
		return nil, err
	}

	seats, err := s.seatRepo.FindAvailableByShowtime(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("get available seats: %w", err)
	}
	return response.SeatsToResponse(seats), nil
}

func (s *seatService) CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	seat := &entity.Seat{
		HallID:     req.HallID,
		Row:        strings.ToUpper(strings.TrimSpace(req.Row)),
		Number:     req.Number,
		IsReserved: req.IsReserved,
	}
	if err := s.seatRepo.Create(ctx, seat); err != nil {
		return nil, fmt.Errorf("create seat: %w", err)
	}

	s.log.Info("Seat created",
		zap.Int64("seat_id", seat.ID),
		zap.Int64("hall_id", seat.HallID),
		zap.String("seat", utils.SeatLabel(seat.Row, seat.Number)),
	)

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) UpdateSeatByID(ctx context.Context, id int64, req *request.SeatRequest) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}
	if err := utils.Validate(req); err != nil {
		return err
	}

	seat := &entity.Seat{
		Base:       entity.Base{ID: id},
		HallID:     req.HallID,
		Row:        strings.ToUpper(strings.TrimSpace(req.Row)),
		Number:     req.Number,
		IsReserved: req.IsReserved,
	}
	if err := s.seatRepo.Update(ctx, seat); err != nil {
		return fmt.Errorf("update seat: %w", err)
	}

	s.log.Info("Seat updated", zap.Int64("seat_id", id))
	return nil
}

func (s *seatService) DeleteSeatByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	// claims and tickets restrict the delete
	if err := s.seatRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete seat: %w", err)
	}

	s.log.Info("Seat deleted", zap.Int64("seat_id", id))
	return nil
}

func (s *seatService) DeleteSeatByRowAndNumber(ctx context.Context, hallID int64, row string, number int) error {
	if err := requireIDs(map[string]int64{"hallId": hallID, "number": int64(number)}); err != nil {
		return err
	}
	row = strings.ToUpper(strings.TrimSpace(row))
	if row == "" {
		return apperror.InvalidInput("row is required")
	}

	if err := s.seatRepo.DeleteByRowAndNumber(ctx, hallID, row, number); err != nil {
		return fmt.Errorf("delete seat: %w", err)
	}

	s.log.Info("Seat deleted", zap.Int64("hall_id", hallID), zap.String("seat", utils.SeatLabel(row, number)))
	return nil
}
