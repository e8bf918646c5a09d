package usecase

import (
	"context"
	"fmt"
	"time"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/internal/dto/response"
	"biograf/pkg/apperror"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type ReservationService interface {
	GetAllReservations(ctx context.Context) ([]response.ReservationResponse, error)
	GetReservationByID(ctx context.Context, id int64) (*response.ReservationResponse, error)
	GetReservationsByUserID(ctx context.Context, userID int64) ([]response.ReservationResponse, error)
	// CreateReservation claims every seat for the showtime or none of them.
	CreateReservation(ctx context.Context, userID int64, req *request.ReservationRequest) (*response.ReservationResponse, error)
	UpdateReservationByID(ctx context.Context, id, userID int64, req *request.ReservationRequest) error
	DeleteReservationByID(ctx context.Context, id int64) error
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	now             func() time.Time
	log             *zap.Logger
}

func NewReservationService(reservationRepo repository.ReservationRepository, log *zap.Logger) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		now:             time.Now,
		log:             log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) GetAllReservations(ctx context.Context) ([]response.ReservationResponse, error) {
	reservations, err := s.reservationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reservations: %w", err)
	}
	return response.ReservationsToResponse(reservations), nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, id int64) (*response.ReservationResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) GetReservationsByUserID(ctx context.Context, userID int64) ([]response.ReservationResponse, error) {
	if err := requireIDs(map[string]int64{"userId": userID}); err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get reservations by user: %w", err)
	}
	return response.ReservationsToResponse(reservations), nil
}

func (s *reservationService) CreateReservation(ctx context.Context, userID int64, req *request.ReservationRequest) (*response.ReservationResponse, error) {
	reservation, err := s.build(userID, req)
	if err != nil {
		return nil, err
	}
	reservation.ReservedAt = s.now().UTC()

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		if apperror.Is(err, apperror.KindConflict) {
			s.log.Info("Seat claim rejected",
				zap.Int64("user_id", userID),
				zap.Int64("showtime_id", reservation.ShowtimeID),
				zap.Int64s("seat_ids", reservation.SeatIDs),
			)
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) UpdateReservationByID(ctx context.Context, id, userID int64, req *request.ReservationRequest) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	reservation, err := s.build(userID, req)
	if err != nil {
		return err
	}
	reservation.ID = id

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	s.log.Info("Reservation updated", zap.Int64("reservation_id", id))
	return nil
}

func (s *reservationService) DeleteReservationByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.log.Info("Reservation deleted", zap.Int64("reservation_id", id))
	return nil
}

// build checks the request before any write. An empty seat list is rejected
// here so no reservation row is ever attempted.
func (s *reservationService) build(userID int64, req *request.ReservationRequest) (*entity.Reservation, error) {
	if req == nil || len(req.SeatIDs) == 0 {
		return nil, apperror.InvalidInput("seat ids are required")
	}
	if err := requireIDs(map[string]int64{"userId": userID}); err != nil {
		return nil, err
	}
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	seatIDs, err := uniqueIDs("seat_ids", req.SeatIDs)
	if err != nil {
		return nil, err
	}

	return &entity.Reservation{
		UserID:     userID,
		ShowtimeID: req.ShowtimeID,
		SeatIDs:    seatIDs,
	}, nil
}
