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
	"biograf/pkg/events"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

type TicketService interface {
	GetAllTickets(ctx context.Context) ([]response.TicketResponse, error)
	GetTicketByID(ctx context.Context, id int64) (*response.TicketResponse, error)
	GetUserTickets(ctx context.Context, userID int64) ([]response.TicketResponse, error)
	GetTicketDetailsByPaymentID(ctx context.Context, paymentID int64) (*response.TicketDetailsResponse, error)
	// IssueTickets creates one ticket per seat in a single transaction.
	IssueTickets(ctx context.Context, req *request.TicketRequest) ([]response.TicketResponse, error)
	UpdateTicketByID(ctx context.Context, id int64, req *request.TicketUpdateRequest) error
	DeleteTicketByID(ctx context.Context, id int64) error
}

type ticketService struct {
	ticketRepo repository.TicketRepository
	events     events.Publisher
	now        func() time.Time
	log        *zap.Logger
}

func NewTicketService(ticketRepo repository.TicketRepository, publisher events.Publisher, log *zap.Logger) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		events:     publisher,
		now:        time.Now,
		log:        log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) GetAllTickets(ctx context.Context) ([]response.TicketResponse, error) {
	tickets, err := s.ticketRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tickets: %w", err)
	}
	return response.TicketsToResponse(tickets), nil
}

func (s *ticketService) GetTicketByID(ctx context.Context, id int64) (*response.TicketResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketService) GetUserTickets(ctx context.Context, userID int64) ([]response.TicketResponse, error) {
	if err := requireIDs(map[string]int64{"userId": userID}); err != nil {
		return nil, err
	}

	tickets, err := s.ticketRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user tickets: %w", err)
	}
	return response.TicketsToResponse(tickets), nil
}

func (s *ticketService) GetTicketDetailsByPaymentID(ctx context.Context, paymentID int64) (*response.TicketDetailsResponse, error) {
	if err := requireIDs(map[string]int64{"paymentId": paymentID}); err != nil {
		return nil, err
	}

	details, err := s.ticketRepo.FindDetailsByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get ticket details: %w", err)
	}

	resp := response.TicketDetailsToResponse(details)
	return &resp, nil
}

func (s *ticketService) IssueTickets(ctx context.Context, req *request.TicketRequest) ([]response.TicketResponse, error) {
	if req == nil || len(req.SeatIDs) == 0 {
		return nil, apperror.InvalidInput("seat ids are required")
	}
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	seatIDs, err := uniqueIDs("seat_ids", req.SeatIDs)
	if err != nil {
		return nil, err
	}

	issuedAt := s.now().UTC()
	tickets, err := s.ticketRepo.IssueBatch(ctx, req.ShowtimeID, req.PaymentID, req.ReservationID, seatIDs, issuedAt)
	if err != nil {
		return nil, fmt.Errorf("issue tickets: %w", err)
	}

	s.publishIssued(ctx, req, seatIDs, tickets, issuedAt)

	return response.TicketsToResponse(tickets), nil
}

// publishIssued never fails the request. The request context may already be
// done once the response is written, so the publish gets its own deadline.
func (s *ticketService) publishIssued(ctx context.Context, req *request.TicketRequest, seatIDs []int64, tickets []*entity.Ticket, issuedAt time.Time) {
	ticketIDs := make([]int64, 0, len(tickets))
	for _, t := range tickets {
		ticketIDs = append(ticketIDs, t.ID)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.TicketsIssued{
		PaymentID:     req.PaymentID,
		ReservationID: req.ReservationID,
		ShowtimeID:    req.ShowtimeID,
		SeatIDs:       seatIDs,
		TicketIDs:     ticketIDs,
		IssuedAt:      issuedAt,
	}
	if err := s.events.PublishTicketsIssued(ctx, event); err != nil {
		s.log.Warn("Failed to publish tickets issued event",
			zap.Error(err),
			zap.Int64("payment_id", req.PaymentID),
			zap.Int64s("ticket_ids", ticketIDs),
		)
	}
}

func (s *ticketService) UpdateTicketByID(ctx context.Context, id int64, req *request.TicketUpdateRequest) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}
	if err := utils.Validate(req); err != nil {
		return err
	}

	// purchased_at is kept from the stored ticket
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	ticket.ShowtimeID = req.ShowtimeID
	ticket.SeatID = req.SeatID
	ticket.PaymentID = req.PaymentID
	ticket.ReservationID = req.ReservationID

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}

	s.log.Info("Ticket updated", zap.Int64("ticket_id", id))
	return nil
}

func (s *ticketService) DeleteTicketByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	if err := s.ticketRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
