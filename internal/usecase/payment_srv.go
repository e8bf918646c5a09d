package usecase

import (
	"context"
	"fmt"
	"time"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/internal/dto/response"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	GetAllPayments(ctx context.Context) ([]response.PaymentResponse, error)
	GetPaymentByID(ctx context.Context, id int64) (*response.PaymentResponse, error)
	GetPaymentsByUserID(ctx context.Context, userID int64) ([]response.PaymentResponse, error)
	GetPaymentWithTickets(ctx context.Context, id int64) (*response.PaymentResponse, error)
	CreatePayment(ctx context.Context, userID int64, req *request.PaymentRequest) (*response.PaymentResponse, error)
	UpdatePaymentByID(ctx context.Context, id, userID int64, req *request.PaymentRequest) error
	DeletePaymentByID(ctx context.Context, id int64) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	now         func() time.Time
	log         *zap.Logger
}

func NewPaymentService(paymentRepo repository.PaymentRepository, log *zap.Logger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		now:         time.Now,
		log:         log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) GetAllPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	return response.PaymentsToResponse(payments), nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, id int64) (*response.PaymentResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) GetPaymentsByUserID(ctx context.Context, userID int64) ([]response.PaymentResponse, error) {
	if err := requireIDs(map[string]int64{"userId": userID}); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get payments by user: %w", err)
	}
	return response.PaymentsToResponse(payments), nil
}

func (s *paymentService) GetPaymentWithTickets(ctx context.Context, id int64) (*response.PaymentResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindWithTickets(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment with tickets: %w", err)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, userID int64, req *request.PaymentRequest) (*response.PaymentResponse, error) {
	if err := requireIDs(map[string]int64{"userId": userID}); err != nil {
		return nil, err
	}
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		UserID: userID,
		Amount: req.Amount,
		PaidAt: s.now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) UpdatePaymentByID(ctx context.Context, id, userID int64, req *request.PaymentRequest) error {
	if err := requireIDs(map[string]int64{"id": id, "userId": userID}); err != nil {
		return err
	}
	if err := utils.Validate(req); err != nil {
		return err
	}

	// paid_at is kept from the stored payment
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	payment.UserID = userID
	payment.Amount = req.Amount

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	s.log.Info("Payment updated", zap.Int64("payment_id", id))
	return nil
}

func (s *paymentService) DeletePaymentByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	// tickets restrict the delete
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	s.log.Info("Payment deleted", zap.Int64("payment_id", id))
	return nil
}
