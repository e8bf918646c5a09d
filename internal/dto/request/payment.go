package request

type PaymentRequest struct {
	UserID int64   `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
