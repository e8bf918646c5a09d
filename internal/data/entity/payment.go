package entity

import "time"

type Payment struct {
	Base
	UserID int64     `db:"user_id"`
	Amount float64   `db:"amount"`
	PaidAt time.Time `db:"paid_at"`

	Tickets []Ticket `db:"-"`
}
