package request

type SeatRequest struct {
	Row        string `json:"row" validate:"required,min=1,max=5,alpha"`
	Number     int    `json:"number" validate:"required,gt=0"`
	IsReserved bool   `json:"is_reserved"`
	HallID     int64  `json:"hall_id" validate:"required,gt=0"`
}
