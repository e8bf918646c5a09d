package request

// HallRequest creates a hall, optionally with its initial seats.
type HallRequest struct {
	Name     string            `json:"name" validate:"required,min=1,max=100"`
	Capacity int               `json:"capacity" validate:"required,gt=0"`
	CinemaID int64             `json:"cinema_id" validate:"required,gt=0"`
	Seats    []HallSeatRequest `json:"seats,omitempty" validate:"dive"`
}

type HallSeatRequest struct {
	Row    string `json:"row" validate:"required,min=1,max=5,alpha"`
	Number int    `json:"number" validate:"required,gt=0"`
}
