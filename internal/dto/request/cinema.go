package request

type CinemaRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=150"`
	Location string `json:"location" validate:"required,min=1,max=255"`
}
