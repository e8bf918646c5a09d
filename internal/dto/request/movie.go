package request

// MovieRequest is used for create and for full replace updates.
type MovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description,omitempty" validate:"max=2000"`
	Duration    int     `json:"duration" validate:"required,gt=0,max=999"`
	IsActive    bool    `json:"is_active"`
	ImagePath   string  `json:"image_path,omitempty" validate:"max=500"`
	GenreIDs    []int64 `json:"genre_ids,omitempty" validate:"dive,gt=0"`
}
