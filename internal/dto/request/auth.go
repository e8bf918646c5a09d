package request

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserRequest registers a user (AddUser) or an admin (AddAdmin).
type UserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UserUpdateRequest replaces a user. An empty password keeps the stored hash.
type UserUpdateRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}
