package adaptor

import (
	"net/http"

	"biograf/internal/data/entity"
	"biograf/internal/dto/request"
	"biograf/internal/usecase"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetAllUsers handles GET /api/Users/GetAllUsers (admin only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetUserByID handles GET /api/Users/GetUserById/{id} (admin only)
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// AddUser handles POST /api/Users/AddUser (public registration)
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, entity.RoleUser)
}

// AddAdmin handles POST /api/Users/AddAdmin (admin only)
func (h *UserHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, entity.RoleAdmin)
}

// UpdateUserByID handles PUT /api/Users/UpdateUserById/{id} (admin only)
func (h *UserHandler) UpdateUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.UserUpdateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.service.UpdateUserByID(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, r, err, "update user")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteUserByID handles DELETE /api/Users/DeleteUserById/{id} (admin only)
func (h *UserHandler) DeleteUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUserByID(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete user")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *UserHandler) register(w http.ResponseWriter, r *http.Request, role entity.UserRole) {
	var req request.UserRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), &req, role)
	if err != nil {
		handleServiceError(h.log, w, r, err, "register "+string(role))
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}
