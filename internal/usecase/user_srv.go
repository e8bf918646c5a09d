package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"biograf/internal/data/entity"
	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/internal/dto/response"
	"biograf/pkg/apperror"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error)
	// Register creates a user with the given role. The password is stored as a bcrypt hash.
	Register(ctx context.Context, req *request.UserRequest, role entity.UserRole) (*response.UserResponse, error)
	UpdateUserByID(ctx context.Context, id int64, req *request.UserUpdateRequest) error
	DeleteUserByID(ctx context.Context, id int64) error
}

type userService struct {
	userRepo   repository.UserRepository
	bcryptCost int
	log        *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, bcryptCost int, log *zap.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		log:        log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetAllUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return response.UsersToResponse(users), nil
}

func (us *userService) GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return nil, err
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) Register(ctx context.Context, req *request.UserRequest, role entity.UserRole) (*response.UserResponse, error) {
	if err := utils.Validate(req); err != nil {
		us.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password, us.bcryptCost)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperror.Wrap(apperror.KindUnknown, "failed to hash password", err)
	}

	user := &entity.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	// unique(email) answers Conflict for duplicates
	if err := us.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	us.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateUserByID(ctx context.Context, id int64, req *request.UserUpdateRequest) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}
	if err := utils.Validate(req); err != nil {
		return err
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Role = entity.UserRole(req.Role)

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password, us.bcryptCost)
		if err != nil {
			return apperror.Wrap(apperror.KindUnknown, "failed to hash password", err)
		}
		user.PasswordHash = hash
	}

	if err := us.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	us.log.Info("User updated", zap.Int64("user_id", id))
	return nil
}

func (us *userService) DeleteUserByID(ctx context.Context, id int64) error {
	if err := requireIDs(map[string]int64{"id": id}); err != nil {
		return err
	}

	if err := us.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	us.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}
