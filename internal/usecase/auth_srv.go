package usecase

import (
	"context"
	"fmt"
	"strings"

	"biograf/internal/data/repository"
	"biograf/internal/dto/request"
	"biograf/internal/dto/response"
	"biograf/pkg/apperror"
	"biograf/pkg/utils"

	"go.uber.org/zap"
)

const invalidCredentials = "invalid email or password"

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwt      utils.JWTConfig
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, jwt utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		jwt:      jwt,
		log:      log.With(zap.String("service", "auth")),
	}
}

// Login checks the password against the stored bcrypt hash and issues an
// access token. Unknown email and wrong password look the same to callers.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validasi input
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	// 2. Cari user by email
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			s.log.Warn("Login failed: unknown email")
			return nil, apperror.Unauthorized(invalidCredentials)
		}
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("login: %w", err)
	}

	// 3. Verifikasi password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed: wrong password", zap.Int64("user_id", user.ID))
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	// 4. Issue token
	token, err := utils.NewAccessToken(s.jwt, user.ID, user.Name, string(user.Role))
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, apperror.Wrap(apperror.KindUnknown, "failed to issue token", err)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	resp := response.AuthToResponse(user, token.Token, token.ExpiresAt)
	return &resp, nil
}
