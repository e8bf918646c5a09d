package usecase

import (
	"context"
	"errors"
	"testing"

	"biograf/internal/data/entity"
	"biograf/internal/dto/request"
	"biograf/pkg/apperror"
	"biograf/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testJWT() utils.JWTConfig {
	return utils.JWTConfig{
		Secret:        "test-secret",
		ExpiryMinutes: 5,
		Issuer:        "biograf",
		Audience:      "biograf-clients",
	}
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: 7},
		Name:         "Dewi",
		Email:        "dewi@example.com",
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}

	t.Run("success", func(t *testing.T) {
		repo := new(userRepoMock)
		repo.On("FindByEmail", mock.Anything, "dewi@example.com").Return(user, nil)

		srv := NewAuthService(repo, testJWT(), testLogger())
		resp, err := srv.Login(context.Background(), &request.LoginRequest{Email: "dewi@example.com", Password: "hunter22"})
		require.NoError(t, err)

		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(7), resp.User.ID)

		claims, err := utils.ParseAccessToken(testJWT(), resp.Token)
		require.NoError(t, err)
		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.Equal(t, "admin", claims.Role)
		repo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(userRepoMock)
		repo.On("FindByEmail", mock.Anything, "dewi@example.com").Return(user, nil)

		srv := NewAuthService(repo, testJWT(), testLogger())
		_, err := srv.Login(context.Background(), &request.LoginRequest{Email: "dewi@example.com", Password: "wrong-one"})
		assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
		assert.Equal(t, "invalid email or password", apperror.MessageOf(err))
	})

	t.Run("unknown email looks the same", func(t *testing.T) {
		repo := new(userRepoMock)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").
			Return(nil, apperror.NotFound("user %s not found", "ghost@example.com"))

		srv := NewAuthService(repo, testJWT(), testLogger())
		_, err := srv.Login(context.Background(), &request.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
		assert.Equal(t, "invalid email or password", apperror.MessageOf(err))
	})

	t.Run("store failure stays persistence", func(t *testing.T) {
		repo := new(userRepoMock)
		repo.On("FindByEmail", mock.Anything, "dewi@example.com").
			Return(nil, apperror.Persistence("failed to find user", errors.New("conn reset")))

		srv := NewAuthService(repo, testJWT(), testLogger())
		_, err := srv.Login(context.Background(), &request.LoginRequest{Email: "dewi@example.com", Password: "hunter22"})
		assert.True(t, apperror.Is(err, apperror.KindPersistence))
	})

	t.Run("invalid request", func(t *testing.T) {
		srv := NewAuthService(new(userRepoMock), testJWT(), testLogger())
		_, err := srv.Login(context.Background(), &request.LoginRequest{Email: "not-an-email"})
		assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
	})
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "budi@example.com" &&
			u.Role == entity.RoleUser &&
			u.PasswordHash != "s3cret-pass" &&
			utils.CheckPasswordHash("s3cret-pass", u.PasswordHash)
	})).Return(nil)

	srv := NewUserService(repo, bcrypt.MinCost, testLogger())
	resp, err := srv.Register(context.Background(), &request.UserRequest{
		Name:     "Budi",
		Email:    "Budi@Example.com",
		Password: "s3cret-pass",
	}, entity.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "budi@example.com", resp.Email)
	assert.Equal(t, entity.RoleUser, resp.Role)
	repo.AssertExpectations(t)
}
