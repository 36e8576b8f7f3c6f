package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/restopay/payroll-backend-go/internal/config"
	"github.com/restopay/payroll-backend-go/internal/domain/auth"
	"github.com/restopay/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthService(t *testing.T) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(
		config.OperatorConfig{Email: "operator@example.com", PasswordHash: string(hash)},
		jwt.NewJWTService("test-secret", "12h"),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestLogin_Success(t *testing.T) {
	service := testAuthService(t)

	resp, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "operator@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	service := testAuthService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "Operator@Example.COM",
		Password: "correct horse",
	})
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	service := testAuthService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "operator@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	service := testAuthService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "intruder@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_ValidationErrors(t *testing.T) {
	service := testAuthService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)

	_, err = service.Login(context.Background(), auth.LoginRequest{
		Email: "not-an-email", Password: "x",
	})
	assert.Error(t, err)
}
