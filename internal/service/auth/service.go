package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/restopay/payroll-backend-go/internal/config"
	"github.com/restopay/payroll-backend-go/internal/domain/auth"
	"github.com/restopay/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceImpl authenticates the single operator account from config.
// The tool has no user store; one operator runs the payroll reports.
type AuthServiceImpl struct {
	operator   config.OperatorConfig
	jwtService jwt.Service
	log        *slog.Logger
}

func NewAuthService(operator config.OperatorConfig, jwtService jwt.Service, log *slog.Logger) auth.AuthService {
	return &AuthServiceImpl{
		operator:   operator,
		jwtService: jwtService,
		log:        log,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if !strings.EqualFold(req.Email, s.operator.Email) {
		s.log.Warn("login attempt with unknown email", "email", req.Email)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("login attempt with wrong password", "email", req.Email)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(s.operator.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.log.Info("operator logged in", "email", s.operator.Email)
	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
