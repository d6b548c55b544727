package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/config"
	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/auth"
)

// AuthService authenticates the administrative user.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	cfg        *config.Config
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(cfg *config.Config, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		cfg:        cfg,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks admin credentials and issues a token.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Login != s.cfg.Auth.AdminLogin || !auth.CheckPassword(req.Password, s.cfg.Auth.AdminPasswordHash) {
		s.logger.Warn().Str("login", req.Login).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(req.Login, "admin")
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate token")
		return nil, err
	}

	return &dto.LoginResponse{Token: token, ExpiresIn: expiresIn}, nil
}
