package service

import (
	"context"
	"log/slog"

	"settleup/internal/auth"
	"settleup/internal/models"
)

// AuthService handles registration and login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// Register creates a new user account and returns the user with a session token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	user, err := s.authenticator.Register(ctx, username, email, password)
	if err != nil {
		slog.Warn("Registration failed", "username", username, "error", err)
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	slog.Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// Login authenticates by username or email and returns the user with a
// session token.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	user, err := s.authenticator.Authenticate(ctx, identifier, password)
	if err != nil {
		slog.Warn("Login failed", "identifier", identifier, "error", err)
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	slog.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}
