package service

import (
	"context"
	"log/slog"

	"github.com/splitease/backend/internal/auth"
	"github.com/splitease/backend/internal/models"
	"github.com/splitease/backend/internal/storage"
)

// AuthService wraps registration and login for the HTTP layer.
type AuthService struct {
	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(users storage.UserStore, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		authenticator: auth.NewPasswordAuthenticator(users),
		jwtManager:    jwtManager,
	}
}

// Register creates a new user account and returns it with a session token.
func (s *AuthService) Register(ctx context.Context, username, firstName, password string) (*models.User, string, error) {
	slog.Info("Register request", "username", username)

	if username == "" {
		return nil, "", auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Register(ctx, username, firstName, password)
	if err != nil {
		slog.Warn("Registration failed", "username", username, "error", err)
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	slog.Info("User registered successfully", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	slog.Info("Login request", "username", username)

	if username == "" || password == "" {
		return nil, "", auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		slog.Warn("Login failed", "username", username, "error", err)
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	slog.Info("User logged in successfully", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}
