package service

import (
	"context"
	"errors"
	"fmt"

	"access-log-service/internal/models"
	"access-log-service/internal/repository"
	"access-log-service/pkg/logger"
	"access-log-service/pkg/utils"
)

type AuthService struct {
	userRepo   repository.UserRepository
	logService *LogService
}

func NewAuthService(userRepo repository.UserRepository, logService *LogService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		logService: logService,
	}
}

// LoginResult is returned for a successful login
type LoginResult struct {
	UserID uint `json:"user_id"`
}

// Login checks the credentials and records the attempt as a log entry.
// The attempt is recorded under the username the client sent, whether
// or not such a user exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if isBlank(username) || password == "" {
		return nil, newValidationError("username and password are required")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// some collations match usernames case-insensitively
	if user == nil || user.Username != username || !utils.ComparePassword(user.Password, password) {
		s.recordAttempt(ctx, username, models.ActionLoginFailed)
		return nil, ErrInvalidCredentials
	}

	s.recordAttempt(ctx, username, models.ActionLoginSuccessful)
	return &LoginResult{UserID: user.ID}, nil
}

// recordAttempt never fails the login; a backend without a write path
// still authenticates.
func (s *AuthService) recordAttempt(ctx context.Context, username, action string) {
	if _, err := s.logService.Create(ctx, username, action); err != nil {
		logger.Warn().Err(err).Str("username", username).Str("action", action).Msg("failed to record login attempt")
	}
}
