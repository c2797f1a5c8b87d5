package auth_service

import (
	"errors"
	"strings"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"
	"gym-crm/internal/service"

	"go.uber.org/zap"
)

type authService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, log *zap.Logger) service.AuthService {
	return &authService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *authService) Authenticate(username, password string) (*models.User, error) {
	if isBlank(username) || isBlank(password) {
		return nil, apperrors.ErrNotAuthenticated
	}

	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.log.Debug("authentication failed", zap.String("username", username))
			return nil, apperrors.ErrNotAuthenticated
		}
		return nil, err
	}

	// Пароль сравнивается как есть, без хеширования
	if user.Password != password || !user.IsActive {
		s.log.Debug("authentication failed", zap.String("username", username))
		return nil, apperrors.ErrNotAuthenticated
	}

	return user, nil
}

func (s *authService) IsUserActive(username string) bool {
	if isBlank(username) {
		return false
	}
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return false
	}
	return user.IsActive
}

func (s *authService) ChangePassword(username, oldPassword, newPassword string) error {
	if isBlank(username) || isBlank(oldPassword) || isBlank(newPassword) {
		return apperrors.Validationf("username and both passwords are required")
	}

	user, err := s.Authenticate(username, oldPassword)
	if err != nil {
		return err
	}

	user.Password = newPassword
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	s.log.Info("password changed", zap.String("username", user.Username))
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
