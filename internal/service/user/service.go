package user_service

import (
	"errors"
	"strings"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"
	"gym-crm/internal/service"
	"gym-crm/pkg/credentials"

	"go.uber.org/zap"
)

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) service.UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

// Create создаёт пользователя со сгенерированными username и паролем
func (s *userService) Create(firstName, lastName string) (*models.User, error) {
	if err := validateNames(firstName, lastName); err != nil {
		return nil, err
	}

	// Все существующие username нужны для генерации уникального
	existing, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	usernames := make([]string, 0, len(existing))
	for _, u := range existing {
		usernames = append(usernames, u.Username)
	}

	user := &models.User{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Username:  credentials.GenerateUsername(firstName, lastName, usernames),
		Password:  credentials.GeneratePassword(),
		IsActive:  true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.log.Info("user created", zap.String("username", user.Username))
	return user, nil
}

func (s *userService) Update(user *models.User) (*models.User, error) {
	if user == nil {
		return nil, apperrors.Validationf("user cannot be nil")
	}
	if user.ID == 0 {
		return nil, apperrors.Validationf("user id is required for update")
	}

	var errs apperrors.FieldErrors
	if isBlank(user.FirstName) {
		errs = append(errs, apperrors.FieldError{Field: "first_name", Message: "cannot be blank"})
	}
	if isBlank(user.LastName) {
		errs = append(errs, apperrors.FieldError{Field: "last_name", Message: "cannot be blank"})
	}
	if isBlank(user.Username) {
		errs = append(errs, apperrors.FieldError{Field: "username", Message: "cannot be blank"})
	}
	if isBlank(user.Password) {
		errs = append(errs, apperrors.FieldError{Field: "password", Message: "cannot be blank"})
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(user.ID); err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	user.Username = strings.TrimSpace(user.Username)
	user.Password = strings.TrimSpace(user.Password)

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.log.Info("user updated", zap.Int64("id", user.ID))
	return user, nil
}

func (s *userService) Activate(username string) (bool, error) {
	return s.changeActiveStatus(username, true)
}

func (s *userService) Deactivate(username string) (bool, error) {
	return s.changeActiveStatus(username, false)
}

func (s *userService) Delete(user *models.User) error {
	if user == nil {
		return apperrors.Validationf("user cannot be nil")
	}
	if err := s.userRepo.Delete(user.ID); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Int64("id", user.ID))
	return nil
}

func (s *userService) FindByID(id int64) (*models.User, error) {
	if id == 0 {
		return nil, apperrors.NotFound("user")
	}
	return s.userRepo.GetByID(id)
}

func (s *userService) FindByUsername(username string) (*models.User, error) {
	if isBlank(username) {
		return nil, apperrors.NotFound("user")
	}
	return s.userRepo.GetByUsername(strings.TrimSpace(username))
}

func (s *userService) FindAll() ([]*models.User, error) {
	return s.userRepo.GetAll()
}

// changeActiveStatus переключает флаг; false без ошибки, если пользователь
// не найден либо уже в запрошенном состоянии
func (s *userService) changeActiveStatus(username string, isActive bool) (bool, error) {
	if isBlank(username) {
		return false, nil
	}

	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.log.Warn("user not found for status change", zap.String("username", username))
			return false, nil
		}
		return false, err
	}

	if user.IsActive == isActive {
		return false, nil
	}

	user.IsActive = isActive
	if err := s.userRepo.Update(user); err != nil {
		return false, err
	}

	s.log.Info("user status changed",
		zap.String("username", user.Username),
		zap.Bool("is_active", isActive))
	return true, nil
}

func validateNames(firstName, lastName string) error {
	var errs apperrors.FieldErrors
	if isBlank(firstName) {
		errs = append(errs, apperrors.FieldError{Field: "first_name", Message: "cannot be blank"})
	}
	if isBlank(lastName) {
		errs = append(errs, apperrors.FieldError{Field: "last_name", Message: "cannot be blank"})
	}
	return errs.Err()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
