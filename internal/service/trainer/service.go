package trainer_service

import (
	"strings"
	"time"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"
	"gym-crm/internal/service"

	"go.uber.org/zap"
)

type trainerService struct {
	trainerRepo     repository.TrainerRepository
	userService     service.UserService
	authService     service.AuthService
	trainingService service.TrainingService
	typeService     service.TrainingTypeService
	log             *zap.Logger
}

func NewTrainerService(
	trainerRepo repository.TrainerRepository,
	userService service.UserService,
	authService service.AuthService,
	trainingService service.TrainingService,
	typeService service.TrainingTypeService,
	log *zap.Logger,
) service.TrainerService {
	return &trainerService{
		trainerRepo:     trainerRepo,
		userService:     userService,
		authService:     authService,
		trainingService: trainingService,
		typeService:     typeService,
		log:             log,
	}
}

// Create регистрирует тренера, специализация ищется по имени в каталоге
func (s *trainerService) Create(firstName, lastName, specialization string) (*models.Trainer, error) {
	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		return nil, apperrors.Validationf("specialization is required")
	}

	trainingType, err := s.typeService.FindByName(specialization)
	if err != nil {
		return nil, err
	}

	user, err := s.userService.Create(firstName, lastName)
	if err != nil {
		return nil, err
	}

	trainer := &models.Trainer{
		UserID:           user.ID,
		SpecializationID: trainingType.ID,
	}
	if err := s.trainerRepo.Create(trainer); err != nil {
		return nil, err
	}

	trainer.User = *user
	trainer.Specialization = *trainingType
	s.log.Info("trainer created",
		zap.String("username", user.Username),
		zap.String("specialization", trainingType.Name))
	return trainer, nil
}

func (s *trainerService) Update(username, password string, trainer *models.Trainer) (*models.Trainer, error) {
	if _, err := s.authService.Authenticate(username, password); err != nil {
		return nil, err
	}

	if trainer == nil || trainer.ID == 0 {
		return nil, apperrors.Validationf("trainer id is required for update")
	}
	if trainer.SpecializationID == 0 {
		return nil, apperrors.Validationf("specialization is required")
	}

	existing, err := s.trainerRepo.GetByID(trainer.ID)
	if err != nil {
		return nil, err
	}

	if existing.User.Username != strings.TrimSpace(username) {
		return nil, apperrors.ErrOwnership
	}

	// Имя и статус обновляются, username, пароль и специализация не меняются
	updated := existing.User
	updated.FirstName = trainer.User.FirstName
	updated.LastName = trainer.User.LastName
	updated.IsActive = trainer.User.IsActive
	if _, err := s.userService.Update(&updated); err != nil {
		return nil, err
	}

	existing.User = updated
	if err := s.trainerRepo.Update(existing); err != nil {
		return nil, err
	}

	s.log.Info("trainer updated", zap.String("username", username))
	return existing, nil
}

func (s *trainerService) ChangePassword(username, oldPassword, newPassword string) error {
	if _, err := s.authService.Authenticate(username, oldPassword); err != nil {
		return err
	}
	return s.authService.ChangePassword(username, oldPassword, newPassword)
}

func (s *trainerService) Activate(username, password string) (bool, error) {
	return s.changeActiveStatus(username, password, true)
}

func (s *trainerService) Deactivate(username, password string) (bool, error) {
	return s.changeActiveStatus(username, password, false)
}

func (s *trainerService) GetTrainings(username, password string, fromDate, toDate *time.Time, traineeName string) ([]*models.Training, error) {
	if _, err := s.authService.Authenticate(username, password); err != nil {
		return nil, err
	}

	return s.trainingService.FindTrainerTrainings(models.TrainingFilter{
		Username:    strings.TrimSpace(username),
		FromDate:    fromDate,
		ToDate:      toDate,
		TraineeName: traineeName,
	})
}

func (s *trainerService) GetTrainees(trainerID int64) ([]*models.Trainee, error) {
	return s.trainerRepo.GetTrainees(trainerID)
}

func (s *trainerService) FindByID(id int64) (*models.Trainer, error) {
	if id == 0 {
		return nil, apperrors.NotFound("trainer")
	}
	return s.trainerRepo.GetByID(id)
}

func (s *trainerService) FindByUsername(username string) (*models.Trainer, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperrors.NotFound("trainer")
	}
	return s.trainerRepo.GetByUsername(strings.TrimSpace(username))
}

func (s *trainerService) changeActiveStatus(username, password string, isActive bool) (bool, error) {
	if _, err := s.authService.Authenticate(username, password); err != nil {
		return false, err
	}
	if isActive {
		return s.userService.Activate(username)
	}
	return s.userService.Deactivate(username)
}
