package trainee_service

import (
	"strings"
	"time"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"
	"gym-crm/internal/service"

	"go.uber.org/zap"
)

type traineeService struct {
	traineeRepo     repository.TraineeRepository
	trainerRepo     repository.TrainerRepository
	userService     service.UserService
	authService     service.AuthService
	trainingService service.TrainingService
	log             *zap.Logger
}

func NewTraineeService(
	traineeRepo repository.TraineeRepository,
	trainerRepo repository.TrainerRepository,
	userService service.UserService,
	authService service.AuthService,
	trainingService service.TrainingService,
	log *zap.Logger,
) service.TraineeService {
	return &traineeService{
		traineeRepo:     traineeRepo,
		trainerRepo:     trainerRepo,
		userService:     userService,
		authService:     authService,
		trainingService: trainingService,
		log:             log,
	}
}

// Create регистрирует нового trainee, аутентификация не требуется
func (s *traineeService) Create(firstName, lastName string, dateOfBirth *time.Time, address *string) (*models.Trainee, error) {
	user, err := s.userService.Create(firstName, lastName)
	if err != nil {
		return nil, err
	}

	trainee := &models.Trainee{
		UserID:      user.ID,
		DateOfBirth: dateOfBirth,
	}
	if address != nil {
		trimmed := strings.TrimSpace(*address)
		trainee.Address = &trimmed
	}

	if err := s.traineeRepo.Create(trainee); err != nil {
		return nil, err
	}

	trainee.User = *user
	s.log.Info("trainee created", zap.String("username", user.Username))
	return trainee, nil
}

func (s *traineeService) Update(username, password string, trainee *models.Trainee) (*models.Trainee, error) {
	if _, err := s.authService.Authenticate(username, password); err != nil {
		return nil, err
	}

	if trainee == nil || trainee.ID == 0 {
		return nil, apperrors.Validationf("trainee id is required for update")
	}

	existing, err := s.traineeRepo.GetByID(trainee.ID)
	if err != nil {
		return nil, err
	}

	if existing.User.Username != strings.TrimSpace(username) {
		return nil, apperrors.ErrOwnership
	}

	// Из профиля меняется только адрес
	if trainee.Address != nil {
		trimmed := strings.TrimSpace(*trainee.Address)
		existing.Address = &trimmed
	}

	if err := s.traineeRepo.Update(existing); err != nil {
		return nil, err
	}

	s.log.Info("trainee updated", zap.String("username", username))
	return existing, nil
}

func (s *traineeService) ChangePassword(username, oldPassword, newPassword string) error {
	if _, err := s.authService.Authenticate(username, oldPassword); err != nil {
		return err
	}
	return s.authService.ChangePassword(username, oldPassword, newPassword)
}

func (s *traineeService) Activate(username, password string) (bool, error) {
	return s.changeActiveStatus(username, password, true)
}

func (s *traineeService) Deactivate(username, password string) (bool, error) {
	return s.changeActiveStatus(username, password, false)
}

// Delete удаляет профиль вместе с пользователем; тренировки уходят каскадом
func (s *traineeService) Delete(username, password string) error {
	if _, err := s.authService.Authenticate(username, password); err != nil {
		return err
	}

	trainee, err := s.traineeRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return err
	}

	if err := s.traineeRepo.DeleteWithUser(trainee); err != nil {
		return err
	}

	s.log.Info("trainee deleted", zap.String("username", username))
	return nil
}

func (s *traineeService) GetTrainings(username, password string, fromDate, toDate *time.Time, trainerName, trainingTypeName string) ([]*models.Training, error) {
	if _, err := s.authService.Authenticate(username, password); err != nil {
		return nil, err
	}

	return s.trainingService.FindTraineeTrainings(models.TrainingFilter{
		Username:         strings.TrimSpace(username),
		FromDate:         fromDate,
		ToDate:           toDate,
		TrainerName:      trainerName,
		TrainingTypeName: trainingTypeName,
	})
}

func (s *traineeService) GetUnassignedTrainers(username, password string) ([]*models.Trainer, error) {
	if _, err := s.authService.Authenticate(username, password); err != nil {
		return nil, err
	}
	return s.traineeRepo.GetUnassignedTrainers(strings.TrimSpace(username))
}

// UpdateTrainers полностью заменяет набор назначенных тренеров
func (s *traineeService) UpdateTrainers(username, password string, trainerUsernames []string) ([]*models.Trainer, error) {
	if _, err := s.authService.Authenticate(username, password); err != nil {
		return nil, err
	}

	trainee, err := s.traineeRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(trainerUsernames))
	trainerIDs := make([]int64, 0, len(trainerUsernames))
	for _, trainerUsername := range trainerUsernames {
		trainer, err := s.trainerRepo.GetByUsername(strings.TrimSpace(trainerUsername))
		if err != nil {
			return nil, err
		}
		if _, ok := seen[trainer.ID]; ok {
			continue
		}
		seen[trainer.ID] = struct{}{}
		trainerIDs = append(trainerIDs, trainer.ID)
	}

	if err := s.traineeRepo.ReplaceTrainers(trainee.ID, trainerIDs); err != nil {
		return nil, err
	}

	s.log.Info("trainee trainers replaced",
		zap.String("username", username),
		zap.Int("count", len(trainerIDs)))
	return s.traineeRepo.GetTrainers(trainee.ID)
}

func (s *traineeService) GetTrainers(traineeID int64) ([]*models.Trainer, error) {
	return s.traineeRepo.GetTrainers(traineeID)
}

func (s *traineeService) FindByID(id int64) (*models.Trainee, error) {
	if id == 0 {
		return nil, apperrors.NotFound("trainee")
	}
	return s.traineeRepo.GetByID(id)
}

func (s *traineeService) FindByUsername(username string) (*models.Trainee, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperrors.NotFound("trainee")
	}
	return s.traineeRepo.GetByUsername(strings.TrimSpace(username))
}

func (s *traineeService) changeActiveStatus(username, password string, isActive bool) (bool, error) {
	if _, err := s.authService.Authenticate(username, password); err != nil {
		return false, err
	}
	if isActive {
		return s.userService.Activate(username)
	}
	return s.userService.Deactivate(username)
}
