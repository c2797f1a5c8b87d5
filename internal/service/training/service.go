package training_service

import (
	"strings"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"
	"gym-crm/internal/service"

	"go.uber.org/zap"
)

// Зависит от репозиториев напрямую, иначе с trainee/trainer сервисами
// получается цикл
type trainingService struct {
	trainingRepo repository.TrainingRepository
	traineeRepo  repository.TraineeRepository
	trainerRepo  repository.TrainerRepository
	typeRepo     repository.TrainingTypeRepository
	authService  service.AuthService
	log          *zap.Logger
}

func NewTrainingService(
	trainingRepo repository.TrainingRepository,
	traineeRepo repository.TraineeRepository,
	trainerRepo repository.TrainerRepository,
	typeRepo repository.TrainingTypeRepository,
	authService service.AuthService,
	log *zap.Logger,
) service.TrainingService {
	return &trainingService{
		trainingRepo: trainingRepo,
		traineeRepo:  traineeRepo,
		trainerRepo:  trainerRepo,
		typeRepo:     typeRepo,
		authService:  authService,
		log:          log,
	}
}

func (s *trainingService) Add(input service.AddTrainingInput) (*models.Training, error) {
	if _, err := s.authService.Authenticate(input.AuthUsername, input.AuthPassword); err != nil {
		return nil, err
	}

	var fieldErrs apperrors.FieldErrors
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "name", Message: "must not be blank"})
	}
	if strings.TrimSpace(input.TraineeUsername) == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "traineeUsername", Message: "must not be blank"})
	}
	if strings.TrimSpace(input.TrainerUsername) == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "trainerUsername", Message: "must not be blank"})
	}
	if input.TypeID == 0 {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "trainingTypeId", Message: "must be set"})
	}
	if input.Date.IsZero() {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "date", Message: "must be set"})
	}
	if input.Duration <= 0 {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "duration", Message: "must be positive"})
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	trainee, err := s.traineeRepo.GetByUsername(strings.TrimSpace(input.TraineeUsername))
	if err != nil {
		return nil, err
	}
	trainer, err := s.trainerRepo.GetByUsername(strings.TrimSpace(input.TrainerUsername))
	if err != nil {
		return nil, err
	}
	trainingType, err := s.typeRepo.GetByID(input.TypeID)
	if err != nil {
		return nil, err
	}

	if !trainee.User.IsActive {
		return nil, apperrors.Validationf("trainee %q is not active", trainee.User.Username)
	}
	if !trainer.User.IsActive {
		return nil, apperrors.Validationf("trainer %q is not active", trainer.User.Username)
	}

	training := &models.Training{
		TraineeID: trainee.ID,
		TrainerID: trainer.ID,
		TypeID:    trainingType.ID,
		Name:      strings.TrimSpace(input.Name),
		Date:      input.Date,
		Duration:  input.Duration,
	}
	if err := s.trainingRepo.Create(training); err != nil {
		return nil, err
	}

	training.TypeName = trainingType.Name
	training.TraineeUsername = trainee.User.Username
	training.TraineeName = trainee.User.FirstName + " " + trainee.User.LastName
	training.TrainerUsername = trainer.User.Username
	training.TrainerName = trainer.User.FirstName + " " + trainer.User.LastName

	s.log.Info("training added",
		zap.Int64("id", training.ID),
		zap.String("trainee", training.TraineeUsername),
		zap.String("trainer", training.TrainerUsername))
	return training, nil
}

func (s *trainingService) Update(training *models.Training, authUsername, authPassword string) (*models.Training, error) {
	if _, err := s.authService.Authenticate(authUsername, authPassword); err != nil {
		return nil, err
	}

	if training == nil || training.ID == 0 {
		return nil, apperrors.Validationf("training id is required for update")
	}

	existing, err := s.trainingRepo.GetByID(training.ID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(training.Name) == "" {
		return nil, apperrors.Validationf("name must not be blank")
	}
	if training.Date.IsZero() {
		return nil, apperrors.Validationf("date must be set")
	}
	if training.Duration <= 0 {
		return nil, apperrors.Validationf("duration must be positive")
	}

	// Ссылки проверяются заново, обновление не должно оставить висячий id
	if _, err := s.traineeRepo.GetByID(training.TraineeID); err != nil {
		return nil, err
	}
	if _, err := s.trainerRepo.GetByID(training.TrainerID); err != nil {
		return nil, err
	}
	if _, err := s.typeRepo.GetByID(training.TypeID); err != nil {
		return nil, err
	}

	existing.TraineeID = training.TraineeID
	existing.TrainerID = training.TrainerID
	existing.TypeID = training.TypeID
	existing.Name = strings.TrimSpace(training.Name)
	existing.Date = training.Date
	existing.Duration = training.Duration

	if err := s.trainingRepo.Update(existing); err != nil {
		return nil, err
	}

	s.log.Info("training updated", zap.Int64("id", existing.ID))
	return s.trainingRepo.GetByID(existing.ID)
}

func (s *trainingService) Delete(training *models.Training, authUsername, authPassword string) (bool, error) {
	if training == nil {
		return false, nil
	}
	return s.DeleteByID(training.ID, authUsername, authPassword)
}

func (s *trainingService) DeleteByID(id int64, authUsername, authPassword string) (bool, error) {
	if _, err := s.authService.Authenticate(authUsername, authPassword); err != nil {
		return false, err
	}

	deleted, err := s.trainingRepo.Delete(id)
	if err != nil {
		return false, err
	}
	if !deleted {
		s.log.Warn("training to delete not found", zap.Int64("id", id))
		return false, nil
	}

	s.log.Info("training deleted", zap.Int64("id", id))
	return true, nil
}

func (s *trainingService) FindByID(id int64) (*models.Training, error) {
	if id == 0 {
		return nil, apperrors.NotFound("training")
	}
	return s.trainingRepo.GetByID(id)
}

// Пустой username в фильтре не ошибка, просто нечего искать
func (s *trainingService) FindTraineeTrainings(filter models.TrainingFilter) ([]*models.Training, error) {
	if strings.TrimSpace(filter.Username) == "" {
		return []*models.Training{}, nil
	}
	return s.trainingRepo.FindTraineeTrainings(filter)
}

func (s *trainingService) FindTrainerTrainings(filter models.TrainingFilter) ([]*models.Training, error) {
	if strings.TrimSpace(filter.Username) == "" {
		return []*models.Training{}, nil
	}
	return s.trainingRepo.FindTrainerTrainings(filter)
}
