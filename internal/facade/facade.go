package facade

import (
	"strings"
	"time"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/service"

	"go.uber.org/zap"
)

// GymFacade единая точка входа для транспортного слоя, собирает
// доменные сервисы в сценарии уровня API
type GymFacade struct {
	traineeService  service.TraineeService
	trainerService  service.TrainerService
	trainingService service.TrainingService
	typeService     service.TrainingTypeService
	authService     service.AuthService
	log             *zap.Logger
}

func New(
	traineeService service.TraineeService,
	trainerService service.TrainerService,
	trainingService service.TrainingService,
	typeService service.TrainingTypeService,
	authService service.AuthService,
	log *zap.Logger,
) *GymFacade {
	return &GymFacade{
		traineeService:  traineeService,
		trainerService:  trainerService,
		trainingService: trainingService,
		typeService:     typeService,
		authService:     authService,
		log:             log,
	}
}

func (f *GymFacade) RegisterTrainee(req TraineeRegistrationRequest) (RegistrationResponse, error) {
	var dob *time.Time
	if req.DateOfBirth != nil && strings.TrimSpace(*req.DateOfBirth) != "" {
		parsed, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return RegistrationResponse{}, err
		}
		dob = &parsed
	}

	trainee, err := f.traineeService.Create(req.FirstName, req.LastName, dob, req.Address)
	if err != nil {
		return RegistrationResponse{}, err
	}
	return toRegistrationResponse(trainee.ID, &trainee.User), nil
}

func (f *GymFacade) RegisterTrainer(req TrainerRegistrationRequest) (RegistrationResponse, error) {
	trainer, err := f.trainerService.Create(req.FirstName, req.LastName, req.Specialization)
	if err != nil {
		return RegistrationResponse{}, err
	}
	return toRegistrationResponse(trainer.ID, &trainer.User), nil
}

// Login проверяет пару логин/пароль, тело ответа не нужно
func (f *GymFacade) Login(username, password string) error {
	_, err := f.authService.Authenticate(username, password)
	return err
}

func (f *GymFacade) ChangePassword(req ChangePasswordRequest) error {
	return f.authService.ChangePassword(req.Username, req.OldPassword, req.NewPassword)
}

func (f *GymFacade) GetTraineeProfile(username, password string) (TraineeProfileResponse, error) {
	if _, err := f.authService.Authenticate(username, password); err != nil {
		return TraineeProfileResponse{}, err
	}

	trainee, err := f.traineeService.FindByUsername(username)
	if err != nil {
		return TraineeProfileResponse{}, err
	}
	trainers, err := f.traineeService.GetTrainers(trainee.ID)
	if err != nil {
		return TraineeProfileResponse{}, err
	}
	return toTraineeProfile(trainee, trainers), nil
}

func (f *GymFacade) UpdateTraineeProfile(username, password string, req UpdateTraineeProfileRequest) (TraineeProfileResponse, error) {
	updated, err := f.traineeService.Update(username, password, &models.Trainee{
		ID:      req.ID,
		Address: req.Address,
	})
	if err != nil {
		return TraineeProfileResponse{}, err
	}

	trainers, err := f.traineeService.GetTrainers(updated.ID)
	if err != nil {
		return TraineeProfileResponse{}, err
	}
	return toTraineeProfile(updated, trainers), nil
}

func (f *GymFacade) DeleteTrainee(username, password string) error {
	return f.traineeService.Delete(username, password)
}

func (f *GymFacade) SetTraineeActiveStatus(username, password string, isActive bool) (bool, error) {
	if isActive {
		return f.traineeService.Activate(username, password)
	}
	return f.traineeService.Deactivate(username, password)
}

func (f *GymFacade) GetTraineeTrainings(username, password string, fromDate, toDate *time.Time, trainerName, typeName string) ([]TrainingSummary, error) {
	trainings, err := f.traineeService.GetTrainings(username, password, fromDate, toDate, trainerName, typeName)
	if err != nil {
		return nil, err
	}
	return toTrainingSummaries(trainings, true), nil
}

func (f *GymFacade) GetUnassignedTrainers(username, password string) ([]TrainerSummary, error) {
	trainers, err := f.traineeService.GetUnassignedTrainers(username, password)
	if err != nil {
		return nil, err
	}
	return toTrainerSummaries(trainers), nil
}

func (f *GymFacade) UpdateTraineeTrainers(username, password string, req UpdateTraineeTrainersRequest) ([]TrainerSummary, error) {
	trainers, err := f.traineeService.UpdateTrainers(username, password, req.TrainerUsernames)
	if err != nil {
		return nil, err
	}
	return toTrainerSummaries(trainers), nil
}

func (f *GymFacade) GetTrainerProfile(username, password string) (TrainerProfileResponse, error) {
	if _, err := f.authService.Authenticate(username, password); err != nil {
		return TrainerProfileResponse{}, err
	}

	trainer, err := f.trainerService.FindByUsername(username)
	if err != nil {
		return TrainerProfileResponse{}, err
	}
	trainees, err := f.trainerService.GetTrainees(trainer.ID)
	if err != nil {
		return TrainerProfileResponse{}, err
	}
	return toTrainerProfile(trainer, trainees), nil
}

func (f *GymFacade) UpdateTrainerProfile(username, password string, req UpdateTrainerProfileRequest) (TrainerProfileResponse, error) {
	updated, err := f.trainerService.Update(username, password, &models.Trainer{
		ID:               req.ID,
		SpecializationID: req.SpecializationID,
		User: models.User{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			IsActive:  req.IsActive,
		},
	})
	if err != nil {
		return TrainerProfileResponse{}, err
	}

	trainees, err := f.trainerService.GetTrainees(updated.ID)
	if err != nil {
		return TrainerProfileResponse{}, err
	}
	return toTrainerProfile(updated, trainees), nil
}

func (f *GymFacade) SetTrainerActiveStatus(username, password string, isActive bool) (bool, error) {
	if isActive {
		return f.trainerService.Activate(username, password)
	}
	return f.trainerService.Deactivate(username, password)
}

func (f *GymFacade) GetTrainerTrainings(username, password string, fromDate, toDate *time.Time, traineeName string) ([]TrainingSummary, error) {
	trainings, err := f.trainerService.GetTrainings(username, password, fromDate, toDate, traineeName)
	if err != nil {
		return nil, err
	}
	return toTrainingSummaries(trainings, false), nil
}

func (f *GymFacade) AddTraining(username, password string, req AddTrainingRequest) (TrainingSummary, error) {
	if strings.TrimSpace(req.Date) == "" {
		return TrainingSummary{}, apperrors.Validationf("date is required")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return TrainingSummary{}, err
	}

	training, err := f.trainingService.Add(service.AddTrainingInput{
		TraineeUsername: req.TraineeUsername,
		TrainerUsername: req.TrainerUsername,
		Name:            req.Name,
		TypeID:          req.TrainingTypeID,
		Date:            date,
		Duration:        req.Duration,
		AuthUsername:    username,
		AuthPassword:    password,
	})
	if err != nil {
		return TrainingSummary{}, err
	}

	summaries := toTrainingSummaries([]*models.Training{training}, true)
	return summaries[0], nil
}

func (f *GymFacade) DeleteTraining(username, password string, id int64) (bool, error) {
	return f.trainingService.DeleteByID(id, username, password)
}

func (f *GymFacade) GetTrainingTypes() ([]TrainingTypeResponse, error) {
	types, err := f.typeService.FindAll()
	if err != nil {
		return nil, err
	}
	return toTrainingTypeResponses(types), nil
}
