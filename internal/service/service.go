package service

import (
	"time"

	"gym-crm/internal/models"
)

type UserService interface {
	Create(firstName, lastName string) (*models.User, error)
	Update(user *models.User) (*models.User, error)
	// Activate/Deactivate идемпотентны: false без ошибки, если пользователь
	// не найден или уже в целевом состоянии
	Activate(username string) (bool, error)
	Deactivate(username string) (bool, error)
	Delete(user *models.User) error

	FindByID(id int64) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindAll() ([]*models.User, error)
}

type AuthService interface {
	// Authenticate возвращает пользователя только при точном совпадении
	// пароля и активном аккаунте; любая причина отказа наружу не различается
	Authenticate(username, password string) (*models.User, error)
	IsUserActive(username string) bool
	ChangePassword(username, oldPassword, newPassword string) error
}

type TraineeService interface {
	Create(firstName, lastName string, dateOfBirth *time.Time, address *string) (*models.Trainee, error)
	Update(username, password string, trainee *models.Trainee) (*models.Trainee, error)
	ChangePassword(username, oldPassword, newPassword string) error
	Activate(username, password string) (bool, error)
	Deactivate(username, password string) (bool, error)
	Delete(username, password string) error

	GetTrainings(username, password string, fromDate, toDate *time.Time, trainerName, trainingTypeName string) ([]*models.Training, error)
	GetUnassignedTrainers(username, password string) ([]*models.Trainer, error)
	UpdateTrainers(username, password string, trainerUsernames []string) ([]*models.Trainer, error)
	GetTrainers(traineeID int64) ([]*models.Trainer, error)

	FindByID(id int64) (*models.Trainee, error)
	FindByUsername(username string) (*models.Trainee, error)
}

type TrainerService interface {
	Create(firstName, lastName, specializationName string) (*models.Trainer, error)
	Update(username, password string, trainer *models.Trainer) (*models.Trainer, error)
	ChangePassword(username, oldPassword, newPassword string) error
	Activate(username, password string) (bool, error)
	Deactivate(username, password string) (bool, error)

	GetTrainings(username, password string, fromDate, toDate *time.Time, traineeName string) ([]*models.Training, error)
	GetTrainees(trainerID int64) ([]*models.Trainee, error)

	FindByID(id int64) (*models.Trainer, error)
	FindByUsername(username string) (*models.Trainer, error)
}

// AddTrainingInput параметры создания тренировки; действовать может любой
// аутентифицированный пользователь, не обязательно её участник
type AddTrainingInput struct {
	TraineeUsername string
	TrainerUsername string
	Name            string
	TypeID          int64
	Date            time.Time
	Duration        int

	AuthUsername string
	AuthPassword string
}

type TrainingService interface {
	Add(input AddTrainingInput) (*models.Training, error)
	Update(training *models.Training, authUsername, authPassword string) (*models.Training, error)
	Delete(training *models.Training, authUsername, authPassword string) (bool, error)
	DeleteByID(id int64, authUsername, authPassword string) (bool, error)

	FindByID(id int64) (*models.Training, error)
	FindTraineeTrainings(filter models.TrainingFilter) ([]*models.Training, error)
	FindTrainerTrainings(filter models.TrainingFilter) ([]*models.Training, error)
}

type TrainingTypeService interface {
	FindByID(id int64) (*models.TrainingType, error)
	FindByName(name string) (*models.TrainingType, error)
	FindAll() ([]*models.TrainingType, error)
	ExistsByID(id int64) bool
	ExistsByName(name string) bool
}
