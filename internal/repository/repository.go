package repository

import (
	"gym-crm/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]*models.User, error)
	Update(user *models.User) error
	Delete(id int64) error
}

type TraineeRepository interface {
	Create(trainee *models.Trainee) error
	GetByID(id int64) (*models.Trainee, error)
	GetByUsername(username string) (*models.Trainee, error)
	Update(trainee *models.Trainee) error
	// DeleteWithUser удаляет профиль вместе с его пользователем в одной
	// транзакции; тренировки и назначения уходят каскадом по FK
	DeleteWithUser(trainee *models.Trainee) error

	GetTrainers(traineeID int64) ([]*models.Trainer, error)
	// ReplaceTrainers полностью заменяет набор назначенных тренеров
	ReplaceTrainers(traineeID int64, trainerIDs []int64) error
	GetUnassignedTrainers(traineeUsername string) ([]*models.Trainer, error)
}

type TrainerRepository interface {
	Create(trainer *models.Trainer) error
	GetByID(id int64) (*models.Trainer, error)
	GetByUsername(username string) (*models.Trainer, error)
	Update(trainer *models.Trainer) error

	GetTrainees(trainerID int64) ([]*models.Trainee, error)
}

type TrainingRepository interface {
	Create(training *models.Training) error
	GetByID(id int64) (*models.Training, error)
	Update(training *models.Training) error
	// Delete возвращает false без ошибки, если записи уже нет
	Delete(id int64) (bool, error)

	FindTraineeTrainings(filter models.TrainingFilter) ([]*models.Training, error)
	FindTrainerTrainings(filter models.TrainingFilter) ([]*models.Training, error)
}

type TrainingTypeRepository interface {
	GetByID(id int64) (*models.TrainingType, error)
	GetByName(name string) (*models.TrainingType, error)
	GetAll() ([]*models.TrainingType, error)
}
