package trainer_service

import (
	"testing"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository/memory"
	"gym-crm/internal/service"
	auth_service "gym-crm/internal/service/auth"
	trainee_service "gym-crm/internal/service/trainee"
	training_service "gym-crm/internal/service/training"
	trainingtype_service "gym-crm/internal/service/trainingtype"
	user_service "gym-crm/internal/service/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	store    *memory.Store
	trainers service.TrainerService
	trainees service.TraineeService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	store.SeedTypes("Strength", "Cardio", "Yoga")

	log := zap.NewNop()
	userService := user_service.NewUserService(store.Users(), log)
	authService := auth_service.NewAuthService(store.Users(), log)
	typeService := trainingtype_service.NewTrainingTypeService(store.TrainingTypes())
	trainingService := training_service.NewTrainingService(
		store.Trainings(), store.Trainees(), store.Trainers(), store.TrainingTypes(), authService, log)
	trainerService := NewTrainerService(
		store.Trainers(), userService, authService, trainingService, typeService, log)
	traineeService := trainee_service.NewTraineeService(
		store.Trainees(), store.Trainers(), userService, authService, trainingService, log)

	return &fixture{store: store, trainers: trainerService, trainees: traineeService}
}

func (f *fixture) createTrainer(t *testing.T, firstName, lastName, specialization string) *models.Trainer {
	t.Helper()
	trainer, err := f.trainers.Create(firstName, lastName, specialization)
	require.NoError(t, err)
	return trainer
}

func TestCreateTrainer(t *testing.T) {
	f := newFixture(t)

	trainer := f.createTrainer(t, "Anna", "Lee", "Yoga")

	assert.Equal(t, "anna.lee", trainer.User.Username)
	assert.True(t, trainer.User.IsActive)
	assert.Equal(t, "Yoga", trainer.Specialization.Name)
	assert.Equal(t, trainer.Specialization.ID, trainer.SpecializationID)
}

func TestCreateTrainerUnknownSpecialization(t *testing.T) {
	f := newFixture(t)

	_, err := f.trainers.Create("Anna", "Lee", "Chess")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateTrainerBlankSpecialization(t *testing.T) {
	f := newFixture(t)

	_, err := f.trainers.Create("Anna", "Lee", "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateOverwritesNameAndStatusOnly(t *testing.T) {
	f := newFixture(t)
	trainer := f.createTrainer(t, "Anna", "Lee", "Yoga")

	updated, err := f.trainers.Update(trainer.User.Username, trainer.User.Password, &models.Trainer{
		ID:               trainer.ID,
		SpecializationID: trainer.SpecializationID,
		User: models.User{
			FirstName: "Anne",
			LastName:  "Leigh",
			// Попытка подменить учётные данные через payload
			Username: "hacker",
			Password: "stolen",
			IsActive: true,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Anne", updated.User.FirstName)
	assert.Equal(t, "Leigh", updated.User.LastName)
	// Username и пароль сохраняются от аутентифицированной учётки
	assert.Equal(t, trainer.User.Username, updated.User.Username)
	assert.Equal(t, trainer.User.Password, updated.User.Password)

	// Старые учётные данные по-прежнему работают
	reloaded, err := f.trainers.FindByUsername(trainer.User.Username)
	require.NoError(t, err)
	assert.Equal(t, "Anne", reloaded.User.FirstName)
}

func TestUpdateSpecializationImmutable(t *testing.T) {
	f := newFixture(t)
	trainer := f.createTrainer(t, "Anna", "Lee", "Yoga")
	other := f.createTrainer(t, "Bob", "Marsh", "Cardio")

	updated, err := f.trainers.Update(trainer.User.Username, trainer.User.Password, &models.Trainer{
		ID:               trainer.ID,
		SpecializationID: other.SpecializationID, // попытка сменить специализацию
		User:             trainer.User,
	})
	require.NoError(t, err)
	assert.Equal(t, trainer.SpecializationID, updated.SpecializationID)
	assert.Equal(t, "Yoga", updated.Specialization.Name)
}

func TestUpdateRequiresSpecialization(t *testing.T) {
	f := newFixture(t)
	trainer := f.createTrainer(t, "Anna", "Lee", "Yoga")

	_, err := f.trainers.Update(trainer.User.Username, trainer.User.Password, &models.Trainer{
		ID:   trainer.ID,
		User: trainer.User,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateRejectsForeignProfile(t *testing.T) {
	f := newFixture(t)
	owner := f.createTrainer(t, "Anna", "Lee", "Yoga")
	other := f.createTrainer(t, "Bob", "Marsh", "Cardio")

	_, err := f.trainers.Update(other.User.Username, other.User.Password, &models.Trainer{
		ID:               owner.ID,
		SpecializationID: owner.SpecializationID,
		User:             owner.User,
	})
	assert.ErrorIs(t, err, apperrors.ErrOwnership)
}

func TestUpdateRequiresAuthentication(t *testing.T) {
	f := newFixture(t)
	trainer := f.createTrainer(t, "Anna", "Lee", "Yoga")

	_, err := f.trainers.Update(trainer.User.Username, "wrong", &models.Trainer{
		ID:               trainer.ID,
		SpecializationID: trainer.SpecializationID,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestActivationRoundTrip(t *testing.T) {
	f := newFixture(t)
	trainer := f.createTrainer(t, "Anna", "Lee", "Yoga")

	changed, err := f.trainers.Activate(trainer.User.Username, trainer.User.Password)
	require.NoError(t, err)
	assert.False(t, changed) // уже активен

	changed, err = f.trainers.Deactivate(trainer.User.Username, trainer.User.Password)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestGetTrainees(t *testing.T) {
	f := newFixture(t)
	trainer := f.createTrainer(t, "Anna", "Lee", "Yoga")

	trainee, err := f.trainees.Create("John", "Doe", nil, nil)
	require.NoError(t, err)
	_, err = f.trainees.UpdateTrainers(trainee.User.Username, trainee.User.Password,
		[]string{trainer.User.Username})
	require.NoError(t, err)

	trainees, err := f.trainers.GetTrainees(trainer.ID)
	require.NoError(t, err)
	require.Len(t, trainees, 1)
	assert.Equal(t, "john.doe", trainees[0].User.Username)
}
