package trainee_service

import (
	"testing"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository/memory"
	"gym-crm/internal/service"
	auth_service "gym-crm/internal/service/auth"
	trainer_service "gym-crm/internal/service/trainer"
	training_service "gym-crm/internal/service/training"
	trainingtype_service "gym-crm/internal/service/trainingtype"
	user_service "gym-crm/internal/service/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	store    *memory.Store
	trainees service.TraineeService
	trainers service.TrainerService
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
	traineeService := NewTraineeService(
		store.Trainees(), store.Trainers(), userService, authService, trainingService, log)
	trainerService := trainer_service.NewTrainerService(
		store.Trainers(), userService, authService, trainingService, typeService, log)

	return &fixture{store: store, trainees: traineeService, trainers: trainerService}
}

func (f *fixture) createTrainee(t *testing.T, firstName, lastName string) *models.Trainee {
	t.Helper()
	trainee, err := f.trainees.Create(firstName, lastName, nil, nil)
	require.NoError(t, err)
	return trainee
}

func (f *fixture) createTrainer(t *testing.T, firstName, lastName, specialization string) *models.Trainer {
	t.Helper()
	trainer, err := f.trainers.Create(firstName, lastName, specialization)
	require.NoError(t, err)
	return trainer
}

func TestCreateTrainee(t *testing.T) {
	f := newFixture(t)

	address := "5 Main St"
	trainee, err := f.trainees.Create("John", "Doe", nil, &address)
	require.NoError(t, err)

	assert.Equal(t, "john.doe", trainee.User.Username)
	assert.True(t, trainee.User.IsActive)
	require.NotNil(t, trainee.Address)
	assert.Equal(t, "5 Main St", *trainee.Address)
}

func TestUpdateChangesAddressOnly(t *testing.T) {
	f := newFixture(t)
	trainee := f.createTrainee(t, "John", "Doe")

	address := "10 New St"
	updated, err := f.trainees.Update(trainee.User.Username, trainee.User.Password, &models.Trainee{
		ID:      trainee.ID,
		Address: &address,
		User:    models.User{FirstName: "Hacker", LastName: "Name"},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Address)
	assert.Equal(t, "10 New St", *updated.Address)
	// Имя пользователя через профиль trainee не меняется
	assert.Equal(t, "John", updated.User.FirstName)
}

func TestUpdateRejectsForeignProfile(t *testing.T) {
	f := newFixture(t)
	owner := f.createTrainee(t, "John", "Doe")
	other := f.createTrainee(t, "Alice", "Smith")

	address := "1 Else St"
	_, err := f.trainees.Update(other.User.Username, other.User.Password, &models.Trainee{
		ID:      owner.ID,
		Address: &address,
	})
	assert.ErrorIs(t, err, apperrors.ErrOwnership)
}

func TestUpdateRequiresAuthentication(t *testing.T) {
	f := newFixture(t)
	trainee := f.createTrainee(t, "John", "Doe")

	_, err := f.trainees.Update(trainee.User.Username, "wrong", &models.Trainee{ID: trainee.ID})
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestDeleteRemovesUser(t *testing.T) {
	f := newFixture(t)
	trainee := f.createTrainee(t, "John", "Doe")

	require.NoError(t, f.trainees.Delete(trainee.User.Username, trainee.User.Password))

	_, err := f.trainees.FindByUsername(trainee.User.Username)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestActivationRoundTrip(t *testing.T) {
	f := newFixture(t)
	trainee := f.createTrainee(t, "John", "Doe")

	changed, err := f.trainees.Deactivate(trainee.User.Username, trainee.User.Password)
	require.NoError(t, err)
	assert.True(t, changed)

	// Деактивированный пользователь больше не проходит аутентификацию
	_, err = f.trainees.Deactivate(trainee.User.Username, trainee.User.Password)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestUpdateTrainersReplacesFullSet(t *testing.T) {
	f := newFixture(t)
	trainee := f.createTrainee(t, "John", "Doe")
	yoga := f.createTrainer(t, "Anna", "Lee", "Yoga")
	cardio := f.createTrainer(t, "Bob", "Marsh", "Cardio")

	trainers, err := f.trainees.UpdateTrainers(trainee.User.Username, trainee.User.Password,
		[]string{yoga.User.Username, cardio.User.Username, yoga.User.Username})
	require.NoError(t, err)
	require.Len(t, trainers, 2)

	// Полная замена, а не добавление
	trainers, err = f.trainees.UpdateTrainers(trainee.User.Username, trainee.User.Password,
		[]string{cardio.User.Username})
	require.NoError(t, err)
	require.Len(t, trainers, 1)
	assert.Equal(t, cardio.User.Username, trainers[0].User.Username)
}

func TestUpdateTrainersUnknownTrainer(t *testing.T) {
	f := newFixture(t)
	trainee := f.createTrainee(t, "John", "Doe")

	_, err := f.trainees.UpdateTrainers(trainee.User.Username, trainee.User.Password, []string{"nobody"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetUnassignedTrainers(t *testing.T) {
	f := newFixture(t)
	trainee := f.createTrainee(t, "John", "Doe")
	yoga := f.createTrainer(t, "Anna", "Lee", "Yoga")
	cardio := f.createTrainer(t, "Bob", "Marsh", "Cardio")

	unassigned, err := f.trainees.GetUnassignedTrainers(trainee.User.Username, trainee.User.Password)
	require.NoError(t, err)
	assert.Len(t, unassigned, 2)

	_, err = f.trainees.UpdateTrainers(trainee.User.Username, trainee.User.Password, []string{yoga.User.Username})
	require.NoError(t, err)

	unassigned, err = f.trainees.GetUnassignedTrainers(trainee.User.Username, trainee.User.Password)
	require.NoError(t, err)
	require.Len(t, unassigned, 1)
	assert.Equal(t, cardio.User.Username, unassigned[0].User.Username)
}

func TestGetUnassignedTrainersExcludesInactive(t *testing.T) {
	f := newFixture(t)
	trainee := f.createTrainee(t, "John", "Doe")
	inactive := f.createTrainer(t, "Anna", "Lee", "Yoga")

	_, err := f.trainers.Deactivate(inactive.User.Username, inactive.User.Password)
	require.NoError(t, err)

	unassigned, err := f.trainees.GetUnassignedTrainers(trainee.User.Username, trainee.User.Password)
	require.NoError(t, err)
	assert.Empty(t, unassigned)
}
