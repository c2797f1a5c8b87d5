package training

import (
	"testing"
	"time"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"
	"gym-crm/internal/repository/repotest"
	"gym-crm/internal/repository/trainee"
	"gym-crm/internal/repository/trainer"
	"gym-crm/internal/repository/trainingtype"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type graph struct {
	db      *sqlx.DB
	repo    repository.TrainingRepository
	trainee *models.Trainee
	yoga    *models.Trainer // Anna Lee
	cardio  *models.Trainer // Bob Marsh
	yogaID  int64
}

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func seedUser(t *testing.T, db *sqlx.DB, firstName, lastName, username string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`
		INSERT INTO gym.users (first_name, last_name, username, password, is_active)
		VALUES ($1, $2, $3, 'secret1234', true)
		RETURNING id
	`, firstName, lastName, username).Scan(&id)
	require.NoError(t, err)
	return id
}

func newGraph(t *testing.T) *graph {
	t.Helper()

	db := repotest.Open(t)
	typeRepo := trainingtype.NewTrainingTypeRepository(db)
	yogaType, err := typeRepo.GetByName("Yoga")
	require.NoError(t, err)
	cardioType, err := typeRepo.GetByName("Cardio")
	require.NoError(t, err)

	te := &models.Trainee{UserID: seedUser(t, db, "John", "Doe", "john.doe")}
	require.NoError(t, trainee.NewTraineeRepository(db).Create(te))

	trainerRepo := trainer.NewTrainerRepository(db)
	yoga := &models.Trainer{
		UserID:           seedUser(t, db, "Anna", "Lee", "anna.lee"),
		SpecializationID: yogaType.ID,
	}
	require.NoError(t, trainerRepo.Create(yoga))
	cardio := &models.Trainer{
		UserID:           seedUser(t, db, "Bob", "Marsh", "bob.marsh"),
		SpecializationID: cardioType.ID,
	}
	require.NoError(t, trainerRepo.Create(cardio))

	return &graph{
		db:      db,
		repo:    NewTrainingRepository(db),
		trainee: te,
		yoga:    yoga,
		cardio:  cardio,
		yogaID:  yogaType.ID,
	}
}

func (g *graph) add(t *testing.T, name string, trainerID, typeID int64, day string) *models.Training {
	t.Helper()
	training := &models.Training{
		Name:      name,
		TypeID:    typeID,
		TraineeID: g.trainee.ID,
		TrainerID: trainerID,
		Date:      date(day),
		Duration:  60,
	}
	require.NoError(t, g.repo.Create(training))
	return training
}

func TestCreateAndGetWithDisplayFields(t *testing.T) {
	g := newGraph(t)

	created := g.add(t, "Morning yoga", g.yoga.ID, g.yogaID, "2026-03-10")
	require.NotZero(t, created.ID)

	got, err := g.repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning yoga", got.Name)
	assert.Equal(t, "Yoga", got.TypeName)
	assert.Equal(t, "john.doe", got.TraineeUsername)
	assert.Equal(t, "John Doe", got.TraineeName)
	assert.Equal(t, "anna.lee", got.TrainerUsername)
	assert.Equal(t, "Anna Lee", got.TrainerName)
	assert.True(t, got.Date.Equal(date("2026-03-10")))
}

func TestGetNotFound(t *testing.T) {
	g := newGraph(t)

	_, err := g.repo.GetByID(999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindTraineeTrainingsOrderedByDateDesc(t *testing.T) {
	g := newGraph(t)
	g.add(t, "first", g.yoga.ID, g.yogaID, "2026-03-10")
	g.add(t, "third", g.yoga.ID, g.yogaID, "2026-03-15")
	g.add(t, "second", g.yoga.ID, g.yogaID, "2026-03-12")

	trainings, err := g.repo.FindTraineeTrainings(models.TrainingFilter{Username: "john.doe"})
	require.NoError(t, err)
	require.Len(t, trainings, 3)
	assert.Equal(t, "third", trainings[0].Name)
	assert.Equal(t, "second", trainings[1].Name)
	assert.Equal(t, "first", trainings[2].Name)
}

func TestFindTrainingsDateBoundsInclusive(t *testing.T) {
	g := newGraph(t)
	g.add(t, "before", g.yoga.ID, g.yogaID, "2026-03-09")
	g.add(t, "lower", g.yoga.ID, g.yogaID, "2026-03-10")
	g.add(t, "upper", g.yoga.ID, g.yogaID, "2026-03-12")
	g.add(t, "after", g.yoga.ID, g.yogaID, "2026-03-13")

	from, to := date("2026-03-10"), date("2026-03-12")
	trainings, err := g.repo.FindTraineeTrainings(models.TrainingFilter{
		Username: "john.doe",
		FromDate: &from,
		ToDate:   &to,
	})
	require.NoError(t, err)
	require.Len(t, trainings, 2)
	assert.Equal(t, "upper", trainings[0].Name)
	assert.Equal(t, "lower", trainings[1].Name)
}

func TestFindTraineeTrainingsTrainerNameSubstring(t *testing.T) {
	g := newGraph(t)
	g.add(t, "yoga session", g.yoga.ID, g.yogaID, "2026-03-10")
	g.add(t, "cardio session", g.cardio.ID, g.yogaID, "2026-03-11")

	trainings, err := g.repo.FindTraineeTrainings(models.TrainingFilter{
		Username:    "john.doe",
		TrainerName: "Ann",
	})
	require.NoError(t, err)
	require.Len(t, trainings, 1)
	assert.Equal(t, "yoga session", trainings[0].Name)

	// Подстрока с учётом регистра
	trainings, err = g.repo.FindTraineeTrainings(models.TrainingFilter{
		Username:    "john.doe",
		TrainerName: "ann",
	})
	require.NoError(t, err)
	assert.Empty(t, trainings)

	// Совпадение по фамилии тоже подходит
	trainings, err = g.repo.FindTraineeTrainings(models.TrainingFilter{
		Username:    "john.doe",
		TrainerName: "Marsh",
	})
	require.NoError(t, err)
	require.Len(t, trainings, 1)
	assert.Equal(t, "cardio session", trainings[0].Name)
}

func TestFindTraineeTrainingsTypeExact(t *testing.T) {
	g := newGraph(t)
	typeRepo := trainingtype.NewTrainingTypeRepository(g.db)
	cardioType, err := typeRepo.GetByName("Cardio")
	require.NoError(t, err)

	g.add(t, "yoga session", g.yoga.ID, g.yogaID, "2026-03-10")
	g.add(t, "cardio session", g.cardio.ID, cardioType.ID, "2026-03-11")

	trainings, err := g.repo.FindTraineeTrainings(models.TrainingFilter{
		Username:         "john.doe",
		TrainingTypeName: "Cardio",
	})
	require.NoError(t, err)
	require.Len(t, trainings, 1)
	assert.Equal(t, "cardio session", trainings[0].Name)

	// Имя типа сравнивается точно, не как подстрока
	trainings, err = g.repo.FindTraineeTrainings(models.TrainingFilter{
		Username:         "john.doe",
		TrainingTypeName: "Card",
	})
	require.NoError(t, err)
	assert.Empty(t, trainings)
}

func TestFindTrainerTrainings(t *testing.T) {
	g := newGraph(t)
	g.add(t, "yoga session", g.yoga.ID, g.yogaID, "2026-03-10")
	g.add(t, "cardio session", g.cardio.ID, g.yogaID, "2026-03-11")

	trainings, err := g.repo.FindTrainerTrainings(models.TrainingFilter{Username: "anna.lee"})
	require.NoError(t, err)
	require.Len(t, trainings, 1)
	assert.Equal(t, "yoga session", trainings[0].Name)

	trainings, err = g.repo.FindTrainerTrainings(models.TrainingFilter{
		Username:    "anna.lee",
		TraineeName: "Do",
	})
	require.NoError(t, err)
	assert.Len(t, trainings, 1)
}

func TestUpdate(t *testing.T) {
	g := newGraph(t)
	training := g.add(t, "Morning yoga", g.yoga.ID, g.yogaID, "2026-03-10")

	training.Name = "Evening yoga"
	training.Date = date("2026-03-11")
	training.Duration = 90
	require.NoError(t, g.repo.Update(training))

	got, err := g.repo.GetByID(training.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening yoga", got.Name)
	assert.True(t, got.Date.Equal(date("2026-03-11")))
	assert.Equal(t, 90, got.Duration)
}

func TestDeleteReportsMissing(t *testing.T) {
	g := newGraph(t)
	training := g.add(t, "Morning yoga", g.yoga.ID, g.yogaID, "2026-03-10")

	deleted, err := g.repo.Delete(training.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = g.repo.Delete(training.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
