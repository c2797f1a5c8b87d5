package memory

import (
	"fmt"
	"sort"
	"strings"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
)

type trainingRepository struct {
	store *Store
}

func (r *trainingRepository) Create(training *models.Training) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	training.ID = r.store.id()
	r.store.trainings[training.ID] = &models.Training{
		ID:        training.ID,
		Name:      training.Name,
		TypeID:    training.TypeID,
		TraineeID: training.TraineeID,
		TrainerID: training.TrainerID,
		Date:      training.Date,
		Duration:  training.Duration,
	}
	return nil
}

func (r *trainingRepository) GetByID(id int64) (*models.Training, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.trainings[id]
	if !ok {
		return nil, fmt.Errorf("training %d: %w", id, apperrors.ErrNotFound)
	}
	return r.store.loadTraining(t), nil
}

func (r *trainingRepository) Update(training *models.Training) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.trainings[training.ID]
	if !ok {
		return nil
	}
	stored.Name = training.Name
	stored.TypeID = training.TypeID
	stored.TraineeID = training.TraineeID
	stored.TrainerID = training.TrainerID
	stored.Date = training.Date
	stored.Duration = training.Duration
	return nil
}

func (r *trainingRepository) Delete(id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.trainings[id]; !ok {
		return false, nil
	}
	delete(r.store.trainings, id)
	return true, nil
}

func (r *trainingRepository) FindTraineeTrainings(filter models.TrainingFilter) ([]*models.Training, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.filtered(filter, true), nil
}

func (r *trainingRepository) FindTrainerTrainings(filter models.TrainingFilter) ([]*models.Training, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.filtered(filter, false), nil
}

func (r *trainingRepository) filtered(filter models.TrainingFilter, byTrainee bool) []*models.Training {
	result := make([]*models.Training, 0)
	for _, t := range r.store.trainings {
		loaded := r.store.loadTraining(t)

		if byTrainee {
			if loaded.TraineeUsername != filter.Username {
				continue
			}
		} else if loaded.TrainerUsername != filter.Username {
			continue
		}
		if filter.FromDate != nil && loaded.Date.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && loaded.Date.After(*filter.ToDate) {
			continue
		}
		if name := strings.TrimSpace(filter.TrainerName); name != "" && !r.personMatches(loaded.TrainerID, name, false) {
			continue
		}
		if name := strings.TrimSpace(filter.TraineeName); name != "" && !r.personMatches(loaded.TraineeID, name, true) {
			continue
		}
		if typeName := strings.TrimSpace(filter.TrainingTypeName); typeName != "" && loaded.TypeName != typeName {
			continue
		}
		result = append(result, loaded)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result
}

// personMatches проверяет вхождение подстроки в имя или фамилию (с учётом регистра)
func (r *trainingRepository) personMatches(id int64, name string, trainee bool) bool {
	var userID int64
	if trainee {
		te, ok := r.store.trainees[id]
		if !ok {
			return false
		}
		userID = te.UserID
	} else {
		tr, ok := r.store.trainers[id]
		if !ok {
			return false
		}
		userID = tr.UserID
	}
	u, ok := r.store.users[userID]
	if !ok {
		return false
	}
	return strings.Contains(u.FirstName, name) || strings.Contains(u.LastName, name)
}
