package memory

import (
	"fmt"
	"sort"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
)

type trainerRepository struct {
	store *Store
}

func (r *trainerRepository) Create(trainer *models.Trainer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	trainer.ID = r.store.id()
	stored := *trainer
	stored.User = models.User{}
	stored.Specialization = models.TrainingType{}
	r.store.trainers[trainer.ID] = &stored
	return nil
}

func (r *trainerRepository) GetByID(id int64) (*models.Trainer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.trainers[id]
	if !ok {
		return nil, fmt.Errorf("trainer %d: %w", id, apperrors.ErrNotFound)
	}
	return r.store.loadTrainer(t), nil
}

func (r *trainerRepository) GetByUsername(username string) (*models.Trainer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u := r.store.userByUsername(username)
	if u != nil {
		for _, t := range r.store.trainers {
			if t.UserID == u.ID {
				return r.store.loadTrainer(t), nil
			}
		}
	}
	return nil, fmt.Errorf("trainer %q: %w", username, apperrors.ErrNotFound)
}

func (r *trainerRepository) Update(trainer *models.Trainer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.trainers[trainer.ID]
	if !ok {
		return nil
	}
	stored.SpecializationID = trainer.SpecializationID
	return nil
}

func (r *trainerRepository) GetTrainees(trainerID int64) ([]*models.Trainee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	trainees := make([]*models.Trainee, 0)
	for traineeID, trainerIDs := range r.store.assignments {
		if _, ok := trainerIDs[trainerID]; !ok {
			continue
		}
		if te, ok := r.store.trainees[traineeID]; ok {
			trainees = append(trainees, r.store.loadTrainee(te))
		}
	}
	sort.Slice(trainees, func(i, j int) bool { return trainees[i].User.Username < trainees[j].User.Username })
	return trainees, nil
}
