package memory

import (
	"fmt"
	"sort"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
)

type traineeRepository struct {
	store *Store
}

func (r *traineeRepository) Create(trainee *models.Trainee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	trainee.ID = r.store.id()
	stored := *trainee
	stored.User = models.User{}
	r.store.trainees[trainee.ID] = &stored
	r.store.assignments[trainee.ID] = make(map[int64]struct{})
	return nil
}

func (r *traineeRepository) GetByID(id int64) (*models.Trainee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.trainees[id]
	if !ok {
		return nil, fmt.Errorf("trainee %d: %w", id, apperrors.ErrNotFound)
	}
	return r.store.loadTrainee(t), nil
}

func (r *traineeRepository) GetByUsername(username string) (*models.Trainee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u := r.store.userByUsername(username)
	if u != nil {
		for _, t := range r.store.trainees {
			if t.UserID == u.ID {
				return r.store.loadTrainee(t), nil
			}
		}
	}
	return nil, fmt.Errorf("trainee %q: %w", username, apperrors.ErrNotFound)
}

func (r *traineeRepository) Update(trainee *models.Trainee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.trainees[trainee.ID]
	if !ok {
		return nil
	}
	stored.DateOfBirth = trainee.DateOfBirth
	stored.Address = trainee.Address
	return nil
}

func (r *traineeRepository) DeleteWithUser(trainee *models.Trainee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.deleteTraineeCascade(trainee.ID)
	delete(r.store.users, trainee.UserID)
	return nil
}

func (r *traineeRepository) GetTrainers(traineeID int64) ([]*models.Trainer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	trainers := make([]*models.Trainer, 0)
	for trainerID := range r.store.assignments[traineeID] {
		if tr, ok := r.store.trainers[trainerID]; ok {
			trainers = append(trainers, r.store.loadTrainer(tr))
		}
	}
	sort.Slice(trainers, func(i, j int) bool { return trainers[i].User.Username < trainers[j].User.Username })
	return trainers, nil
}

func (r *traineeRepository) ReplaceTrainers(traineeID int64, trainerIDs []int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	replaced := make(map[int64]struct{}, len(trainerIDs))
	for _, id := range trainerIDs {
		replaced[id] = struct{}{}
	}
	r.store.assignments[traineeID] = replaced
	return nil
}

func (r *traineeRepository) GetUnassignedTrainers(traineeUsername string) ([]*models.Trainer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	assigned := make(map[int64]struct{})
	if u := r.store.userByUsername(traineeUsername); u != nil {
		for _, t := range r.store.trainees {
			if t.UserID == u.ID {
				assigned = r.store.assignments[t.ID]
			}
		}
	}

	trainers := make([]*models.Trainer, 0)
	for id, tr := range r.store.trainers {
		if _, ok := assigned[id]; ok {
			continue
		}
		if u, ok := r.store.users[tr.UserID]; !ok || !u.IsActive {
			continue
		}
		trainers = append(trainers, r.store.loadTrainer(tr))
	}
	sort.Slice(trainers, func(i, j int) bool { return trainers[i].User.Username < trainers[j].User.Username })
	return trainers, nil
}
