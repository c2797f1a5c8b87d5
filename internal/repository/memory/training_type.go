package memory

import (
	"fmt"
	"sort"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
)

type trainingTypeRepository struct {
	store *Store
}

func (r *trainingTypeRepository) GetByID(id int64) (*models.TrainingType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.types[id]
	if !ok {
		return nil, fmt.Errorf("training type %d: %w", id, apperrors.ErrNotFound)
	}
	out := *t
	return &out, nil
}

func (r *trainingTypeRepository) GetByName(name string) (*models.TrainingType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.types {
		if t.Name == name {
			out := *t
			return &out, nil
		}
	}
	return nil, fmt.Errorf("training type %q: %w", name, apperrors.ErrNotFound)
}

func (r *trainingTypeRepository) GetAll() ([]*models.TrainingType, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	types := make([]*models.TrainingType, 0, len(r.store.types))
	for _, t := range r.store.types {
		out := *t
		types = append(types, &out)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types, nil
}
