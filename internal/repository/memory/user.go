package memory

import (
	"fmt"
	"sort"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.ID = r.store.id()
	stored := *user
	r.store.users[user.ID] = &stored
	return nil
}

func (r *userRepository) GetByID(id int64) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
	}
	out := *u
	return &out, nil
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u := r.store.userByUsername(username)
	if u == nil {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
	}
	out := *u
	return &out, nil
}

func (r *userRepository) GetAll() ([]*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := make([]*models.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		out := *u
		users = append(users, &out)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *userRepository) Update(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return nil
	}
	stored := *user
	r.store.users[user.ID] = &stored
	return nil
}

func (r *userRepository) Delete(id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.deleteUserCascade(id)
	return nil
}
