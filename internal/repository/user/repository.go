package user

import (
	"database/sql"
	"errors"
	"fmt"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	query := `
		INSERT INTO gym.users (first_name, last_name, username, password, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(
		query,
		user.FirstName,
		user.LastName,
		user.Username,
		user.Password,
		user.IsActive,
	).Scan(&user.ID)
}

func (r *userRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM gym.users WHERE id = $1`
	if err := r.db.Get(&user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM gym.users WHERE username = $1`
	if err := r.db.Get(&user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll() ([]*models.User, error) {
	var users []*models.User
	query := `SELECT * FROM gym.users ORDER BY id`
	if err := r.db.Select(&users, query); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *models.User) error {
	query := `
		UPDATE gym.users
		SET first_name = $1, last_name = $2, username = $3, password = $4, is_active = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(
		query,
		user.FirstName,
		user.LastName,
		user.Username,
		user.Password,
		user.IsActive,
		user.ID,
	)
	return err
}

func (r *userRepository) Delete(id int64) error {
	query := `DELETE FROM gym.users WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
