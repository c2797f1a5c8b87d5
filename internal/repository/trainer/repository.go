package trainer

import (
	"database/sql"
	"errors"
	"fmt"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"

	"github.com/jmoiron/sqlx"
)

type trainerRepository struct {
	db *sqlx.DB
}

func NewTrainerRepository(db *sqlx.DB) repository.TrainerRepository {
	return &trainerRepository{db: db}
}

const trainerSelect = `
	SELECT
		tr.id, tr.user_id, tr.specialization_id,
		u.id as "user.id", u.first_name as "user.first_name", u.last_name as "user.last_name",
		u.username as "user.username", u.password as "user.password", u.is_active as "user.is_active",
		s.id as "specialization.id", s.name as "specialization.name"
	FROM gym.trainers tr
	JOIN gym.users u ON tr.user_id = u.id
	JOIN gym.training_types s ON tr.specialization_id = s.id
`

func (r *trainerRepository) Create(trainer *models.Trainer) error {
	query := `
		INSERT INTO gym.trainers (user_id, specialization_id)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.db.QueryRow(query, trainer.UserID, trainer.SpecializationID).Scan(&trainer.ID)
}

func (r *trainerRepository) GetByID(id int64) (*models.Trainer, error) {
	var trainer models.Trainer
	query := trainerSelect + ` WHERE tr.id = $1`
	if err := r.db.Get(&trainer, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trainer %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) GetByUsername(username string) (*models.Trainer, error) {
	var trainer models.Trainer
	query := trainerSelect + ` WHERE u.username = $1`
	if err := r.db.Get(&trainer, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trainer %q: %w", username, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) Update(trainer *models.Trainer) error {
	query := `UPDATE gym.trainers SET specialization_id = $1 WHERE id = $2`
	_, err := r.db.Exec(query, trainer.SpecializationID, trainer.ID)
	return err
}

func (r *trainerRepository) GetTrainees(trainerID int64) ([]*models.Trainee, error) {
	var trainees []*models.Trainee
	query := `
		SELECT
			te.id, te.user_id, te.date_of_birth, te.address,
			u.id as "user.id", u.first_name as "user.first_name", u.last_name as "user.last_name",
			u.username as "user.username", u.password as "user.password", u.is_active as "user.is_active"
		FROM gym.trainee_trainer tt
		JOIN gym.trainees te ON tt.trainee_id = te.id
		JOIN gym.users u ON te.user_id = u.id
		WHERE tt.trainer_id = $1
		ORDER BY u.username
	`
	if err := r.db.Select(&trainees, query, trainerID); err != nil {
		return nil, err
	}
	return trainees, nil
}
