package trainee

import (
	"database/sql"
	"errors"
	"fmt"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"

	"github.com/jmoiron/sqlx"
)

type traineeRepository struct {
	db *sqlx.DB
}

func NewTraineeRepository(db *sqlx.DB) repository.TraineeRepository {
	return &traineeRepository{db: db}
}

const traineeSelect = `
	SELECT
		te.id, te.user_id, te.date_of_birth, te.address,
		u.id as "user.id", u.first_name as "user.first_name", u.last_name as "user.last_name",
		u.username as "user.username", u.password as "user.password", u.is_active as "user.is_active"
	FROM gym.trainees te
	JOIN gym.users u ON te.user_id = u.id
`

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

func (r *traineeRepository) Create(trainee *models.Trainee) error {
	query := `
		INSERT INTO gym.trainees (user_id, date_of_birth, address)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.QueryRow(
		query,
		trainee.UserID,
		trainee.DateOfBirth,
		trainee.Address,
	).Scan(&trainee.ID)
}

func (r *traineeRepository) GetByID(id int64) (*models.Trainee, error) {
	var trainee models.Trainee
	query := traineeSelect + ` WHERE te.id = $1`
	if err := r.db.Get(&trainee, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trainee %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &trainee, nil
}

func (r *traineeRepository) GetByUsername(username string) (*models.Trainee, error) {
	var trainee models.Trainee
	query := traineeSelect + ` WHERE u.username = $1`
	if err := r.db.Get(&trainee, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trainee %q: %w", username, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &trainee, nil
}

func (r *traineeRepository) Update(trainee *models.Trainee) error {
	query := `
		UPDATE gym.trainees
		SET date_of_birth = $1, address = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(query, trainee.DateOfBirth, trainee.Address, trainee.ID)
	return err
}

func (r *traineeRepository) DeleteWithUser(trainee *models.Trainee) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Тренировки и назначения удаляются каскадом по FK
	if _, err := tx.Exec(`DELETE FROM gym.trainees WHERE id = $1`, trainee.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM gym.users WHERE id = $1`, trainee.UserID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *traineeRepository) GetTrainers(traineeID int64) ([]*models.Trainer, error) {
	var trainers []*models.Trainer
	query := `
		SELECT
			tr.id, tr.user_id, tr.specialization_id,
			u.id as "user.id", u.first_name as "user.first_name", u.last_name as "user.last_name",
			u.username as "user.username", u.password as "user.password", u.is_active as "user.is_active",
			s.id as "specialization.id", s.name as "specialization.name"
		FROM gym.trainee_trainer tt
		JOIN gym.trainers tr ON tt.trainer_id = tr.id
		JOIN gym.users u ON tr.user_id = u.id
		JOIN gym.training_types s ON tr.specialization_id = s.id
		WHERE tt.trainee_id = $1
		ORDER BY u.username
	`
	if err := r.db.Select(&trainers, query, traineeID); err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *traineeRepository) ReplaceTrainers(traineeID int64, trainerIDs []int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM gym.trainee_trainer WHERE trainee_id = $1`, traineeID); err != nil {
		return err
	}
	for _, trainerID := range trainerIDs {
		_, err := tx.Exec(`
			INSERT INTO gym.trainee_trainer (trainee_id, trainer_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, traineeID, trainerID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *traineeRepository) GetUnassignedTrainers(traineeUsername string) ([]*models.Trainer, error) {
	var trainers []*models.Trainer
	// Для несуществующего trainee подзапрос пуст и вернутся все активные тренеры
	query := trainerSelect + `
		WHERE u.is_active = true
		AND tr.id NOT IN (
			SELECT tt.trainer_id
			FROM gym.trainee_trainer tt
			JOIN gym.trainees te ON tt.trainee_id = te.id
			JOIN gym.users tu ON te.user_id = tu.id
			WHERE tu.username = $1
		)
		ORDER BY u.username
	`
	if err := r.db.Select(&trainers, query, traineeUsername); err != nil {
		return nil, err
	}
	return trainers, nil
}
