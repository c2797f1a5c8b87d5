package training

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"

	"github.com/jmoiron/sqlx"
)

type trainingRepository struct {
	db *sqlx.DB
}

func NewTrainingRepository(db *sqlx.DB) repository.TrainingRepository {
	return &trainingRepository{db: db}
}

const trainingSelect = `
	SELECT
		t.id, t.name, t.type_id, t.trainee_id, t.trainer_id, t.date, t.duration,
		tt.name as type_name,
		teu.username as trainee_username,
		teu.first_name || ' ' || teu.last_name as trainee_name,
		tru.username as trainer_username,
		tru.first_name || ' ' || tru.last_name as trainer_name
	FROM gym.trainings t
	JOIN gym.training_types tt ON t.type_id = tt.id
	JOIN gym.trainees te ON t.trainee_id = te.id
	JOIN gym.users teu ON te.user_id = teu.id
	JOIN gym.trainers tr ON t.trainer_id = tr.id
	JOIN gym.users tru ON tr.user_id = tru.id
`

func (r *trainingRepository) Create(training *models.Training) error {
	query := `
		INSERT INTO gym.trainings (name, type_id, trainee_id, trainer_id, date, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.db.QueryRow(
		query,
		training.Name,
		training.TypeID,
		training.TraineeID,
		training.TrainerID,
		training.Date,
		training.Duration,
	).Scan(&training.ID)
}

func (r *trainingRepository) GetByID(id int64) (*models.Training, error) {
	var training models.Training
	query := trainingSelect + ` WHERE t.id = $1`
	if err := r.db.Get(&training, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("training %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &training, nil
}

func (r *trainingRepository) Update(training *models.Training) error {
	query := `
		UPDATE gym.trainings
		SET name = $1, type_id = $2, trainee_id = $3, trainer_id = $4, date = $5, duration = $6
		WHERE id = $7
	`
	_, err := r.db.Exec(
		query,
		training.Name,
		training.TypeID,
		training.TraineeID,
		training.TrainerID,
		training.Date,
		training.Duration,
		training.ID,
	)
	return err
}

func (r *trainingRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM gym.trainings WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *trainingRepository) FindTraineeTrainings(filter models.TrainingFilter) ([]*models.Training, error) {
	conditions := []string{`teu.username = $1`}
	args := []interface{}{filter.Username}

	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		conditions = append(conditions, fmt.Sprintf(`t.date >= $%d`, len(args)))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		conditions = append(conditions, fmt.Sprintf(`t.date <= $%d`, len(args)))
	}
	if strings.TrimSpace(filter.TrainerName) != "" {
		args = append(args, "%"+strings.TrimSpace(filter.TrainerName)+"%")
		conditions = append(conditions, fmt.Sprintf(`(tru.first_name LIKE $%d OR tru.last_name LIKE $%d)`, len(args), len(args)))
	}
	if strings.TrimSpace(filter.TrainingTypeName) != "" {
		args = append(args, strings.TrimSpace(filter.TrainingTypeName))
		conditions = append(conditions, fmt.Sprintf(`tt.name = $%d`, len(args)))
	}

	return r.selectTrainings(conditions, args)
}

func (r *trainingRepository) FindTrainerTrainings(filter models.TrainingFilter) ([]*models.Training, error) {
	conditions := []string{`tru.username = $1`}
	args := []interface{}{filter.Username}

	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		conditions = append(conditions, fmt.Sprintf(`t.date >= $%d`, len(args)))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		conditions = append(conditions, fmt.Sprintf(`t.date <= $%d`, len(args)))
	}
	if strings.TrimSpace(filter.TraineeName) != "" {
		args = append(args, "%"+strings.TrimSpace(filter.TraineeName)+"%")
		conditions = append(conditions, fmt.Sprintf(`(teu.first_name LIKE $%d OR teu.last_name LIKE $%d)`, len(args), len(args)))
	}

	return r.selectTrainings(conditions, args)
}

func (r *trainingRepository) selectTrainings(conditions []string, args []interface{}) ([]*models.Training, error) {
	var trainings []*models.Training
	query := trainingSelect + ` WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY t.date DESC`
	if err := r.db.Select(&trainings, query, args...); err != nil {
		return nil, err
	}
	return trainings, nil
}
