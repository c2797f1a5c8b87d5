package trainingtype

import (
	"database/sql"
	"errors"
	"fmt"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"

	"github.com/jmoiron/sqlx"
)

type trainingTypeRepository struct {
	db *sqlx.DB
}

func NewTrainingTypeRepository(db *sqlx.DB) repository.TrainingTypeRepository {
	return &trainingTypeRepository{db: db}
}

func (r *trainingTypeRepository) GetByID(id int64) (*models.TrainingType, error) {
	var trainingType models.TrainingType
	query := `SELECT * FROM gym.training_types WHERE id = $1`
	if err := r.db.Get(&trainingType, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("training type %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &trainingType, nil
}

func (r *trainingTypeRepository) GetByName(name string) (*models.TrainingType, error) {
	var trainingType models.TrainingType
	query := `SELECT * FROM gym.training_types WHERE name = $1`
	if err := r.db.Get(&trainingType, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("training type %q: %w", name, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &trainingType, nil
}

func (r *trainingTypeRepository) GetAll() ([]*models.TrainingType, error) {
	var types []*models.TrainingType
	query := `SELECT * FROM gym.training_types ORDER BY name`
	if err := r.db.Select(&types, query); err != nil {
		return nil, err
	}
	return types, nil
}
