package database

import (
	"github.com/jmoiron/sqlx"
)

// DefaultTrainingTypes справочник типов тренировок.
// Типы сидируются здесь и не мутируются рабочими сценариями.
var DefaultTrainingTypes = []string{"Strength", "Cardio", "Yoga", "CrossFit", "Boxing"}

// SeedTrainingTypes идемпотентно наполняет справочник
func SeedTrainingTypes(db *sqlx.DB) error {
	for _, name := range DefaultTrainingTypes {
		_, err := db.Exec(`
			INSERT INTO gym.training_types (name)
			VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name)
		if err != nil {
			return err
		}
	}
	return nil
}
