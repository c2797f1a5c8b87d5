// Package repotest подготавливает живую postgres-базу для тестов
// репозиториев. Тесты пропускаются, если TEST_DATABASE_URL не задан.
// Пакеты делят одну базу, поэтому с заданным TEST_DATABASE_URL тесты
// запускаются как go test -p 1 ./...
package repotest

import (
	"os"
	"testing"

	"gym-crm/internal/database"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// Open подключается к тестовой базе, накатывает схему и очищает таблицы.
// Каждый тест получает пустую базу с сидированным справочником типов.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	_, err = db.Exec(`
		TRUNCATE gym.trainings, gym.trainee_trainer, gym.trainers,
			gym.trainees, gym.users, gym.training_types
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
	require.NoError(t, database.SeedTrainingTypes(db))

	return db
}
