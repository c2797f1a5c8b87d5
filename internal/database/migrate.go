package database

import (
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE SCHEMA IF NOT EXISTS gym;

CREATE TABLE IF NOT EXISTS gym.users (
	id         BIGSERIAL PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	username   TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	is_active  BOOLEAN NOT NULL DEFAULT true
);

CREATE TABLE IF NOT EXISTS gym.training_types (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS gym.trainees (
	id            BIGSERIAL PRIMARY KEY,
	user_id       BIGINT NOT NULL UNIQUE REFERENCES gym.users(id) ON DELETE CASCADE,
	date_of_birth DATE,
	address       TEXT
);

CREATE TABLE IF NOT EXISTS gym.trainers (
	id                BIGSERIAL PRIMARY KEY,
	user_id           BIGINT NOT NULL UNIQUE REFERENCES gym.users(id) ON DELETE CASCADE,
	specialization_id BIGINT NOT NULL REFERENCES gym.training_types(id)
);

CREATE TABLE IF NOT EXISTS gym.trainings (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	type_id    BIGINT NOT NULL REFERENCES gym.training_types(id),
	trainee_id BIGINT NOT NULL REFERENCES gym.trainees(id) ON DELETE CASCADE,
	trainer_id BIGINT NOT NULL REFERENCES gym.trainers(id) ON DELETE CASCADE,
	date       DATE NOT NULL,
	duration   INT NOT NULL CHECK (duration > 0)
);

CREATE TABLE IF NOT EXISTS gym.trainee_trainer (
	trainee_id BIGINT NOT NULL REFERENCES gym.trainees(id) ON DELETE CASCADE,
	trainer_id BIGINT NOT NULL REFERENCES gym.trainers(id) ON DELETE CASCADE,
	PRIMARY KEY (trainee_id, trainer_id)
);
`

// Migrate создаёт схему и таблицы, если их ещё нет
func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
