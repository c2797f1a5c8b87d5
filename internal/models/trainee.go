package models

import "time"

type Trainee struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Address     *string    `db:"address" json:"address,omitempty"`

	// Заполняется репозиторием через JOIN с gym.users
	User User `db:"user" json:"user"`
}
