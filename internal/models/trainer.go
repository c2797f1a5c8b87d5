package models

type Trainer struct {
	ID               int64 `db:"id" json:"id"`
	UserID           int64 `db:"user_id" json:"user_id"`
	SpecializationID int64 `db:"specialization_id" json:"specialization_id"`

	// Заполняются репозиторием через JOIN
	User           User         `db:"user" json:"user"`
	Specialization TrainingType `db:"specialization" json:"specialization"`
}
