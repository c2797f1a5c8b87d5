package models

import "time"

type Training struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	TypeID    int64     `db:"type_id" json:"type_id"`
	TraineeID int64     `db:"trainee_id" json:"trainee_id"`
	TrainerID int64     `db:"trainer_id" json:"trainer_id"`
	Date      time.Time `db:"date" json:"date"`
	Duration  int       `db:"duration" json:"duration"` // минуты

	// Отображаемые поля из JOIN'ов
	TypeName        string `db:"type_name" json:"type_name,omitempty"`
	TraineeUsername string `db:"trainee_username" json:"trainee_username,omitempty"`
	TraineeName     string `db:"trainee_name" json:"trainee_name,omitempty"`
	TrainerUsername string `db:"trainer_username" json:"trainer_username,omitempty"`
	TrainerName     string `db:"trainer_name" json:"trainer_name,omitempty"`
}

// TrainingFilter критерии выборки тренировок.
// FromDate/ToDate включительные, имена ищутся как подстрока имени или фамилии.
type TrainingFilter struct {
	Username         string
	FromDate         *time.Time
	ToDate           *time.Time
	TrainerName      string
	TraineeName      string
	TrainingTypeName string
}
