package facade

// DateLayout формат всех дат на границе API
const DateLayout = "2006-01-02"

type TraineeRegistrationRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Address     *string `json:"address,omitempty"`
}

type TrainerRegistrationRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Specialization string `json:"specialization"`
}

// RegistrationResponse единственное место, где пароль уходит наружу
type RegistrationResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type TrainerSummary struct {
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Specialization string `json:"specialization"`
}

type TraineeSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TraineeProfileResponse struct {
	ID          int64            `json:"id"`
	Username    string           `json:"username"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	DateOfBirth *string          `json:"date_of_birth,omitempty"`
	Address     *string          `json:"address,omitempty"`
	IsActive    bool             `json:"is_active"`
	Trainers    []TrainerSummary `json:"trainers"`
}

type TrainerProfileResponse struct {
	ID             int64            `json:"id"`
	Username       string           `json:"username"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Specialization string           `json:"specialization"`
	IsActive       bool             `json:"is_active"`
	Trainees       []TraineeSummary `json:"trainees"`
}

type UpdateTraineeProfileRequest struct {
	ID      int64   `json:"id"`
	Address *string `json:"address,omitempty"`
}

type UpdateTrainerProfileRequest struct {
	ID               int64  `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	IsActive         bool   `json:"is_active"`
	SpecializationID int64  `json:"specialization_id"`
}

type UpdateTraineeTrainersRequest struct {
	TrainerUsernames []string `json:"trainer_usernames"`
}

type AddTrainingRequest struct {
	TraineeUsername string `json:"trainee_username"`
	TrainerUsername string `json:"trainer_username"`
	Name            string `json:"name"`
	TrainingTypeID  int64  `json:"training_type_id"`
	Date            string `json:"date"` // YYYY-MM-DD
	Duration        int    `json:"duration"`
}

// TrainingSummary отдаётся обеим сторонам: PersonName это тренер в выборке
// trainee и наоборот
type TrainingSummary struct {
	ID           int64  `json:"id"`
	TrainingName string `json:"training_name"`
	TrainingDate string `json:"training_date"`
	TrainingType string `json:"training_type"`
	Duration     int    `json:"duration"`
	PersonName   string `json:"person_name"`
}

type TrainingTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ChangePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ActivationRequest struct {
	IsActive bool `json:"is_active"`
}
