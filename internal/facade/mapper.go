package facade

import (
	"time"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
)

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.Validationf("date %q: expected format %s", value, DateLayout)
	}
	return date, nil
}

func formatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// id здесь это id профиля (trainee/trainer), не пользователя
func toRegistrationResponse(id int64, user *models.User) RegistrationResponse {
	return RegistrationResponse{
		ID:       id,
		Username: user.Username,
		Password: user.Password,
	}
}

func toTrainerSummary(trainer *models.Trainer) TrainerSummary {
	return TrainerSummary{
		Username:       trainer.User.Username,
		FirstName:      trainer.User.FirstName,
		LastName:       trainer.User.LastName,
		Specialization: trainer.Specialization.Name,
	}
}

func toTrainerSummaries(trainers []*models.Trainer) []TrainerSummary {
	out := make([]TrainerSummary, 0, len(trainers))
	for _, trainer := range trainers {
		out = append(out, toTrainerSummary(trainer))
	}
	return out
}

func toTraineeSummaries(trainees []*models.Trainee) []TraineeSummary {
	out := make([]TraineeSummary, 0, len(trainees))
	for _, trainee := range trainees {
		out = append(out, TraineeSummary{
			Username:  trainee.User.Username,
			FirstName: trainee.User.FirstName,
			LastName:  trainee.User.LastName,
		})
	}
	return out
}

func toTraineeProfile(trainee *models.Trainee, trainers []*models.Trainer) TraineeProfileResponse {
	resp := TraineeProfileResponse{
		ID:        trainee.ID,
		Username:  trainee.User.Username,
		FirstName: trainee.User.FirstName,
		LastName:  trainee.User.LastName,
		Address:   trainee.Address,
		IsActive:  trainee.User.IsActive,
		Trainers:  toTrainerSummaries(trainers),
	}
	if trainee.DateOfBirth != nil {
		dob := formatDate(*trainee.DateOfBirth)
		resp.DateOfBirth = &dob
	}
	return resp
}

func toTrainerProfile(trainer *models.Trainer, trainees []*models.Trainee) TrainerProfileResponse {
	return TrainerProfileResponse{
		ID:             trainer.ID,
		Username:       trainer.User.Username,
		FirstName:      trainer.User.FirstName,
		LastName:       trainer.User.LastName,
		Specialization: trainer.Specialization.Name,
		IsActive:       trainer.User.IsActive,
		Trainees:       toTraineeSummaries(trainees),
	}
}

// forTrainee выбирает, чьё имя показать напротив тренировки
func toTrainingSummaries(trainings []*models.Training, forTrainee bool) []TrainingSummary {
	out := make([]TrainingSummary, 0, len(trainings))
	for _, t := range trainings {
		person := t.TrainerName
		if !forTrainee {
			person = t.TraineeName
		}
		out = append(out, TrainingSummary{
			ID:           t.ID,
			TrainingName: t.Name,
			TrainingDate: formatDate(t.Date),
			TrainingType: t.TypeName,
			Duration:     t.Duration,
			PersonName:   person,
		})
	}
	return out
}

func toTrainingTypeResponses(types []*models.TrainingType) []TrainingTypeResponse {
	out := make([]TrainingTypeResponse, 0, len(types))
	for _, tt := range types {
		out = append(out, TrainingTypeResponse{ID: tt.ID, Name: tt.Name})
	}
	return out
}
