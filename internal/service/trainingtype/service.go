package trainingtype_service

import (
	"strings"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/models"
	"gym-crm/internal/repository"
	"gym-crm/internal/service"
)

// Каталог типов тренировок только для чтения, наполняется сидом при старте
type trainingTypeService struct {
	typeRepo repository.TrainingTypeRepository
}

func NewTrainingTypeService(typeRepo repository.TrainingTypeRepository) service.TrainingTypeService {
	return &trainingTypeService{typeRepo: typeRepo}
}

func (s *trainingTypeService) FindByID(id int64) (*models.TrainingType, error) {
	if id == 0 {
		return nil, apperrors.NotFound("training type")
	}
	return s.typeRepo.GetByID(id)
}

func (s *trainingTypeService) FindByName(name string) (*models.TrainingType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NotFound("training type")
	}
	return s.typeRepo.GetByName(strings.TrimSpace(name))
}

func (s *trainingTypeService) FindAll() ([]*models.TrainingType, error) {
	return s.typeRepo.GetAll()
}

func (s *trainingTypeService) ExistsByID(id int64) bool {
	_, err := s.FindByID(id)
	return err == nil
}

func (s *trainingTypeService) ExistsByName(name string) bool {
	_, err := s.FindByName(name)
	return err == nil
}
