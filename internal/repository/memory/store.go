// Package memory содержит in-memory реализации репозиториев.
// Семантика повторяет postgres-реализации, используется в тестах сервисов.
package memory

import (
	"sync"

	"gym-crm/internal/models"
	"gym-crm/internal/repository"
)

type Store struct {
	mu     sync.Mutex
	nextID int64

	users       map[int64]*models.User
	trainees    map[int64]*models.Trainee
	trainers    map[int64]*models.Trainer
	trainings   map[int64]*models.Training
	types       map[int64]*models.TrainingType
	assignments map[int64]map[int64]struct{} // trainee id -> trainer ids
}

func NewStore() *Store {
	return &Store{
		users:       make(map[int64]*models.User),
		trainees:    make(map[int64]*models.Trainee),
		trainers:    make(map[int64]*models.Trainer),
		trainings:   make(map[int64]*models.Training),
		types:       make(map[int64]*models.TrainingType),
		assignments: make(map[int64]map[int64]struct{}),
	}
}

func (s *Store) Users() repository.UserRepository                 { return &userRepository{s} }
func (s *Store) Trainees() repository.TraineeRepository           { return &traineeRepository{s} }
func (s *Store) Trainers() repository.TrainerRepository           { return &trainerRepository{s} }
func (s *Store) Trainings() repository.TrainingRepository         { return &trainingRepository{s} }
func (s *Store) TrainingTypes() repository.TrainingTypeRepository { return &trainingTypeRepository{s} }

// SeedTypes добавляет справочные типы тренировок
func (s *Store) SeedTypes(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		s.nextID++
		s.types[s.nextID] = &models.TrainingType{ID: s.nextID, Name: name}
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// helpers ниже вызываются под s.mu

func (s *Store) userByUsername(username string) *models.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (s *Store) loadTrainee(t *models.Trainee) *models.Trainee {
	out := *t
	if u, ok := s.users[t.UserID]; ok {
		out.User = *u
	}
	return &out
}

func (s *Store) loadTrainer(t *models.Trainer) *models.Trainer {
	out := *t
	if u, ok := s.users[t.UserID]; ok {
		out.User = *u
	}
	if typ, ok := s.types[t.SpecializationID]; ok {
		out.Specialization = *typ
	}
	return &out
}

func (s *Store) loadTraining(t *models.Training) *models.Training {
	out := *t
	if typ, ok := s.types[t.TypeID]; ok {
		out.TypeName = typ.Name
	}
	if te, ok := s.trainees[t.TraineeID]; ok {
		if u, ok := s.users[te.UserID]; ok {
			out.TraineeUsername = u.Username
			out.TraineeName = u.FirstName + " " + u.LastName
		}
	}
	if tr, ok := s.trainers[t.TrainerID]; ok {
		if u, ok := s.users[tr.UserID]; ok {
			out.TrainerUsername = u.Username
			out.TrainerName = u.FirstName + " " + u.LastName
		}
	}
	return &out
}

// deleteUserCascade повторяет каскады FK схемы gym
func (s *Store) deleteUserCascade(userID int64) {
	delete(s.users, userID)
	for id, te := range s.trainees {
		if te.UserID == userID {
			s.deleteTraineeCascade(id)
		}
	}
	for id, tr := range s.trainers {
		if tr.UserID == userID {
			delete(s.trainers, id)
			for traineeID := range s.assignments {
				delete(s.assignments[traineeID], id)
			}
			for tid, t := range s.trainings {
				if t.TrainerID == id {
					delete(s.trainings, tid)
				}
			}
		}
	}
}

func (s *Store) deleteTraineeCascade(traineeID int64) {
	delete(s.trainees, traineeID)
	delete(s.assignments, traineeID)
	for id, t := range s.trainings {
		if t.TraineeID == traineeID {
			delete(s.trainings, id)
		}
	}
}
