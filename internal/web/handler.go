package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/facade"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	facade *facade.GymFacade
	log    *zap.Logger
}

func NewHandler(gymFacade *facade.GymFacade, log *zap.Logger) *Handler {
	return &Handler{facade: gymFacade, log: log}
}

// credentials достаёт пару логин/пароль из заголовков запроса
func credentials(r *http.Request) (string, string) {
	return r.Header.Get("X-Username"), r.Header.Get("X-Password")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("не удалось записать ответ", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrOwnership):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		h.log.Error("внутренняя ошибка", zap.Error(err))
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Validationf("invalid request body: %v", err)
	}
	return nil
}

func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(facade.DateLayout, value)
	if err != nil {
		return nil, apperrors.Validationf("%s: expected format %s", name, facade.DateLayout)
	}
	return &date, nil
}

func (h *Handler) RegisterTrainee(w http.ResponseWriter, r *http.Request) {
	var req facade.TraineeRegistrationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	resp, err := h.facade.RegisterTrainee(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) RegisterTrainer(w http.ResponseWriter, r *http.Request) {
	var req facade.TrainerRegistrationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	resp, err := h.facade.RegisterTrainer(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	username, password := credentials(r)
	if err := h.facade.Login(username, password); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nil)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req facade.ChangePasswordRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.facade.ChangePassword(req); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nil)
}

func (h *Handler) GetTraineeProfile(w http.ResponseWriter, r *http.Request) {
	username, password := credentials(r)
	resp, err := h.facade.GetTraineeProfile(username, password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateTraineeProfile(w http.ResponseWriter, r *http.Request) {
	var req facade.UpdateTraineeProfileRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	username, password := credentials(r)
	resp, err := h.facade.UpdateTraineeProfile(username, password, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteTrainee(w http.ResponseWriter, r *http.Request) {
	username, password := credentials(r)
	if err := h.facade.DeleteTrainee(username, password); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) SetTraineeActiveStatus(w http.ResponseWriter, r *http.Request) {
	var req facade.ActivationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	username, password := credentials(r)
	changed, err := h.facade.SetTraineeActiveStatus(username, password, req.IsActive)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"changed": changed})
}

func (h *Handler) GetTraineeTrainings(w http.ResponseWriter, r *http.Request) {
	username, password := credentials(r)

	fromDate, err := parseDateParam(r, "from_date")
	if err != nil {
		h.writeError(w, err)
		return
	}
	toDate, err := parseDateParam(r, "to_date")
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp, err := h.facade.GetTraineeTrainings(username, password, fromDate, toDate,
		r.URL.Query().Get("trainer_name"), r.URL.Query().Get("training_type"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetUnassignedTrainers(w http.ResponseWriter, r *http.Request) {
	username, password := credentials(r)
	resp, err := h.facade.GetUnassignedTrainers(username, password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateTraineeTrainers(w http.ResponseWriter, r *http.Request) {
	var req facade.UpdateTraineeTrainersRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	username, password := credentials(r)
	resp, err := h.facade.UpdateTraineeTrainers(username, password, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetTrainerProfile(w http.ResponseWriter, r *http.Request) {
	username, password := credentials(r)
	resp, err := h.facade.GetTrainerProfile(username, password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateTrainerProfile(w http.ResponseWriter, r *http.Request) {
	var req facade.UpdateTrainerProfileRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	username, password := credentials(r)
	resp, err := h.facade.UpdateTrainerProfile(username, password, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SetTrainerActiveStatus(w http.ResponseWriter, r *http.Request) {
	var req facade.ActivationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	username, password := credentials(r)
	changed, err := h.facade.SetTrainerActiveStatus(username, password, req.IsActive)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"changed": changed})
}

func (h *Handler) GetTrainerTrainings(w http.ResponseWriter, r *http.Request) {
	username, password := credentials(r)

	fromDate, err := parseDateParam(r, "from_date")
	if err != nil {
		h.writeError(w, err)
		return
	}
	toDate, err := parseDateParam(r, "to_date")
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp, err := h.facade.GetTrainerTrainings(username, password, fromDate, toDate,
		r.URL.Query().Get("trainee_name"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AddTraining(w http.ResponseWriter, r *http.Request) {
	var req facade.AddTrainingRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	username, password := credentials(r)
	resp, err := h.facade.AddTraining(username, password, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) DeleteTraining(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, apperrors.Validationf("id must be a number"))
		return
	}

	username, password := credentials(r)
	deleted, err := h.facade.DeleteTraining(username, password, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !deleted {
		h.writeError(w, apperrors.NotFound("training"))
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) GetTrainingTypes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.facade.GetTrainingTypes()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
