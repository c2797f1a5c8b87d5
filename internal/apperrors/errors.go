package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Сентинельные ошибки доменного слоя. Репозитории возвращают ErrNotFound
// (обёрнутым), сервисы транслируют остальные. Причина отказа аутентификации
// наружу не раскрывается: неверный пароль, неизвестный пользователь и
// неактивный аккаунт дают одну и ту же ErrNotAuthenticated.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrNotAuthenticated = errors.New("authentication failed")
	ErrOwnership        = errors.New("entity does not belong to authenticated user")
)

// NotFound помечает отсутствующую сущность по имени
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// FieldError ошибка валидации одного поля
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + " " + e.Message
}

type FieldErrors []FieldError

// Err сворачивает список в одну ошибку валидации, nil если список пуст
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.String()
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(parts, ", "))
}

// Validationf одиночная ошибка валидации без привязки к полю
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
