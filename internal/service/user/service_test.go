package user_service

import (
	"testing"

	"gym-crm/internal/apperrors"
	"gym-crm/internal/repository/memory"
	"gym-crm/internal/service"
	"gym-crm/pkg/credentials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) (service.UserService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewUserService(store.Users(), zap.NewNop()), store
}

func TestCreateGeneratesCredentials(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Create("John", "Doe")
	require.NoError(t, err)

	assert.Equal(t, "john.doe", user.Username)
	assert.Len(t, user.Password, credentials.PasswordLength)
	assert.True(t, user.IsActive)
	assert.NotZero(t, user.ID)
}

func TestCreateResolvesUsernameCollisions(t *testing.T) {
	svc, _ := newService(t)

	first, err := svc.Create("John", "Doe")
	require.NoError(t, err)
	second, err := svc.Create("John", "Doe")
	require.NoError(t, err)
	third, err := svc.Create("John", "Doe")
	require.NoError(t, err)

	assert.Equal(t, "john.doe", first.Username)
	assert.Equal(t, "john.doe1", second.Username)
	assert.Equal(t, "john.doe2", third.Username)
}

func TestCreateRejectsBlankNames(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create("", "Doe")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Create("John", "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateValidatesFields(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Create("John", "Doe")
	require.NoError(t, err)

	user.FirstName = ""
	_, err = svc.Update(user)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Create("John", "Doe")
	require.NoError(t, err)

	user.ID = 999
	_, err = svc.Update(user)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestActivateDeactivate(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Create("John", "Doe")
	require.NoError(t, err)

	// Уже активен, изменения нет
	changed, err := svc.Activate(user.Username)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = svc.Deactivate(user.Username)
	require.NoError(t, err)
	assert.True(t, changed)

	// Повторная деактивация идемпотентна
	changed, err = svc.Deactivate(user.Username)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = svc.Activate(user.Username)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestActivateUnknownUser(t *testing.T) {
	svc, _ := newService(t)

	changed, err := svc.Activate("nobody")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = svc.Activate("")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestFindByUsername(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create("Alice", "Smith")
	require.NoError(t, err)

	found, err := svc.FindByUsername("alice.smith")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.FindByUsername("nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
