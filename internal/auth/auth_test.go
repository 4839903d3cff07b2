package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamadaken1/jikoboard/internal/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewUserStore(filepath.Join(t.TempDir(), "users.json")))
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newService(t)

	registered, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	// The stored hash is salted, never the raw password.
	assert.NotEqual(t, "s3cret", registered.PasswordHash)

	user, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newService(t)

	_, err := svc.Register("alice", "one")
	require.NoError(t, err)

	_, err = svc.Register("alice", "two")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newService(t)
	_, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newService(t)
	_, err := svc.Login("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
