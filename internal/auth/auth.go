// Package auth registers users and verifies credentials against the
// credential file. Session state itself lives at the HTTP layer.
package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yamadaken1/jikoboard/internal/models"
	"github.com/yamadaken1/jikoboard/internal/store"
)

var (
	ErrDuplicateUser      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	users *store.UserStore
}

func NewService(users *store.UserStore) *Service {
	return &Service{users: users}
}

// Register creates a new user with a bcrypt hash of password. Fails with
// ErrDuplicateUser when the username is already present.
func (s *Service) Register(username, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	created, err := s.users.Create(user)
	if err != nil {
		return models.User{}, err
	}
	if !created {
		return models.User{}, ErrDuplicateUser
	}
	return user, nil
}

// Login verifies username/password and returns the matching user.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller, both yield ErrInvalidCredentials.
func (s *Service) Login(username, password string) (models.User, error) {
	user, ok := s.users.FindByUsername(username)
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
