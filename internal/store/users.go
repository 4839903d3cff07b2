package store

import (
	"sync"

	"github.com/yamadaken1/jikoboard/internal/models"
)

// UserStore is the credential file. All access runs under a single lock
// so a pair of racing registrations cannot both pass the uniqueness
// check before either write lands.
type UserStore struct {
	mu   sync.Mutex
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// FindByUsername returns the record for username, or false if none exists.
func (s *UserStore) FindByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range readRecords[models.User](s.path) {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// Create appends user to the credential file. It returns false without
// writing when the username is already taken.
func (s *UserStore) Create(user models.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := readRecords[models.User](s.path)
	for _, u := range users {
		if u.Username == user.Username {
			return false, nil
		}
	}
	users = append(users, user)
	if err := writeRecords(s.path, users); err != nil {
		return false, err
	}
	return true, nil
}
