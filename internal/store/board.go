package store

import (
	"sync"

	"github.com/yamadaken1/jikoboard/internal/models"
)

// BoardStore is the board file: an ordered list of posts, newest first.
// The lock covers the whole load-modify-save cycle of Update, so two
// concurrent mutations cannot overwrite each other's changes.
type BoardStore struct {
	mu   sync.Mutex
	path string
}

func NewBoardStore(path string) *BoardStore {
	return &BoardStore{path: path}
}

// Load returns the current post list. A missing or corrupt backing file
// yields an empty board rather than an error.
func (s *BoardStore) Load() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *BoardStore) load() []models.Post {
	posts := readRecords[models.Post](s.path)
	for i := range posts {
		posts[i].Normalize()
	}
	return posts
}

// Update applies fn to the current post list under the store lock and
// persists whatever fn returns. When fn returns an error nothing is
// written and the error is passed through.
func (s *BoardStore) Update(fn func(posts []models.Post) ([]models.Post, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := fn(s.load())
	if err != nil {
		return err
	}
	return writeRecords(s.path, posts)
}
