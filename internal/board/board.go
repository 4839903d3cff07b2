// Package board orchestrates the shared introduction board: create,
// list, react, comment and delete, with author-only mutation rights.
// Every mutation runs as one load-modify-save cycle inside the store
// lock, so concurrent requests cannot lose each other's updates.
package board

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yamadaken1/jikoboard/internal/models"
	"github.com/yamadaken1/jikoboard/internal/store"
)

var (
	ErrMissingFields   = errors.New("name and intro are required")
	ErrEmptyComment    = errors.New("comment text is empty")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrForbidden       = errors.New("requester is not the author")
)

type Service struct {
	store *store.BoardStore
}

func NewService(s *store.BoardStore) *Service {
	return &Service{store: s}
}

// CreatePost inserts a new post at the head of the board, so ListPosts
// stays most-recent-first without sorting.
func (s *Service) CreatePost(author, name, intro string) (models.Post, error) {
	name = strings.TrimSpace(name)
	intro = strings.TrimSpace(intro)
	if name == "" || intro == "" {
		return models.Post{}, ErrMissingFields
	}
	post := models.Post{
		ID:        uuid.NewString(),
		Author:    author,
		Name:      name,
		Intro:     intro,
		Reactions: map[string][]string{},
		Comments:  []models.Comment{},
	}
	err := s.store.Update(func(posts []models.Post) ([]models.Post, error) {
		return append([]models.Post{post}, posts...), nil
	})
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// ListPosts returns the whole board, newest first.
func (s *Service) ListPosts() []models.Post {
	return s.store.Load()
}

// ToggleReaction flips username's membership in the reaction set for
// emoji on the given post: absent becomes present, present becomes
// absent. It returns the post's reactions after the change.
func (s *Service) ToggleReaction(postID, emoji, username string) (map[string][]string, error) {
	var reactions map[string][]string
	err := s.store.Update(func(posts []models.Post) ([]models.Post, error) {
		i := indexByID(posts, postID)
		if i < 0 {
			return nil, ErrPostNotFound
		}
		users := posts[i].Reactions[emoji]
		if j := slices.Index(users, username); j >= 0 {
			users = slices.Delete(users, j, j+1)
		} else {
			users = append(users, username)
		}
		if len(users) == 0 {
			delete(posts[i].Reactions, emoji)
		} else {
			posts[i].Reactions[emoji] = users
		}
		reactions = posts[i].Reactions
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return reactions, nil
}

// AddComment appends a comment to the post and returns the updated
// comment list. Blank text (after trimming) is rejected.
func (s *Service) AddComment(postID, author, text string) ([]models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	comment := models.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	var comments []models.Comment
	err := s.store.Update(func(posts []models.Post) ([]models.Post, error) {
		i := indexByID(posts, postID)
		if i < 0 {
			return nil, ErrPostNotFound
		}
		posts[i].Comments = append(posts[i].Comments, comment)
		comments = posts[i].Comments
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeletePost removes the post. Only its author may delete it.
func (s *Service) DeletePost(postID, requester string) error {
	return s.store.Update(func(posts []models.Post) ([]models.Post, error) {
		i := indexByID(posts, postID)
		if i < 0 {
			return nil, ErrPostNotFound
		}
		if posts[i].Author != requester {
			return nil, ErrForbidden
		}
		return slices.Delete(posts, i, i+1), nil
	})
}

// DeleteComment removes one comment from the post, identified by both
// ids. Only the comment's author may delete it. The post's remaining
// comments are returned.
func (s *Service) DeleteComment(postID, commentID, requester string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.store.Update(func(posts []models.Post) ([]models.Post, error) {
		i := indexByID(posts, postID)
		if i < 0 {
			return nil, ErrPostNotFound
		}
		j := slices.IndexFunc(posts[i].Comments, func(c models.Comment) bool {
			return c.ID == commentID
		})
		if j < 0 {
			return nil, ErrCommentNotFound
		}
		if posts[i].Comments[j].Author != requester {
			return nil, ErrForbidden
		}
		posts[i].Comments = slices.Delete(posts[i].Comments, j, j+1)
		comments = posts[i].Comments
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func indexByID(posts []models.Post, id string) int {
	return slices.IndexFunc(posts, func(p models.Post) bool { return p.ID == id })
}
