package models

import "errors"

// AnonymousName is the identity reported for requests without a session.
const AnonymousName = "guest"

// User is one record of the credential file. Usernames are unique across
// the file; records are never updated in place.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// Post is a single self-introduction on the shared board. Reactions maps
// an emoji to the set of usernames who reacted with it; a username appears
// at most once per emoji.
type Post struct {
	ID        string              `json:"id"`
	Author    string              `json:"author"`
	Name      string              `json:"name"`
	Intro     string              `json:"intro"`
	Reactions map[string][]string `json:"reactions"`
	Comments  []Comment           `json:"comments"`
}

// Comment belongs to exactly one Post. Timestamp is an ISO-8601 UTC string.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

var errMissingField = errors.New("record is missing a required field")

// Validate reports whether the record carries every required field. The
// stores skip records that fail validation instead of surfacing missing
// keys at arbitrary call sites.
func (u User) Validate() error {
	if u.ID == "" || u.Username == "" || u.PasswordHash == "" {
		return errMissingField
	}
	return nil
}

func (p Post) Validate() error {
	if p.ID == "" || p.Author == "" || p.Name == "" || p.Intro == "" {
		return errMissingField
	}
	return nil
}

func (c Comment) Validate() error {
	if c.ID == "" || c.Author == "" || c.Text == "" || c.Timestamp == "" {
		return errMissingField
	}
	return nil
}

// Normalize fills in the nil sub-collections so a fresh or hand-edited
// record always marshals as {} and [] rather than null.
func (p *Post) Normalize() {
	if p.Reactions == nil {
		p.Reactions = map[string][]string{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}
