// Package session persists the signed-in user's id and name in a small JSON
// file, the CLI stand-in for the mobile app's preference store. The sync
// core only ever reads the identity; writing happens at login/logout.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

type state struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Store reads and writes the session file. A missing or unreadable file
// behaves like an empty session.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// UserID returns the signed-in user id, "" when signed out.
func (s *Store) UserID() string {
	return s.load().UserID
}

// Username returns the signed-in user's display name, "" when signed out.
func (s *Store) Username() string {
	return s.load().Username
}

// Save stores the signed-in identity.
func (s *Store) Save(userID, username string) error {
	return s.write(state{UserID: userID, Username: username})
}

// Clear signs the user out by removing the session file.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) load() state {
	var st state
	data, err := os.ReadFile(s.path)
	if err != nil {
		return st
	}
	_ = json.Unmarshal(data, &st)
	return st
}

func (s *Store) write(st state) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
