// Package session holds the client's current user and token, persisted as
// two durable entries so a restart preserves the login.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	userFile  = "user.json"
	tokenFile = "token"
)

// User is the session's view of the authenticated profile. The identifier
// field is always "id".
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Store is an explicit session object. Callers pass it where it is needed;
// there is no package-level state.
type Store struct {
	dir   string
	user  *User
	token string
}

// NewStore opens the session directory and loads any persisted login.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}

	s := &Store{dir: dir}

	data, err := os.ReadFile(filepath.Join(dir, userFile))
	if err == nil {
		var user User
		if err := json.Unmarshal(data, &user); err == nil {
			s.user = &user
		}
	}

	token, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err == nil {
		s.token = string(token)
	}

	return s, nil
}

// Login stores the profile and token in memory and on disk.
func (s *Store) Login(user User, token string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0o600); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	s.user = &user
	s.token = token
	return nil
}

// Logout clears memory and disk. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func (s *Store) Logout() error {
	if err := os.Remove(filepath.Join(s.dir, userFile)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove user entry: %w", err)
	}
	if err := os.Remove(filepath.Join(s.dir, tokenFile)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token entry: %w", err)
	}

	s.user = nil
	s.token = ""
	return nil
}

func (s *Store) User() *User {
	return s.user
}

func (s *Store) Token() string {
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	return s.token != ""
}
