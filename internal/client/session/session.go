// Package session persists "who is logged in" across process restarts. The
// token and the non-sensitive account view are written to one JSON file; on
// startup they are adopted without a server round-trip, and the first
// protected request failing is what invalidates a stale session.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

// Session is the persisted client-side identity. The user view never contains
// a password hash; the server strips it before it ever reaches a client.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Store reads and writes the session file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save persists the session, creating parent directories as needed. The file
// is owner-readable only since it holds a live bearer token.
func (s *Store) Save(sess *Session) error {
	if sess == nil || sess.Token == "" || sess.User == nil {
		return fmt.Errorf("session: refusing to save incomplete session")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create directory: %w", err)
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	return nil
}

// Load restores a previously saved session. A missing file means "start
// unauthenticated" and returns (nil, nil); a corrupt file is cleared and
// treated the same way.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: read: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" || sess.User == nil {
		_ = s.Clear()
		return nil, nil
	}
	return &sess, nil
}

// Clear removes the persisted session. Called on logout and whenever a
// protected request reports the stored token dead.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}
