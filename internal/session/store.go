// Package session owns the credential lifecycle: a file-backed store
// for the bearer token and a manager exposing authentication queries.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// Store persists the session credential as a single file-backed slot.
// The credential is the sole carrier of identity; nothing else is
// stored alongside it. Absent file means logged out.
type Store struct {
	path string
}

// NewStore creates a Store persisting to the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Credential returns the stored bearer token, if present.
func (s *Store) Credential() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return "", false
	}
	if token.AccessToken == "" {
		return "", false
	}
	return token.AccessToken, true
}

// Present reports whether a credential is currently stored.
// This is a local read only; it cannot detect server-side revocation.
func (s *Store) Present() bool {
	_, ok := s.Credential()
	return ok
}

// Save persists the credential with mode 0600, creating the parent
// directory if needed.
func (s *Store) Save(credential string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	token := oauth2.Token{
		AccessToken: credential,
		TokenType:   "Bearer",
	}
	data, err := json.MarshalIndent(&token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the stored credential. Safe to call when none exists.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
