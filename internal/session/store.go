// Package session keeps the browser's credential token.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store holds the current bearer token. An empty token means anonymous.
type Store struct {
	mu    sync.RWMutex
	token string
	path  string
}

// NewStore creates a store persisted at path; an empty path keeps it in memory only.
func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

func (s *Store) Clear() {
	s.Set("")
}

// Persistent reports whether Save writes to a file.
func (s *Store) Persistent() bool {
	return s.path != ""
}

// Load reads the token file. A missing file leaves the session anonymous.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read token file: %v", err)
	}
	s.Set(string(data))
	return nil
}

// Save writes the token file with owner-only permissions.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %v", err)
	}
	if err := os.WriteFile(s.path, []byte(s.Token()), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %v", err)
	}
	return nil
}

// Expired reports whether the held token carries an exp claim at or before now.
// The signature is not checked here; the listing service does that.
// Tokens that do not parse as JWTs are treated as unexpired.
func (s *Store) Expired(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time)
}
