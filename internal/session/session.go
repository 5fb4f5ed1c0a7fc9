// Package session holds tab-scoped authentication state: the current
// user, the bearer token, and a loading flag while rehydration runs.
// Token and user are persisted together and removed together; a partial
// or corrupt persisted state is treated as logged out.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/yourname/wellnesstracker/internal"
)

type persisted struct {
	Token string         `json:"token"`
	User  *internal.User `json:"user"`
}

type Store struct {
	mu      sync.RWMutex
	path    string
	token   string
	user    *internal.User
	loading bool
	logger  internal.Logger
}

func NewStore(path string, logger internal.Logger) *Store {
	return &Store{path: path, loading: true, logger: logger}
}

// Load rehydrates credentials from disk. Missing files and decode errors
// leave the store unauthenticated rather than failing startup.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf("session: failed to read %s: %v", s.path, err)
		}
		return
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warnf("session: corrupt state in %s: %v", s.path, err)
		return
	}
	if p.Token == "" || p.User == nil {
		return
	}
	s.token = p.Token
	s.user = p.User
}

// SetCredentials stores the token and user in memory and on disk.
func (s *Store) SetCredentials(token string, user internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user
	return s.save(persisted{Token: token, User: &user})
}

// Clear logs out: memory and the persisted entries go together.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() *internal.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Authenticated is derived, never stored: both token and user must be
// present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// save writes via a temp file and rename so a crash mid-write never
// leaves a half-written session behind.
func (s *Store) save(p persisted) error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, s.path)
}
