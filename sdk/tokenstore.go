package sdk

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore persists the token set between application runs. Implementations
// must replace all fields of the set in one operation - callers never write
// individual tokens.
type TokenStore interface {
	// TokenSet returns the stored set. ok is false when nothing is stored.
	TokenSet() (TokenSet, bool)
	// SetTokenSet replaces the stored set atomically.
	SetTokenSet(tokens TokenSet) error
	// Clear removes the stored set. Clearing an empty store is a no-op.
	Clear() error
}

// MemoryTokenStore keeps tokens for the lifetime of the process.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens *TokenSet
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) TokenSet() (TokenSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens == nil {
		return TokenSet{}, false
	}
	return *s.tokens, true
}

func (s *MemoryTokenStore) SetTokenSet(tokens TokenSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = &tokens
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = nil
	return nil
}

// FileTokenStore persists tokens to a JSON file so the session survives a
// restart. Two processes pointed at the same file share tokens but do not
// coordinate refreshes; when one rotates the refresh token the other's next
// refresh fails and it is logged out. That race is accepted.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) TokenSet() (TokenSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return TokenSet{}, false
	}
	var tokens TokenSet
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return TokenSet{}, false
	}
	if tokens.AccessToken == "" {
		return TokenSet{}, false
	}
	return tokens, true
}

func (s *FileTokenStore) SetTokenSet(tokens TokenSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	encoded, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	// write-then-rename keeps a reader from ever seeing a half written set
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// DefaultTokenPath places the token file under the user config directory.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "stockroom", "tokens.json"), nil
}
