package filestore

// Package filestore provides a file-backed session store for the CLI, one
// JSON file per session under a state directory (typically
// ~/.config/bookcourier). It mirrors the Redis store's semantics: corrupt,
// incomplete, or expired records are cleared and reported as absent.

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
)

// ErrNotFound is returned when a session is not found.
var ErrNotFound = errors.New("session not found")

// SessionStore is a file-backed implementation of ports.SessionStore.
type SessionStore struct {
	dir string
}

// NewSessionStore creates a session store rooted at dir, creating the
// directory if needed.
func NewSessionStore(dir string) (*SessionStore, error) {
	if dir == "" {
		return nil, errors.New("session directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}
	return &SessionStore{dir: dir}, nil
}

// path maps a session id to its file. IDs are encoded so arbitrary values
// can never escape the state directory.
func (s *SessionStore) path(id string) string {
	name := base64.RawURLEncoding.EncodeToString([]byte(id))
	return filepath.Join(s.dir, name+".json")
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if time.Until(sess.ExpiresAt) <= 0 {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	path := s.path(sess.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domainauth.Session{}, ErrNotFound
		}
		return domainauth.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal(data, &sess); unmarshalErr != nil {
		return domainauth.Session{}, s.discard(ctx, id)
	}
	if !sess.Complete() || time.Now().After(sess.ExpiresAt) {
		return domainauth.Session{}, s.discard(ctx, id)
	}
	return sess, nil
}

// discard removes a bad record and reports the session as absent.
func (s *SessionStore) discard(ctx context.Context, id string) error {
	if err := s.Delete(ctx, id); err != nil {
		return fmt.Errorf("cleanup bad session: %w", err)
	}
	return ErrNotFound
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := os.Remove(s.path(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
