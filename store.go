package freelance

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// Storage key layout. One key-value pair per concern, mirrored from the
// original browser-local layout so exported data stays recognizable.
const (
	// KeyUsers holds the JSON user registry (username to password).
	KeyUsers = "users"
	// KeyCurrentUser holds the active username, absent when logged out.
	KeyCurrentUser = "currentUser"

	userDataPrefix = "userData_"
)

// UserDataKey returns the key of a user's data blob.
func UserDataKey(username string) string { return userDataPrefix + username }

// Store is a key-value byte store. A missing key is not an error: Get
// reports found=false and Delete is a no-op.
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// DirStore persists each key as one file under a directory, overwriting the
// whole value on every Set. It is the default backend.
type DirStore struct {
	dir string
}

// OpenDirStore opens (creating if needed) a directory-backed store.
func OpenDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create store directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

// path maps a key to a file. Keys embed usernames, which may contain
// anything; escape them so they stay inside the store directory.
func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key))
}

func (s *DirStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return data, true, nil
}

func (s *DirStore) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot delete key %q: %w", key, err)
	}
	return nil
}
