package tokenstore

import (
	"os"
	"path/filepath"
	"strings"
)

type fileStore struct {
	path string
}

// NewFileStore returns a Store persisting the token as a single file on
// disk, surviving restarts until explicit logout.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (f *fileStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *fileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	// 0600: the token is a bearer credential
	return os.WriteFile(f.path, []byte(token+"\n"), 0o600)
}

func (f *fileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
