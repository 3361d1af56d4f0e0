package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// FileStore keeps the token in a plain file, standing in for the device
// key-value store.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultTokenPath is ~/.vidafit/token, or a relative fallback when the home
// directory can't be resolved.
func DefaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vidafit_token"
	}
	return filepath.Join(home, ".vidafit", "token")
}

func (f *FileStore) Load() (string, error) {
	bytes, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "fail to read token file")
	}
	return strings.TrimSpace(string(bytes)), nil
}

func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return errors.Wrap(err, "fail to create token dir")
	}
	return errors.Wrap(os.WriteFile(f.path, []byte(token), 0600), "fail to write token file")
}

func (f *FileStore) Delete() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStore is the test double for FileStore.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
