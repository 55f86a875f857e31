package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileCredentialStore persists the token in a single file, the desktop
// equivalent of browser local storage. The file is created with 0600 since
// it holds a live credential.
type FileCredentialStore struct {
	mu   sync.Mutex
	path string
}

// NewFileCredentialStore creates a store backed by the file at path. The
// parent directory is created on first write.
func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

func (f *FileCredentialStore) Get(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrCredentialNotFound
		}
		return "", fmt.Errorf("read credential file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrCredentialNotFound
	}
	return token, nil
}

func (f *FileCredentialStore) Set(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}

func (f *FileCredentialStore) Remove(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}
