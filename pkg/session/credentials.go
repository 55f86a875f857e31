package session

import (
	"context"
	"sync"
)

// DefaultCredentialKey is the well-known name of the single token slot.
const DefaultCredentialKey = "session:token"

// CredentialStore persists the session token across process restarts. It is
// a one-slot contract: one string token under one well-known key.
type CredentialStore interface {
	// Get returns the persisted token, or ErrCredentialNotFound.
	Get(ctx context.Context) (string, error)
	// Set persists the token, replacing any previous value.
	Set(ctx context.Context, token string) error
	// Remove deletes the persisted token. Removing an absent token is a no-op.
	Remove(ctx context.Context) error
}

// MemoryCredentialStore keeps the token in memory only. Intended for tests
// and ephemeral sessions.
type MemoryCredentialStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryCredentialStore creates an empty in-memory credential store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (m *MemoryCredentialStore) Get(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return "", ErrCredentialNotFound
	}
	return m.token, nil
}

func (m *MemoryCredentialStore) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

func (m *MemoryCredentialStore) Remove(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
