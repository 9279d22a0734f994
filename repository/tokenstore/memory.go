package tokenstore

import "sync"

type memoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore returns a Store that forgets its token when the process
// exits. Used by tests and by one-shot invocations that must not persist.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
