package session

import (
	"context"
	"sync"
)

// Storage is a key/value handle for session data. Get returns (nil, nil)
// when the key is absent; Delete removes every given key and is expected to
// be atomic across them where the backend allows it.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// MemStorage is a map-backed Storage for tests and ephemeral runs.
type MemStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemStorage() *MemStorage {
	return &MemStorage{data: make(map[string][]byte)}
}

func (m *MemStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// NopStorage is the degradation used when no storage location is available:
// reads are absent, writes are no-ops. It never returns an error.
type NopStorage struct{}

func (NopStorage) Get(context.Context, string) ([]byte, error)   { return nil, nil }
func (NopStorage) Set(context.Context, string, []byte) error     { return nil }
func (NopStorage) Delete(context.Context, ...string) error       { return nil }
