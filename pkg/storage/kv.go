package storage

import (
	"context"
	"sync"
)

// KV is a durable text key-value store holding one serialized collection per key
type KV interface {
	// Returns stored value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)
	// Overwrites value under key
	Set(ctx context.Context, key, value string) error
}

type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		values: make(map[string]string),
	}
}

func (m *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, exists := m.values[key]
	return v, exists, nil
}

func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
