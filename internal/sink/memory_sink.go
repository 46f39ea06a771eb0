package sink

import (
	"context"
	"sync"
)

type MemorySink struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{values: make(map[string]string)}
}

func (m *MemorySink) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemorySink) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
