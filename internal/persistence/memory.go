package persistence

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is an in-process KV used by tests.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	failing bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

// SetFailing makes every operation return an error, simulating an
// unreachable backend.
func (m *Memory) SetFailing(failing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = failing
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return "", context.DeadlineExceeded
	}
	entry, ok := m.entries[key]
	if !ok || m.expired(entry) {
		delete(m.entries, key)
		return "", ErrKeyNotFound
	}
	return entry.value, nil
}

func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return context.DeadlineExceeded
	}
	m.entries[key] = memoryEntry{value: value, expiresAt: expiry(ttl)}
	return nil
}

func (m *Memory) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return false, context.DeadlineExceeded
	}
	if entry, ok := m.entries[key]; ok && !m.expired(entry) {
		return false, nil
	}
	m.entries[key] = memoryEntry{value: value, expiresAt: expiry(ttl)}
	return true, nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return context.DeadlineExceeded
	}
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *Memory) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return context.DeadlineExceeded
	}
	return nil
}

func (m *Memory) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)
}

func expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(ttl)
}
