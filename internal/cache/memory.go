package cache

import (
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Memory is a process-local Store guarded by a single mutex. Entries expire
// lazily: a stale entry stays in memory until the next Get on its key or a
// Clear. There is no capacity bound.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]Entry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(key string) (json.RawMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().Sub(entry.InsertedAt) >= m.ttl {
		delete(m.entries, key)
		return nil, false
	}
	return entry.Payload, true
}

func (m *Memory) Put(key string, payload json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = Entry{
		Payload:    payload,
		InsertedAt: m.now(),
	}
}

func (m *Memory) Clear() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	prior := len(m.entries)
	m.entries = make(map[string]Entry)
	return prior
}

// Keys reports the stored keys, stale ones included.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	return keys
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) TTL() time.Duration {
	return m.ttl
}

var _ Store = (*Memory)(nil)
