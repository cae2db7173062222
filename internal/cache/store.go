package cache

import (
	"time"

	"github.com/goccy/go-json"
)

// Entry holds a cached upstream payload together with its insertion time.
// Freshness is decided on lookup; nothing sweeps the store in the background.
type Entry struct {
	Payload    json.RawMessage
	InsertedAt time.Time
}

type Store interface {
	// Get returns the payload for key if an entry exists and is still fresh.
	// A stale entry is removed as part of the lookup.
	Get(key string) (json.RawMessage, bool)
	// Put inserts or overwrites the entry for key, stamped with the current time.
	Put(key string, payload json.RawMessage)
	// Clear removes all entries and returns how many there were.
	Clear() int
	Keys() []string
	Len() int
	TTL() time.Duration
}
