package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetFresh(t *testing.T) {
	store := NewMemory(time.Hour)
	store.Put("latest", json.RawMessage(`{"num":500}`))

	payload, ok := store.Get("latest")
	require.True(t, ok)
	assert.JSONEq(t, `{"num":500}`, string(payload))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryGetMissing(t *testing.T) {
	store := NewMemory(time.Hour)

	payload, ok := store.Get("comic-42")
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestMemoryExpiryRemovesEntry(t *testing.T) {
	store := NewMemory(time.Hour)
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("latest", json.RawMessage(`{"num":500}`))

	current = current.Add(59 * time.Minute)
	_, ok := store.Get("latest")
	require.True(t, ok, "entry must stay fresh within the TTL window")

	current = current.Add(time.Minute)
	_, ok = store.Get("latest")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "stale entry must be removed by the lookup")
}

func TestMemoryStaleEntryLingersUntilRead(t *testing.T) {
	store := NewMemory(time.Hour)
	current := time.Now()
	store.now = func() time.Time { return current }

	store.Put("comic-1", json.RawMessage(`{"num":1}`))
	current = current.Add(2 * time.Hour)

	// No background sweeper: the entry stays until something touches it.
	assert.Equal(t, 1, store.Len())
	assert.Contains(t, store.Keys(), "comic-1")

	_, ok := store.Get("comic-1")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryPutOverwrites(t *testing.T) {
	store := NewMemory(time.Hour)
	store.Put("latest", json.RawMessage(`{"num":1}`))
	store.Put("latest", json.RawMessage(`{"num":2}`))

	payload, ok := store.Get("latest")
	require.True(t, ok)
	assert.JSONEq(t, `{"num":2}`, string(payload))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryClear(t *testing.T) {
	store := NewMemory(time.Hour)
	store.Put("latest", json.RawMessage(`{"num":500}`))
	store.Put("comic-42", json.RawMessage(`{"num":42}`))

	assert.Equal(t, 2, store.Clear())
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Keys())
	assert.Equal(t, 0, store.Clear())
}

func TestMemoryConcurrentAccessSameKey(t *testing.T) {
	store := NewMemory(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Put("comic-1", json.RawMessage(fmt.Sprintf(`{"num":%d}`, i)))
				store.Get("comic-1")
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
	payload, ok := store.Get("comic-1")
	require.True(t, ok)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded), "entry must never be torn")
}
