package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_NewMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.templates)
	assert.False(t, store.closed)
}

func TestMemoryStore_Contract(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	exerciseConcurrentSaves(t, NewMemoryStore())
}

func TestMemoryStore_Timestamps(t *testing.T) {
	store := NewMemoryStore()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = fixedClock(start)
	ctx := context.Background()

	tmpl := &StoredTemplate{Name: "t", Source: "a"}
	require.NoError(t, store.Save(ctx, tmpl))
	assert.Equal(t, start.Add(time.Second), tmpl.CreatedAt)
	assert.Equal(t, start.Add(time.Second), tmpl.UpdatedAt)

	update := &StoredTemplate{Name: "t", Source: "b"}
	require.NoError(t, store.Save(ctx, update))
	assert.Equal(t, start.Add(time.Second), update.CreatedAt)
	assert.Equal(t, start.Add(2*time.Second), update.UpdatedAt)
}

func TestMemoryStore_SaveIsolatesCaller(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	tmpl := &StoredTemplate{Name: "t", Source: "first"}
	require.NoError(t, store.Save(ctx, tmpl))
	tmpl.Source = "changed after save"

	got, err := store.Get(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Source)
}

func TestMemoryStore_OpenViaRegistry(t *testing.T) {
	store, err := Open(DriverNameMemory, "")
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*MemoryStore)
	assert.True(t, ok)
}
