package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/go-funcy"
)

// exerciseStore runs the behaviour every TemplateStore must share.
func exerciseStore(t *testing.T, store TemplateStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("save assigns identity", func(t *testing.T) {
		tmpl := &StoredTemplate{Name: "greeting", Source: "Hello <!$ name>!"}
		require.NoError(t, store.Save(ctx, tmpl))
		assert.NotEmpty(t, tmpl.ID)
		assert.False(t, tmpl.CreatedAt.IsZero())
		assert.False(t, tmpl.UpdatedAt.IsZero())

		got, err := store.Get(ctx, "greeting")
		require.NoError(t, err)
		assert.Equal(t, tmpl.ID, got.ID)
		assert.Equal(t, "greeting", got.Name)
		assert.Equal(t, "Hello <!$ name>!", got.Source)
	})

	t.Run("save replaces source and keeps id", func(t *testing.T) {
		first, err := store.Get(ctx, "greeting")
		require.NoError(t, err)

		update := &StoredTemplate{Name: "greeting", Source: "Hi <!$ name>"}
		require.NoError(t, store.Save(ctx, update))
		assert.Equal(t, first.ID, update.ID)
		assert.True(t, first.CreatedAt.Equal(update.CreatedAt))
		assert.False(t, update.UpdatedAt.Before(first.UpdatedAt))

		got, err := store.Get(ctx, "greeting")
		require.NoError(t, err)
		assert.Equal(t, "Hi <!$ name>", got.Source)
	})

	t.Run("save rejects nil and unnamed", func(t *testing.T) {
		assert.Error(t, store.Save(ctx, nil))
		assert.Error(t, store.Save(ctx, &StoredTemplate{Source: "x"}))
	})

	t.Run("list sorted", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, &StoredTemplate{Name: "beta", Source: "b"}))
		require.NoError(t, store.Save(ctx, &StoredTemplate{Name: "alpha", Source: "a"}))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta", "greeting"}, names)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := store.Exists(ctx, "alpha")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "gamma")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "beta"))

		_, err := store.Get(ctx, "beta")
		assert.ErrorIs(t, err, ErrTemplateNotFound)

		err = store.Delete(ctx, "beta")
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Get(cctx, "alpha")
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, store.Save(cctx, &StoredTemplate{Name: "x", Source: "x"}), context.Canceled)
		_, err = store.List(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returned template is a copy", func(t *testing.T) {
		got, err := store.Get(ctx, "alpha")
		require.NoError(t, err)
		got.Source = "mutated"

		again, err := store.Get(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, "a", again.Source)
	})

	t.Run("closed", func(t *testing.T) {
		require.NoError(t, store.Close())

		_, err := store.Get(ctx, "alpha")
		assert.ErrorIs(t, err, ErrStoreClosed)
		assert.ErrorIs(t, store.Save(ctx, &StoredTemplate{Name: "x", Source: "x"}), ErrStoreClosed)
		assert.ErrorIs(t, store.Delete(ctx, "alpha"), ErrStoreClosed)
		_, err = store.List(ctx)
		assert.ErrorIs(t, err, ErrStoreClosed)
		_, err = store.Exists(ctx, "alpha")
		assert.ErrorIs(t, err, ErrStoreClosed)
	})
}

// exerciseConcurrentSaves hammers a store from several goroutines.
func exerciseConcurrentSaves(t *testing.T, store TemplateStore) {
	t.Helper()
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "shared"
			if i%2 == 0 {
				name = "even"
			}
			assert.NoError(t, store.Save(ctx, &StoredTemplate{Name: name, Source: strings.Repeat("x", i)}))
			_, err := store.Get(ctx, name)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"even", "shared"}, names)
}

func TestStorageError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *StorageError
		expected string
	}{
		{"message only", &StorageError{Message: "boom"}, "boom"},
		{"with name", &StorageError{Message: "boom", Name: "tmpl"}, "boom: tmpl"},
		{"with cause", &StorageError{Message: "boom", Cause: errors.New("disk")}, "boom: disk"},
		{"all fields", &StorageError{Message: "boom", Name: "tmpl", Cause: errors.New("disk")}, "boom: tmpl: disk"},
		{"not found", NewTemplateNotFoundError("x").(*StorageError), "template not found: x"},
		{"closed", NewStoreClosedError().(*StorageError), "template store is closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	assert.ErrorIs(t, NewTemplateNotFoundError("x"), ErrTemplateNotFound)
	assert.ErrorIs(t, NewStoreClosedError(), ErrStoreClosed)
	assert.Nil(t, (&StorageError{Message: "m"}).Unwrap())
}

type stubDriver struct {
	store TemplateStore
	err   error
}

func (d *stubDriver) Open(string) (TemplateStore, error) {
	return d.store, d.err
}

func TestRegisterDriver(t *testing.T) {
	t.Run("builtin drivers registered", func(t *testing.T) {
		names := Drivers()
		assert.Contains(t, names, DriverNameMemory)
		assert.Contains(t, names, DriverNameFilesystem)
		assert.Contains(t, names, DriverNamePostgres)
	})

	t.Run("custom driver", func(t *testing.T) {
		mem := NewMemoryStore()
		RegisterDriver("stub-custom", &stubDriver{store: mem})

		store, err := Open("stub-custom", "")
		require.NoError(t, err)
		assert.Same(t, mem, store)
	})

	t.Run("nil driver panics", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrMsgNilDriver, func() {
			RegisterDriver("stub-nil", nil)
		})
	})

	t.Run("duplicate panics", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterDriver(DriverNameMemory, &MemoryDriver{})
		})
	})
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("nope", "")
	require.Error(t, err)

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, ErrMsgDriverNotFound, storageErr.Message)
	assert.Equal(t, "nope", storageErr.Name)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, &StoredTemplate{Name: "greeting", Source: "Hello <!$ who>"}))

	r := funcy.New()
	r.SetHandlerFunc("who", func(_, _ string) (string, error) { return "world", nil })

	require.NoError(t, Load(ctx, store, "greeting", r))
	assert.Equal(t, "Hello <!$ who>", r.Template())
	require.Len(t, r.Tags(), 1)

	out, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "Hello world", out)

	err = Load(ctx, store, "missing", r)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Equal(t, "Hello <!$ who>", r.Template())
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, &StoredTemplate{Name: "echo", Source: "[<!$ echo hi there>]"}))

	hs := funcy.Handlers{
		"echo": funcy.HandlerFunc(func(_, arg string) (string, error) { return arg, nil }),
	}

	out, err := Render(ctx, store, "echo", hs)
	require.NoError(t, err)
	assert.Equal(t, "[hi there]", out)

	_, err = Render(ctx, store, "missing", hs)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = Render(ctx, store, "echo", funcy.Handlers{})
	assert.ErrorIs(t, err, funcy.ErrUnknownFunction)
}

func TestRender_LeavesCallerOptionsUntouched(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, &StoredTemplate{Name: "who", Source: "<!$ who>"}))

	opts := make([]funcy.Option, 1, 4)
	opts[0] = funcy.WithLogger(nil)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			want := strings.Repeat("x", i+1)
			hs := funcy.Handlers{"who": funcy.HandlerFunc(func(_, _ string) (string, error) { return want, nil })}
			out, err := Render(ctx, store, "who", hs, opts...)
			assert.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	for i, out := range results {
		assert.Equal(t, strings.Repeat("x", i+1), out)
	}
	for i, opt := range opts[1:cap(opts)] {
		assert.Nil(t, opt, "spare slot %d written", i+1)
	}
}

func TestNewTemplateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newTemplateID()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}
