package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory TemplateStore for tests and short-lived tools.
// All data is lost when the process terminates.
type MemoryStore struct {
	mu        sync.RWMutex
	templates map[string]*StoredTemplate
	closed    bool
	now       func() time.Time
}

// MemoryDriver creates MemoryStore instances.
type MemoryDriver struct{}

func init() {
	RegisterDriver(DriverNameMemory, &MemoryDriver{})
}

// Open creates a new MemoryStore. The connection string is ignored.
func (d *MemoryDriver) Open(string) (TemplateStore, error) {
	return NewMemoryStore(), nil
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		templates: make(map[string]*StoredTemplate),
		now:       time.Now,
	}
}

// Get retrieves a template by name.
func (s *MemoryStore) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	tmpl, ok := s.templates[name]
	if !ok {
		return nil, NewTemplateNotFoundError(name)
	}
	return copyStoredTemplate(tmpl), nil
}

// Save creates or replaces a template.
func (s *MemoryStore) Save(ctx context.Context, tmpl *StoredTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateTemplate(tmpl); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	now := s.now()
	if existing, ok := s.templates[tmpl.Name]; ok {
		tmpl.ID = existing.ID
		tmpl.CreatedAt = existing.CreatedAt
	} else {
		tmpl.ID = newTemplateID()
		tmpl.CreatedAt = now
	}
	tmpl.UpdatedAt = now

	s.templates[tmpl.Name] = copyStoredTemplate(tmpl)
	return nil
}

// Delete removes a template by name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	if _, ok := s.templates[name]; !ok {
		return NewTemplateNotFoundError(name)
	}
	delete(s.templates, name)
	return nil
}

// List returns all template names in sorted order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists checks if a template with the given name exists.
func (s *MemoryStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, NewStoreClosedError()
	}

	_, ok := s.templates[name]
	return ok, nil
}

// Close marks the store closed and drops its contents.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.templates = nil
	return nil
}
