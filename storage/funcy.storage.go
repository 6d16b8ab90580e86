// Package storage keeps named funcy templates in pluggable backends.
package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/itsatony/go-funcy"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)
	ErrStoreClosed      = errors.New(ErrMsgStoreClosed)
)

// StoredTemplate is a named template held by a TemplateStore.
type StoredTemplate struct {
	// ID is assigned on first save and kept across updates.
	ID string `json:"id"`

	// Name is the lookup key.
	Name string `json:"name"`

	// Source is the template text.
	Source string `json:"source"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TemplateStore is the interface for template storage backends.
// Implementations must be safe for concurrent use.
type TemplateStore interface {
	// Get retrieves a template by name.
	// Returns ErrTemplateNotFound if the template doesn't exist.
	Get(ctx context.Context, name string) (*StoredTemplate, error)

	// Save creates or replaces the template with tmpl.Name. ID, CreatedAt
	// and UpdatedAt are set by the store and written back into tmpl.
	Save(ctx context.Context, tmpl *StoredTemplate) error

	// Delete removes a template by name.
	// Returns ErrTemplateNotFound if the template doesn't exist.
	Delete(ctx context.Context, name string) error

	// List returns all template names in sorted order.
	List(ctx context.Context) ([]string, error)

	// Exists checks if a template with the given name exists.
	Exists(ctx context.Context, name string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}

// Driver is a factory for creating stores from a connection string.
type Driver interface {
	Open(connectionString string) (TemplateStore, error)
}

// Storage driver registry
var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// RegisterDriver registers a storage driver by name.
// Panics if driver is nil or the name is taken.
func RegisterDriver(name string, driver Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilDriver)
	}
	if _, exists := drivers[name]; exists {
		panic(ErrMsgDriverAlreadyRegistered + ": " + name)
	}
	drivers[name] = driver
}

// Open opens a store using the named driver.
//
//	store, err := storage.Open("memory", "")
//	store, err := storage.Open("filesystem", "/path/to/templates")
func Open(driverName, connectionString string) (TemplateStore, error) {
	driversMu.RLock()
	driver, ok := drivers[driverName]
	driversMu.RUnlock()

	if !ok {
		return nil, &StorageError{Message: ErrMsgDriverNotFound, Name: driverName}
	}
	return driver.Open(connectionString)
}

// Drivers returns the names of all registered drivers in sorted order.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load fetches the named template and installs it in r.
func Load(ctx context.Context, store TemplateStore, name string, r *funcy.Renderer) error {
	tmpl, err := store.Get(ctx, name)
	if err != nil {
		return err
	}
	r.SetTemplate(tmpl.Source)
	return nil
}

// Render fetches the named template and renders it once with hs.
func Render(ctx context.Context, store TemplateStore, name string, hs funcy.Handlers, opts ...funcy.Option) (string, error) {
	r := funcy.New(append(opts[:len(opts):len(opts)], funcy.WithHandlers(hs))...)
	if err := Load(ctx, store, name, r); err != nil {
		return "", err
	}
	return r.Render()
}

// StorageError represents a storage-related error.
type StorageError struct {
	Message string
	Name    string
	Cause   error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	msg := e.Message
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Cause != nil && e.Cause.Error() != e.Message {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewTemplateNotFoundError creates an error for a missing template.
func NewTemplateNotFoundError(name string) error {
	return &StorageError{Message: ErrMsgTemplateNotFound, Name: name, Cause: ErrTemplateNotFound}
}

// NewStoreClosedError creates an error for use after Close.
func NewStoreClosedError() error {
	return &StorageError{Message: ErrMsgStoreClosed, Cause: ErrStoreClosed}
}

// validateTemplate checks the fields every store requires.
func validateTemplate(tmpl *StoredTemplate) error {
	if tmpl == nil {
		return &StorageError{Message: ErrMsgNilTemplate}
	}
	if tmpl.Name == "" {
		return &StorageError{Message: ErrMsgInvalidTemplateName}
	}
	return nil
}

// newTemplateID returns a fresh template identifier.
func newTemplateID() string {
	return uuid.NewString()
}

func copyStoredTemplate(tmpl *StoredTemplate) *StoredTemplate {
	c := *tmpl
	return &c
}
