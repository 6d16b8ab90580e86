package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FilesystemStore keeps one JSON document per template in a directory:
//
//	root/
//	  greeting.json
//	  invoice.json
type FilesystemStore struct {
	root   string
	mu     sync.RWMutex
	closed bool
	now    func() time.Time
}

// FilesystemDriver creates FilesystemStore instances.
type FilesystemDriver struct{}

func init() {
	RegisterDriver(DriverNameFilesystem, &FilesystemDriver{})
}

// Open creates a FilesystemStore rooted at connectionString.
func (d *FilesystemDriver) Open(connectionString string) (TemplateStore, error) {
	return NewFilesystemStore(connectionString)
}

// NewFilesystemStore creates the root directory if needed.
func NewFilesystemStore(root string) (*FilesystemStore, error) {
	if root == "" {
		return nil, &StorageError{Message: ErrMsgInvalidStorageRoot}
	}
	if err := os.MkdirAll(root, FilesystemDirPermissions); err != nil {
		return nil, &StorageError{Message: ErrMsgCreateStorageDir, Name: root, Cause: err}
	}
	return &FilesystemStore{root: root, now: time.Now}, nil
}

// Root returns the directory the store writes to.
func (s *FilesystemStore) Root() string {
	return s.root
}

// Get retrieves a template by name.
func (s *FilesystemStore) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateTemplateNameForFilesystem(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}
	return s.load(name)
}

// Save creates or replaces a template. The file is replaced atomically.
func (s *FilesystemStore) Save(ctx context.Context, tmpl *StoredTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateTemplate(tmpl); err != nil {
		return err
	}
	if err := validateTemplateNameForFilesystem(tmpl.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	now := s.now()
	existing, err := s.load(tmpl.Name)
	switch {
	case err == nil:
		tmpl.ID = existing.ID
		tmpl.CreatedAt = existing.CreatedAt
	case errors.Is(err, ErrTemplateNotFound):
		tmpl.ID = newTemplateID()
		tmpl.CreatedAt = now
	default:
		return err
	}
	tmpl.UpdatedAt = now

	data, err := json.MarshalIndent(tmpl, "", "  ")
	if err != nil {
		return &StorageError{Message: ErrMsgMarshalTemplate, Name: tmpl.Name, Cause: err}
	}
	return s.writeAtomic(s.path(tmpl.Name), data)
}

// Delete removes a template by name.
func (s *FilesystemStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateTemplateNameForFilesystem(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	if err := os.Remove(s.path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewTemplateNotFoundError(name)
		}
		return &StorageError{Message: ErrMsgDeleteTemplate, Name: name, Cause: err}
	}
	return nil
}

// List returns all template names in sorted order.
func (s *FilesystemStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, &StorageError{Message: ErrMsgReadStorageDir, Name: s.root, Cause: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FilesystemFileSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), FilesystemFileSuffix))
	}
	sort.Strings(names)
	return names, nil
}

// Exists checks if a template with the given name exists.
func (s *FilesystemStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := validateTemplateNameForFilesystem(name); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, NewStoreClosedError()
	}

	_, err := os.Stat(s.path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, &StorageError{Message: ErrMsgReadTemplate, Name: name, Cause: err}
}

// Close marks the store closed. Files are left in place.
func (s *FilesystemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *FilesystemStore) path(name string) string {
	return filepath.Join(s.root, name+FilesystemFileSuffix)
}

// load reads a template; the caller holds the lock.
func (s *FilesystemStore) load(name string) (*StoredTemplate, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewTemplateNotFoundError(name)
		}
		return nil, &StorageError{Message: ErrMsgReadTemplate, Name: name, Cause: err}
	}

	var tmpl StoredTemplate
	if err := json.Unmarshal(data, &tmpl); err != nil {
		return nil, &StorageError{Message: ErrMsgUnmarshalTemplate, Name: name, Cause: err}
	}
	return &tmpl, nil
}

func (s *FilesystemStore) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.root, FilesystemTempPattern)
	if err != nil {
		return &StorageError{Message: ErrMsgWriteTemplate, Name: path, Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Message: ErrMsgWriteTemplate, Name: path, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Message: ErrMsgWriteTemplate, Name: path, Cause: err}
	}
	if err := os.Chmod(tmpName, FilesystemFilePermissions); err != nil {
		os.Remove(tmpName)
		return &StorageError{Message: ErrMsgWriteTemplate, Name: path, Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Message: ErrMsgWriteTemplate, Name: path, Cause: err}
	}
	return nil
}

func validateTemplateNameForFilesystem(name string) error {
	if name == "" {
		return &StorageError{Message: ErrMsgInvalidTemplateName}
	}
	// Check for path traversal attempts
	if strings.Contains(name, "..") {
		return &StorageError{Message: ErrMsgPathTraversalDetected, Name: name}
	}
	// Check for invalid filesystem characters
	if strings.ContainsAny(name, "/\\:*?\"<>|") {
		return &StorageError{Message: ErrMsgInvalidTemplateName, Name: name}
	}
	return nil
}
