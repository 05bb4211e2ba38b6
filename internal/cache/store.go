// Package cache provides the local build cache: a small key/value store for
// registry documents and font assets, plus the record of icon names used by
// the last subset build.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// DefaultDir is the cache directory used when none is configured.
const DefaultDir = ".mdicon"

// ErrNotFound is returned by Store.Read when the entry does not exist.
var ErrNotFound = errors.New("cache entry not found")

// Store is the persistence boundary for everything the build caches.
// Entry names are flat file names such as "icon-names.json".
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Exists(name string) bool
	Remove(name string) error
}

// DirStore keeps entries as files in a single directory.
type DirStore struct {
	root string
}

// NewDirStore returns a store rooted at dir, creating the directory if absent.
func NewDirStore(dir string) (*DirStore, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	return &DirStore{root: dir}, nil
}

// Root returns the directory backing the store.
func (s *DirStore) Root() string {
	return s.root
}

// Path returns the on-disk location of an entry.
func (s *DirStore) Path(name string) string {
	return filepath.Join(s.root, name)
}

func (s *DirStore) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry %s: %w", name, err)
	}
	return data, nil
}

func (s *DirStore) Write(name string, data []byte) error {
	if err := os.WriteFile(s.Path(name), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", name, err)
	}
	return nil
}

func (s *DirStore) Exists(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && !info.IsDir()
}

func (s *DirStore) Remove(name string) error {
	err := os.Remove(s.Path(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove cache entry %s: %w", name, err)
	}
	return nil
}

// MemStore is an in-memory Store, mainly for tests.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string][]byte

	// WriteErr, when set, is returned by every Write.
	WriteErr error
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string][]byte)}
}

func (s *MemStore) Read(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.entries[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

func (s *MemStore) Write(name string, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = append([]byte(nil), data...)
	return nil
}

func (s *MemStore) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[name]
	return ok
}

func (s *MemStore) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, name)
	return nil
}

// Names lists the stored entry names in sorted order.
func (s *MemStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
