// storage holds named datasets

package rom

import (
	"sort"
	"sync"
)

// Storage is a registry of named datasets.  It is safe for concurrent use,
// although the datasets it hands out are not.
type Storage struct {
	mu   sync.RWMutex
	data map[string]*Dataset
	opts []Option
}

// NewStorage creates an empty storage.  Datasets it creates are built with
// opts.
func NewStorage(opts ...Option) *Storage {
	return &Storage{
		data: make(map[string]*Dataset),
		opts: opts,
	}
}

// Create registers a new empty dataset under name, replacing any dataset
// already registered there.
func (s *Storage) Create(name string) *Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := New(nil, s.opts...)
	s.data[name] = d
	d.opts.Logger.V(1).Info("created dataset", "name", name)
	return d
}

// Dataset returns the dataset registered under name, creating an empty one
// if there is none.
func (s *Storage) Dataset(name string) *Dataset {
	if d, ok := s.Get(name); ok {
		return d
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// someone may have created it while the lock was released
	if d, ok := s.data[name]; ok {
		return d
	}
	d := New(nil, s.opts...)
	s.data[name] = d
	return d
}

// Put registers d under name, replacing any dataset already registered
// there.
func (s *Storage) Put(name string, d *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = d
}

// Get returns the dataset registered under name.
func (s *Storage) Get(name string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.data[name]
	return d, ok
}

// Has reports whether a dataset is registered under name.
func (s *Storage) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Names returns the registered names, sorted.
func (s *Storage) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Drop removes the dataset registered under name.  Dropping an unknown name
// does nothing.
func (s *Storage) Drop(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
}
