// Package mem provides an in-memory store.Store, suitable for tests
// and for tries that do not need to survive process restarts.
package mem

import (
	"sync"

	"github.com/example/triekv/store"
)

// Store is an in-memory, map-backed store.Store.
type Store struct {
	mu     sync.RWMutex
	blobs  map[[32]byte][]byte
	closed bool
}

// New creates a new, empty in-memory store.
func New() *Store {
	return &Store{
		blobs: make(map[[32]byte][]byte),
	}
}

// Get retrieves the value associated with key, if present.
func (s *Store) Get(key [32]byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.ErrClosed
	}

	val, ok := s.blobs[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyBytes(val), nil
}

// Put inserts the key-value pair into the store, overwriting any
// existing value for key.
func (s *Store) Put(key [32]byte, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrClosed
	}

	s.blobs[key] = copyBytes(value)
	return nil
}

// PutBatch inserts multiple key-value pairs atomically with respect
// to concurrent readers.
func (s *Store) PutBatch(entries map[[32]byte][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrClosed
	}

	for key, value := range entries {
		s.blobs[key] = copyBytes(value)
	}
	return nil
}

// Flush is a no-op for the in-memory store; writes are always
// immediately visible.
func (s *Store) Flush() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return store.ErrClosed
	}
	return nil
}

// Close releases the store. Any further access returns
// store.ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.blobs = nil
	return nil
}

// Len reports the number of blobs currently stored. It exists for
// tests to assert on commit/load behavior without reaching into the
// store's internals.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
