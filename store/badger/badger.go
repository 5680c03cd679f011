// Package badger provides a durable store.Store backed by BadgerDB.
package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/example/triekv/store"
)

// Store is a BadgerDB-backed store.Store.
type Store struct {
	db *badger.DB
}

// New opens (creating if necessary) a badger store at path.
func New(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}
	return &Store{db: db}, nil
}

// Get retrieves the value associated with key, if present.
func (s *Store) Get(key [32]byte) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key[:])
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key from badger store: %w", err)
	}
	return val, nil
}

// Put inserts the key-value pair into the store.
func (s *Store) Put(key [32]byte, value []byte) error {
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key[:], value)
	}); err != nil {
		return fmt.Errorf("failed to put key into badger store: %w", err)
	}
	return nil
}

// PutBatch inserts multiple key-value pairs using a single badger
// write batch, which is substantially cheaper than one transaction
// per node when committing a large trie.
func (s *Store) PutBatch(entries map[[32]byte][]byte) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for key, value := range entries {
		if err := wb.Set(key[:], value); err != nil {
			return fmt.Errorf("failed to stage key in write batch: %w", err)
		}
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("failed to flush write batch: %w", err)
	}
	return nil
}

// Flush ensures all pending writes are synced to disk.
func (s *Store) Flush() error {
	if err := s.db.Sync(); err != nil {
		return fmt.Errorf("failed to sync badger store: %w", err)
	}
	return nil
}

// Close closes the underlying badger database.
func (s *Store) Close() error {
	return s.db.Close()
}
