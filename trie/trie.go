// Package trie implements a Merkle Patricia Trie: a 256-bit-keyed,
// content-addressed radix tree whose root hash commits to the exact
// set of key/value pairs it holds, independent of insertion order.
package trie

import (
	"github.com/example/triekv/log"
	"github.com/example/triekv/store"
)

// Trie is a mutable, in-memory Merkle Patricia Trie. The zero value
// is not usable; construct one with New.
type Trie struct {
	root  Node
	store store.Store
	log   log.Logger
}

// New returns an empty Trie with no backing store. Set, Get and Delete
// work on the in-memory tree; Commit returns ErrNoStore until
// WithStore is called.
func New() *Trie {
	return &Trie{log: log.Nop()}
}

// WithStore binds a Store to the trie for Commit and Load, returning
// the same Trie for chaining.
func (t *Trie) WithStore(s store.Store) *Trie {
	t.store = s
	return t
}

// WithLogger overrides the trie's logger, returning the same Trie for
// chaining.
func (t *Trie) WithLogger(l log.Logger) *Trie {
	t.log = l.With("component", "trie")
	return t
}

// Get returns the value stored at key and whether it was found.
func (t *Trie) Get(key [32]byte) ([]byte, bool) {
	return get(t.root, keyPath(key))
}

// Set writes value at key, inserting a new entry or overwriting an
// existing one.
func (t *Trie) Set(key [32]byte, value []byte) {
	t.root = insert(t.root, keyPath(key), value)
}

// Delete removes key from the trie, reporting whether it was present.
// Deleting a key that is not present leaves the trie unchanged.
func (t *Trie) Delete(key [32]byte) bool {
	if t.root == nil {
		return false
	}
	path := keyPath(key)

	if leaf, ok := t.root.(*LeafNode); ok {
		if !leaf.Path.equal(path) {
			return false
		}
		t.root = nil
		return true
	}

	res := deleteFrom(t.root, path)
	switch res.outcome {
	case outcomeNotFound:
		return false
	case outcomeDeleted:
		return true
	case outcomeReplaced:
		t.root = res.node
		return true
	default:
		panic("trie: unreachable delete outcome")
	}
}

// Root returns the trie's root node, or nil if the trie is empty.
// Intended for tests and introspection; callers must not mutate the
// returned node.
func (t *Trie) Root() Node {
	return t.root
}

// IsEmpty reports whether the trie holds no key/value pairs.
func (t *Trie) IsEmpty() bool {
	return t.root == nil
}
