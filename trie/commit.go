package trie

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/example/triekv/store"
)

// writeConcurrency bounds how many Put calls a sequential-store commit
// issues at once when no batch path is available.
const writeConcurrency = 8

// ErrNoStore is returned by Commit when the trie has no store bound.
var ErrNoStore = errors.New("trie: no store bound, call WithStore first")

// Commit persists every node reachable from the trie's root that is
// not small enough to be inlined into its parent, plus the root node
// itself (stored unconditionally so it has a stable key), plus the
// root sentinel entry Load reads to find it. It returns the root
// hash, which is the same value regardless of the order keys were
// inserted in (§5, canonicality).
func (t *Trie) Commit() ([32]byte, error) {
	if t.store == nil {
		return [32]byte{}, ErrNoStore
	}

	entries := make(map[[32]byte][]byte)
	root := hash(t.root, entries)
	entries[rootSentinelKey] = root[:]

	if err := t.writeEntries(entries); err != nil {
		return [32]byte{}, fmt.Errorf("trie: commit: %w", err)
	}
	t.log.Debug("committed trie", "root", root, "nodes", len(entries)-1)
	return root, nil
}

// writeEntries persists entries using the store's batch path when
// available. Otherwise it fans Put calls out across a bounded pool of
// goroutines: commits of large tries are dominated by store
// round-trips, not CPU, so a handful of entries in flight at once
// beats a single sequential loop.
func (t *Trie) writeEntries(entries map[[32]byte][]byte) error {
	if bp, ok := t.store.(store.BatchPutter); ok {
		return bp.PutBatch(entries)
	}

	g := new(errgroup.Group)
	g.SetLimit(writeConcurrency)
	for k, v := range entries {
		k, v := k, v
		g.Go(func() error {
			if err := t.store.Put(k, v); err != nil {
				return fmt.Errorf("trie: put %x: %w", k, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Load reconstructs a Trie from its bound store's current root
// sentinel entry. A store with no root entry yet yields an empty
// trie bound to that store.
func Load(s store.Store) (*Trie, error) {
	rootBytes, err := s.Get(rootSentinelKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return New().WithStore(s), nil
		}
		return nil, fmt.Errorf("trie: load root pointer: %w", err)
	}
	root := toKey(rootBytes)
	if root == emptyRootHash {
		return New().WithStore(s), nil
	}

	n, err := loadNode(s, root)
	if err != nil {
		return nil, fmt.Errorf("trie: load: %w", err)
	}
	return New().WithStore(s).withRoot(n), nil
}

// withRoot installs n as the trie's root, returning the same Trie for
// chaining. It exists so Load can avoid reaching into Trie's
// unexported fields from outside the package.
func (t *Trie) withRoot(n Node) *Trie {
	t.root = n
	return t
}
