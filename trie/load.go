package trie

import (
	"fmt"

	"github.com/example/triekv/store"
	"github.com/example/triekv/trie/rlp"
)

// loadNode fetches and decodes the node stored under key.
func loadNode(s store.Store, key [32]byte) (Node, error) {
	data, err := s.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load node %x: %w", key, err)
	}
	return decodeNodeFromBytes(data, s)
}

func decodeNodeFromBytes(data []byte, s store.Store) (Node, error) {
	v, err := rlp.Decode(data)
	if err != nil {
		return nil, err
	}
	return decodeNodeFromValue(v, s)
}

// decodeNodeFromValue dispatches on an already-parsed RLP value: a
// 2-item list is a Leaf or Extension (hex-prefix flag nibble picks
// which), a 17-item list is a Branch.
func decodeNodeFromValue(v rlp.Value, s store.Store) (Node, error) {
	list, ok := v.(rlp.List)
	if !ok {
		return nil, fmt.Errorf("trie: node encoding is not a list")
	}
	switch len(list) {
	case 2:
		return decodeLeafOrExtension(list, s)
	case 17:
		return decodeBranch(list, s)
	default:
		return nil, fmt.Errorf("trie: node list has %d items, want 2 or 17", len(list))
	}
}

func decodeLeafOrExtension(list rlp.List, s store.Store) (Node, error) {
	pathBytes, ok := list[0].(rlp.String)
	if !ok {
		return nil, fmt.Errorf("trie: node path is not a string")
	}
	kind, path, err := hpDecode(pathBytes)
	if err != nil {
		return nil, err
	}

	if kind == hpLeaf {
		value, ok := list[1].(rlp.String)
		if !ok {
			return nil, fmt.Errorf("trie: leaf value is not a string")
		}
		return &LeafNode{Path: path, Value: []byte(value)}, nil
	}

	child, err := decodeChildRef(list[1], s)
	if err != nil {
		return nil, err
	}
	return &ExtensionNode{Path: path, Child: child}, nil
}

func decodeBranch(list rlp.List, s store.Store) (Node, error) {
	b := &BranchNode{}
	for i := 0; i < 16; i++ {
		child, err := decodeChildRef(list[i], s)
		if err != nil {
			return nil, err
		}
		b.Children[i] = child
	}
	if v, ok := list[16].(rlp.String); ok && len(v) > 0 {
		b.Value = []byte(v)
	}
	return b, nil
}

// decodeChildRef resolves a child reference as emitted by childRef:
// an empty string means no child, a 32-byte string is a hash to
// follow into the store, and a nested list is an inlined node decoded
// in place.
func decodeChildRef(v rlp.Value, s store.Store) (Node, error) {
	switch val := v.(type) {
	case rlp.String:
		switch len(val) {
		case 0:
			return nil, nil
		case 32:
			var key [32]byte
			copy(key[:], val)
			return loadNode(s, key)
		default:
			return nil, fmt.Errorf("trie: invalid child reference length %d", len(val))
		}
	case rlp.List:
		return decodeNodeFromValue(val, s)
	default:
		return nil, fmt.Errorf("trie: unknown child reference type")
	}
}
