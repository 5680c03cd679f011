package trie

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/example/triekv/trie/rlp"
)

// hashRefThreshold is the boundary from §4.4.3: a child whose RLP
// encoding is shorter than this many bytes is embedded inline in its
// parent; at or above it, the child is replaced by the Keccak-256
// digest of its encoding and stored separately.
const hashRefThreshold = 32

// rootSentinelKey is the fixed store key under which the trie's
// current root hash is recorded, so Load has an entry point that does
// not depend on remembering a root hash out of band.
var rootSentinelKey = toKey(crypto.Keccak256([]byte("__ROOT__")))

// emptyRootHash is the canonical root hash of a trie holding no
// key/value pairs: the Keccak-256 digest of the RLP encoding of the
// empty byte string.
var emptyRootHash = toKey(crypto.Keccak256(rlp.Encode(rlp.String(nil))))

func toKey(b []byte) [32]byte {
	var k [32]byte
	copy(k[:], b)
	return k
}

// nodeContent returns n's own RLP structure per §4.4.2, recursively
// replacing each child with its reference (§4.4.3). Hash-referenced
// children have their encoded bytes recorded in entries.
func nodeContent(n Node, entries map[[32]byte][]byte) rlp.Value {
	switch t := n.(type) {
	case *LeafNode:
		return rlp.List{rlp.String(hpEncode(hpLeaf, t.Path)), rlp.String(t.Value)}
	case *ExtensionNode:
		return rlp.List{rlp.String(hpEncode(hpExtension, t.Path)), childRef(t.Child, entries)}
	case *BranchNode:
		items := make(rlp.List, 0, 17)
		for _, c := range t.Children {
			items = append(items, childRef(c, entries))
		}
		items = append(items, rlp.String(t.Value))
		return items
	default:
		panic("trie: nodeContent on unknown node type")
	}
}

// childRef returns the reference a parent embeds for child n.
func childRef(n Node, entries map[[32]byte][]byte) rlp.Value {
	if n == nil {
		return rlp.String(nil)
	}
	content := nodeContent(n, entries)
	bytes := rlp.Encode(content)
	if len(bytes) < hashRefThreshold {
		return content
	}
	key := toKey(crypto.Keccak256(bytes))
	entries[key] = bytes
	return rlp.String(key[:])
}

// hash returns the Keccak-256 digest of n's canonical RLP encoding.
// Unlike childRef, it always hashes regardless of encoded size: this
// is what a Commit uses for the trie's root, which needs a stable
// entry point even when the whole trie would otherwise be inlined.
func hash(n Node, entries map[[32]byte][]byte) [32]byte {
	if n == nil {
		return emptyRootHash
	}
	content := nodeContent(n, entries)
	bytes := rlp.Encode(content)
	key := toKey(crypto.Keccak256(bytes))
	entries[key] = bytes
	return key
}
