package trie

import (
	"encoding/hex"
	"fmt"
)

// Node is the tagged variant implemented by LeafNode, ExtensionNode,
// and BranchNode. A Trie holds at most one root Node; every other
// Node is reachable from exactly one parent (no sharing, no cycles).
type Node interface {
	node()
	fmt.Stringer
}

// LeafNode is a terminal node holding the remaining path from its
// parent down to the 64th nibble, and the value stored at that key.
type LeafNode struct {
	Path  Path
	Value []byte
}

func (*LeafNode) node() {}

func (l *LeafNode) String() string {
	return fmt.Sprintf("Leaf{path: %v, value: %s}", l.Path, hex.EncodeToString(l.Value))
}

// ExtensionNode collapses a chain of single-child branches. Its Path
// is never empty (I3) and its Child is always a *BranchNode (I2).
type ExtensionNode struct {
	Path  Path
	Child Node
}

func (*ExtensionNode) node() {}

func (e *ExtensionNode) String() string {
	return fmt.Sprintf("Extension{path: %v, child: %s}", e.Path, e.Child)
}

// BranchNode is a 16-way radix split keyed by the next nibble. Value
// is non-nil only when some key's nibble path terminates exactly at
// this node.
type BranchNode struct {
	Children [16]Node
	Value    []byte
}

func (*BranchNode) node() {}

func (b *BranchNode) String() string {
	s := "Branch{children: ["
	for i, c := range b.Children {
		if c != nil {
			s += fmt.Sprintf("%x:%s ", i, c)
		}
	}
	s += "], value: "
	if b.Value != nil {
		s += hex.EncodeToString(b.Value)
	} else {
		s += "<empty>"
	}
	return s + "}"
}

// childCount reports how many of the branch's 16 slots are occupied.
func (b *BranchNode) childCount() int {
	n := 0
	for _, c := range b.Children {
		if c != nil {
			n++
		}
	}
	return n
}

// soleChild returns the single occupied slot and its node. It is only
// meaningful when childCount() == 1.
func (b *BranchNode) soleChild() (Nibble, Node) {
	for i, c := range b.Children {
		if c != nil {
			return Nibble(i), c
		}
	}
	panic("trie: soleChild called on a branch with no children")
}
