package trie

import "fmt"

// Check walks the subtree rooted at n and reports the first violation
// of the canonical-form invariants (§3):
//
//	I1: a Leaf's path may be any length, including zero.
//	I2: an Extension's child is always a Branch.
//	I3: an Extension's path is never empty.
//	I4: a Branch has at least two children, or exactly one child
//	    together with a value; it never holds a single child with no
//	    value, and never zero children with no value.
func Check(n Node) error {
	switch t := n.(type) {
	case nil:
		return nil
	case *LeafNode:
		return nil
	case *ExtensionNode:
		if len(t.Path) == 0 {
			return fmt.Errorf("trie: I3 violated: extension with empty path")
		}
		if _, ok := t.Child.(*BranchNode); !ok {
			return fmt.Errorf("trie: I2 violated: extension child is %T, want *BranchNode", t.Child)
		}
		return Check(t.Child)
	case *BranchNode:
		count := t.childCount()
		hasValue := t.Value != nil
		if count == 0 && !hasValue {
			return fmt.Errorf("trie: I4 violated: branch with no children and no value")
		}
		if count == 1 && !hasValue {
			return fmt.Errorf("trie: I4 violated: branch with exactly one child and no value")
		}
		for i, c := range t.Children {
			if err := Check(c); err != nil {
				return fmt.Errorf("branch child %x: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("trie: unknown node type %T", n)
	}
}
