package trie

// get looks up path in the subtree rooted at n, following §4.3.1:
// a Leaf matches only on exact path equality, an Extension requires
// its path to prefix the remaining path before descending, and a
// Branch either yields its own value (path exhausted) or descends
// into the child selected by the next nibble.
func get(n Node, path Path) ([]byte, bool) {
	switch t := n.(type) {
	case nil:
		return nil, false
	case *LeafNode:
		if t.Path.equal(path) {
			return t.Value, true
		}
		return nil, false
	case *ExtensionNode:
		if !path.hasPrefix(t.Path) {
			return nil, false
		}
		return get(t.Child, path[len(t.Path):])
	case *BranchNode:
		if len(path) == 0 {
			if t.Value == nil {
				return nil, false
			}
			return t.Value, true
		}
		return get(t.Children[path[0]], path[1:])
	default:
		panic("trie: get on unknown node type")
	}
}
