package trie

// insert returns the node that should occupy this slot after writing
// value at path, per §4.3.2. It always produces a fresh node rather
// than mutating n in place: Go's garbage collector reclaims the
// displaced subtree, so there is no need for the explicit ownership
// juggling a manual-memory implementation would require.
func insert(n Node, path Path, value []byte) Node {
	switch t := n.(type) {
	case nil:
		return &LeafNode{Path: path.clone(), Value: value}

	case *LeafNode:
		if t.Path.equal(path) {
			return &LeafNode{Path: path.clone(), Value: value}
		}
		return splitLeaf(t, path, value)

	case *ExtensionNode:
		k := lcpLen(t.Path, path)
		if k == len(t.Path) {
			return &ExtensionNode{Path: t.Path, Child: insert(t.Child, path[k:], value)}
		}
		return splitExtension(t, k, path, value)

	case *BranchNode:
		nb := &BranchNode{Children: t.Children, Value: t.Value}
		if len(path) == 0 {
			nb.Value = value
			return nb
		}
		s := path[0]
		nb.Children[s] = insert(t.Children[s], path[1:], value)
		return nb

	default:
		panic("trie: insert on unknown node type")
	}
}

// splitLeaf handles a Leaf/new-key collision with a common prefix
// shorter than either path: both keys fan out from a fresh Branch,
// wrapped in an Extension if they share a non-empty prefix.
func splitLeaf(t *LeafNode, path Path, value []byte) Node {
	k := lcpLen(t.Path, path)
	branch := &BranchNode{}
	installLeafTail(branch, t.Path, k, t.Value)
	installLeafTail(branch, path, k, value)
	return wrapInExtension(t.Path[:k], branch)
}

// installLeafTail places a key's remainder into branch, either as the
// branch's own value (key exhausted at the split point) or as a new
// Leaf under the next nibble.
func installLeafTail(branch *BranchNode, path Path, k int, value []byte) {
	if k == len(path) {
		branch.Value = value
		return
	}
	branch.Children[path[k]] = &LeafNode{Path: path[k+1:].clone(), Value: value}
}

// splitExtension handles an insertion that diverges from an
// Extension's path before reaching its end: the shared prefix (if
// any) keeps an Extension down to a fresh Branch, which then holds
// the Extension's old remainder on one side and the new key on the
// other.
func splitExtension(t *ExtensionNode, k int, path Path, value []byte) Node {
	branch := &BranchNode{}

	rem := t.Path[k+1:]
	if len(rem) == 0 {
		branch.Children[t.Path[k]] = t.Child
	} else {
		branch.Children[t.Path[k]] = &ExtensionNode{Path: rem.clone(), Child: t.Child}
	}
	installLeafTail(branch, path, k, value)

	return wrapInExtension(t.Path[:k], branch)
}

// wrapInExtension wraps child in an Extension over prefix, unless
// prefix is empty, in which case child is returned directly (I3: no
// zero-length Extension).
func wrapInExtension(prefix Path, child *BranchNode) Node {
	if len(prefix) == 0 {
		return child
	}
	return &ExtensionNode{Path: prefix.clone(), Child: child}
}
