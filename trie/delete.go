package trie

// deleteOutcome tags the three shapes a deletion can take for the
// parent that issued the recursive call, per §4.3.3: the key was
// never present, it was removed with this node left in place, or it
// was removed and the caller must install a replacement node. Nodes
// are never mutated in place, so every successful removal in this
// file yields outcomeReplaced with the rebuilt node (which may still
// be a Branch); outcomeDeleted is only passed upward unchanged.
type deleteOutcome int

const (
	outcomeNotFound deleteOutcome = iota
	outcomeDeleted
	outcomeReplaced
)

type deleteResult struct {
	outcome deleteOutcome
	node    Node // meaningful only when outcome == outcomeReplaced; nil means the subtree vanished entirely
}

var (
	resultNotFound = deleteResult{outcome: outcomeNotFound}
	resultDeleted  = deleteResult{outcome: outcomeDeleted}
)

func resultReplaced(n Node) deleteResult {
	return deleteResult{outcome: outcomeReplaced, node: n}
}

// deleteFrom removes path from the subtree rooted at n. n is always
// a *BranchNode or *ExtensionNode: a Leaf reachable as an immediate
// child is handled directly by its parent Branch, and the Trie's own
// root Leaf is handled by Trie.Delete, so deleteFrom itself never
// has to special-case a bare Leaf.
func deleteFrom(n Node, path Path) deleteResult {
	switch t := n.(type) {
	case *BranchNode:
		return deleteFromBranch(t, path)
	case *ExtensionNode:
		return deleteFromExtension(t, path)
	default:
		panic("trie: deleteFrom on unexpected node type")
	}
}

func deleteFromBranch(b *BranchNode, path Path) deleteResult {
	if len(path) == 0 {
		if b.Value == nil {
			return resultNotFound
		}
		nb := cloneBranch(b)
		nb.Value = nil
		return collapseBranch(nb)
	}

	idx := path[0]
	child := b.Children[idx]
	if child == nil {
		return resultNotFound
	}
	rest := path[1:]

	if leaf, ok := child.(*LeafNode); ok {
		if !leaf.Path.equal(rest) {
			return resultNotFound
		}
		nb := cloneBranch(b)
		nb.Children[idx] = nil
		return collapseBranch(nb)
	}

	res := deleteFrom(child, rest)
	switch res.outcome {
	case outcomeNotFound:
		return res
	case outcomeDeleted:
		return resultDeleted
	case outcomeReplaced:
		nb := cloneBranch(b)
		nb.Children[idx] = res.node
		return collapseBranch(nb)
	default:
		panic("trie: unreachable delete outcome")
	}
}

func deleteFromExtension(e *ExtensionNode, path Path) deleteResult {
	if !path.hasPrefix(e.Path) {
		return resultNotFound
	}
	rest := path[len(e.Path):]

	res := deleteFrom(e.Child, rest)
	switch res.outcome {
	case outcomeNotFound:
		return res
	case outcomeDeleted:
		return resultDeleted
	case outcomeReplaced:
		return mergeExtensionReplacement(e, res.node)
	default:
		panic("trie: unreachable delete outcome")
	}
}

// mergeExtensionReplacement installs child as the new occupant of the
// slot that used to hold e. A Branch child keeps e as an Extension in
// place; a Leaf or Extension child absorbs e's path as a prefix.
func mergeExtensionReplacement(e *ExtensionNode, child Node) deleteResult {
	switch c := child.(type) {
	case nil:
		return resultReplaced(nil)
	case *LeafNode:
		return resultReplaced(&LeafNode{Path: e.Path.merge(c.Path), Value: c.Value})
	case *ExtensionNode:
		return resultReplaced(&ExtensionNode{Path: e.Path.merge(c.Path), Child: c.Child})
	case *BranchNode:
		return resultReplaced(&ExtensionNode{Path: e.Path, Child: c})
	default:
		panic("trie: unknown node type in extension merge")
	}
}

// collapseBranch restores canonical form after a Branch loses a
// child or its own value (I4): two or more children, or one child
// plus a value, is still a valid Branch. Exactly one child and no
// value must collapse into that child, extended by the one nibble it
// occupied. Zero children and no value only arises transiently and
// collapses away to nothing.
func collapseBranch(b *BranchNode) deleteResult {
	count := b.childCount()
	hasValue := b.Value != nil

	switch {
	case count >= 2 || (count == 1 && hasValue):
		return resultReplaced(b)
	case count == 1:
		nibble, child := b.soleChild()
		return mergeBranchChild(nibble, child)
	case hasValue:
		// No children left, but a value survives at this slot: it is
		// indistinguishable from a Leaf with an empty path.
		return resultReplaced(&LeafNode{Path: Path{}, Value: b.Value})
	default:
		return resultReplaced(nil)
	}
}

// mergeBranchChild folds a Branch's sole remaining child into a
// single node that carries the branch's slot nibble as its leading
// path nibble.
func mergeBranchChild(slot Nibble, child Node) deleteResult {
	switch c := child.(type) {
	case *LeafNode:
		return resultReplaced(&LeafNode{Path: Path{slot}.merge(c.Path), Value: c.Value})
	case *ExtensionNode:
		return resultReplaced(&ExtensionNode{Path: Path{slot}.merge(c.Path), Child: c.Child})
	case *BranchNode:
		return resultReplaced(&ExtensionNode{Path: Path{slot}, Child: c})
	default:
		panic("trie: unknown node type as branch's sole child")
	}
}

// cloneBranch shallow-copies a branch's children array and value so
// that collapseBranch and its callers can mutate the copy without
// disturbing a node another reference might still observe mid-call.
func cloneBranch(b *BranchNode) *BranchNode {
	nb := &BranchNode{Children: b.Children, Value: b.Value}
	return nb
}
