package trie

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable tree rendering of the trie to w, one
// line per node plus one line naming each occupied branch slot,
// indented by depth. It is meant for debugging and
// tests, not for any on-disk or wire format.
func (t *Trie) Dump(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return dumpNode(w, t.root, 0)
}

func dumpNode(w io.Writer, n Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch t := n.(type) {
	case nil:
		return nil
	case *LeafNode:
		_, err := fmt.Fprintf(w, "%sLeaf path=%v value=%x\n", indent, t.Path, t.Value)
		return err
	case *ExtensionNode:
		if _, err := fmt.Fprintf(w, "%sExtension path=%v\n", indent, t.Path); err != nil {
			return err
		}
		return dumpNode(w, t.Child, depth+1)
	case *BranchNode:
		valueStr := "<empty>"
		if t.Value != nil {
			valueStr = fmt.Sprintf("%x", t.Value)
		}
		if _, err := fmt.Fprintf(w, "%sBranch value=%s\n", indent, valueStr); err != nil {
			return err
		}
		for i, c := range t.Children {
			if c == nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s  [%x]\n", indent, i); err != nil {
				return err
			}
			if err := dumpNode(w, c, depth+2); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("trie: dump on unknown node type %T", n)
	}
}
