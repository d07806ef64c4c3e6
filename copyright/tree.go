package copyright

import "strings"

// PosToken is a single POS-tagged leaf produced by the upstream tokenizer.
// Leaf tokens are immutable once produced; the engine only ever wraps them
// inside [Node] values, it never mutates Text or PosTag in place (the EMAIL/URL
// composition pre-pass replaces a span with a freshly built leaf rather than
// editing one).
type PosToken struct {
	Text string
	Tag  PosTag
	// Start and End are byte offsets into the original text the token was
	// lexed from. Either may be -1 if the token was synthesized by a
	// pre-pass rather than read directly off the source.
	Start, End int
}

// Child is either a *PosToken leaf or a *Node produced by a reduction.
// It is a closed interface implemented only by those two types.
type Child interface {
	// text reconstructs the child's span in document order.
	text() string
	// leafTag reports the child's POS tag and whether it is a leaf at all.
	leafTag() (PosTag, bool)
	// label reports the child's tree label and whether it is a tree node.
	label() (TreeLabel, bool)
}

func (t *PosToken) text() string               { return t.Text }
func (t *PosToken) leafTag() (PosTag, bool)     { return t.Tag, true }
func (t *PosToken) label() (TreeLabel, bool)    { return "", false }

// Node is a tree node produced by folding a matched span of children under
// a single grammar rule's label.
type Node struct {
	Label    TreeLabel
	Children []Child
}

func (n *Node) leafTag() (PosTag, bool)  { return "", false }
func (n *Node) label() (TreeLabel, bool) { return n.Label, true }

// text reconstructs the node's span by walking its children in document
// order and joining their reconstructed text with single spaces. Whitespace
// is therefore normalized at token boundaries, matching the "modulo
// whitespace normalization" invariant on extracted spans.
func (n *Node) text() string {
	var b strings.Builder
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.text())
	}
	return b.String()
}

// Leaves flattens a [Child] back into its sequence of [PosToken]s in
// document order. Used to verify the POS->tree->text round-trip property:
// flatten(tree) == original token list.
func Leaves(c Child) []*PosToken {
	switch v := c.(type) {
	case *PosToken:
		return []*PosToken{v}
	case *Node:
		var out []*PosToken
		for _, ch := range v.Children {
			out = append(out, Leaves(ch)...)
		}
		return out
	default:
		return nil
	}
}
