// Package huffnode defines the node entity shared by gohuff's adaptive
// and static Huffman trees, plus the primitive operations (SetChild,
// Swap) that both trees build on.
package huffnode

// Side identifies which child slot a node occupies in its parent.
type Side int

const (
	Left Side = iota
	Right
)

// Node is a node in either Huffman tree variant. Internal nodes have
// Symbol == nil and two non-nil Children, except the static tree's
// single-symbol root, which has only a Left child; leaves have either a
// Symbol or are one of the adaptive tree's two sentinels (NYT, EOF),
// which are tagged, not separately typed, via IsNYT/IsEOF.
type Node struct {
	Weight  uint64
	Symbol  []byte // nil for internal nodes and for NYT/EOF sentinels
	Parent  *Node
	Side    Side
	HasSide bool // false for the root, which occupies no parent slot
	Children [2]*Node
	Pos     int // current index into the owning tree's Nodes slice

	IsNYT bool
	IsEOF bool
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Children[Left] == nil && n.Children[Right] == nil
}

// SetChild attaches child to parent's side slot and points child back
// at parent, recording which side it now occupies.
func SetChild(parent, child *Node, side Side) {
	parent.Children[side] = child
	child.Parent = parent
	child.Side = side
	child.HasSide = true
}

// Swap exchanges a and b's positions in the tree: it detaches each from
// its parent's child slot, swaps their (Parent, Side, HasSide, Pos)
// tuples, and reattaches each at the other's former slot. Weight,
// Symbol, and Children are left untouched on both nodes, so the
// subtrees rooted at a and b move along with them. Swapping a node
// with itself is a no-op.
func Swap(a, b *Node) {
	if a == b {
		return
	}
	if a.HasSide && a.Parent != nil {
		a.Parent.Children[a.Side] = b
	}
	if b.HasSide && b.Parent != nil {
		b.Parent.Children[b.Side] = a
	}
	a.Parent, b.Parent = b.Parent, a.Parent
	a.Side, b.Side = b.Side, a.Side
	a.HasSide, b.HasSide = b.HasSide, a.HasSide
	a.Pos, b.Pos = b.Pos, a.Pos
}
