package huffnode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetChild(t *testing.T) {
	parent := &Node{}
	child := &Node{}
	SetChild(parent, child, Right)

	require.Equal(t, child, parent.Children[Right])
	require.Nil(t, parent.Children[Left])
	require.Equal(t, parent, child.Parent)
	require.Equal(t, Right, child.Side)
	require.True(t, child.HasSide)
}

func TestIsLeaf(t *testing.T) {
	leaf := &Node{Symbol: []byte("a")}
	require.True(t, leaf.IsLeaf())

	parent := &Node{}
	SetChild(parent, leaf, Left)
	require.False(t, parent.IsLeaf())
	require.True(t, leaf.IsLeaf())
}

func TestSwapExchangesPositionsNotPayload(t *testing.T) {
	root := &Node{}
	a := &Node{Weight: 1, Symbol: []byte("a"), Pos: 1}
	b := &Node{Weight: 2, Symbol: []byte("b"), Pos: 2}
	SetChild(root, a, Left)
	SetChild(root, b, Right)

	Swap(a, b)

	require.Equal(t, b, root.Children[Left])
	require.Equal(t, a, root.Children[Right])
	require.Equal(t, Left, b.Side)
	require.Equal(t, Right, a.Side)
	require.Equal(t, 2, a.Pos)
	require.Equal(t, 1, b.Pos)
	// payload stays with the node, not the slot
	require.Equal(t, uint64(1), a.Weight)
	require.Equal(t, []byte("b"), b.Symbol)
}

func TestSwapSelfIsNoop(t *testing.T) {
	root := &Node{}
	a := &Node{Pos: 3}
	SetChild(root, a, Left)
	Swap(a, a)
	require.Equal(t, a, root.Children[Left])
	require.Equal(t, 3, a.Pos)
}

func TestSwapWithoutParents(t *testing.T) {
	a := &Node{Pos: 0}
	b := &Node{Pos: 1}
	Swap(a, b)
	require.Equal(t, 1, a.Pos)
	require.Equal(t, 0, b.Pos)
}
