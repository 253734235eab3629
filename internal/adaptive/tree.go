// Package adaptive implements the dynamic (FGK/Vitter-style) adaptive
// Huffman tree and the bit-level encode/decode state machine built on
// top of it. This is the core codec: the tree mutates after every
// symbol, and the encoder and decoder must stay in lock-step by
// mutating it the same way.
package adaptive

import (
	"github.com/CzarekM2012/Huffman/internal/bitio"
	"github.com/CzarekM2012/Huffman/internal/hufferr"
	"github.com/CzarekM2012/Huffman/internal/huffnode"
)

// Tree is the sibling-property-preserving adaptive Huffman tree: NYT,
// an optional EOF sentinel, and every symbol seen so far, kept in
// breadth-first-by-weight order in Nodes.
type Tree struct {
	Root   *huffnode.Node
	Nodes  []*huffnode.Node // Nodes[i].Pos == i always
	NYT    *huffnode.Node
	EOF    *huffnode.Node // nil when the tree was built without an EOF sentinel
	Active *huffnode.Node // decode cursor; Root between symbols

	leaves map[string]*huffnode.Node
}

// New builds a single-node tree (NYT at the root). When withEOF is
// true an EOF leaf is inserted immediately and its weight bumped to 1,
// per spec: standard streams need a terminator; some embedded uses
// (e.g. coding a fixed-length extension string) do not.
func New(withEOF bool) *Tree {
	nyt := &huffnode.Node{IsNYT: true}
	t := &Tree{
		Root:   nyt,
		Nodes:  []*huffnode.Node{nyt},
		NYT:    nyt,
		leaves: make(map[string]*huffnode.Node),
	}
	t.Active = t.Root
	if withEOF {
		eof := &huffnode.Node{IsEOF: true}
		t.newLeaf(eof)
		t.EOF = eof
		t.increment(eof)
	}
	return t
}

// Leaf looks up the leaf node for symbol, if the tree has seen it.
func (t *Tree) Leaf(symbol []byte) (*huffnode.Node, bool) {
	n, ok := t.leaves[string(symbol)]
	return n, ok
}

// newLeaf inserts leaf where NYT currently sits: a new internal node P
// takes NYT's old slot, P's children become NYT (left) and leaf
// (right). Both P and leaf start at weight 0; the caller must follow
// up with increment(leaf).
func (t *Tree) newLeaf(leaf *huffnode.Node) *huffnode.Node {
	nyt := t.NYT
	parent := &huffnode.Node{}

	hadParent := nyt.HasSide && nyt.Parent != nil
	if hadParent {
		huffnode.SetChild(nyt.Parent, parent, nyt.Side)
	} else {
		t.Root = parent
	}
	huffnode.SetChild(parent, nyt, huffnode.Left)
	huffnode.SetChild(parent, leaf, huffnode.Right)

	oldPos := nyt.Pos
	parent.Pos = oldPos
	leaf.Pos = oldPos + 1
	nyt.Pos = oldPos + 2

	t.Nodes[oldPos] = parent
	t.Nodes = append(t.Nodes, leaf, nyt)

	if leaf.Symbol != nil {
		t.leaves[string(leaf.Symbol)] = leaf
	}
	return leaf
}

// increment walks from node to the root, sliding node to its weight
// block's leader before bumping the weight at each level, restoring
// the sibling property as it goes.
func (t *Tree) increment(node *huffnode.Node) {
	for {
		t.slide(node)
		node.Weight++
		if node == t.Root {
			return
		}
		node = node.Parent
	}
}

// slide swaps node with the leader of its weight block: the
// highest-ranked (lowest Pos) node strictly earlier than node in
// Nodes that shares node's weight and isn't node's own parent. The
// scan walks Nodes[node.Pos .. 1] downward, exactly as
// original_source/src/HuffmanTree.py::_slide does, stopping as soon as
// it meets a strictly heavier node.
func (t *Tree) slide(node *huffnode.Node) *huffnode.Node {
	leader := node
	for i := node.Pos; i >= 1; i-- {
		n := t.Nodes[i]
		if n == node.Parent {
			continue
		}
		if n.Weight == node.Weight {
			leader = n
		}
		if n.Weight > node.Weight {
			break
		}
	}
	huffnode.Swap(node, leader)
	return leader
}

// pathBits returns the root-to-n side sequence (0 == Left, 1 == Right)
// in root-to-leaf emission order.
func pathBits(n *huffnode.Node) []byte {
	var bits []byte
	for n.HasSide {
		bits = append(bits, byte(n.Side))
		n = n.Parent
	}
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
	return bits
}

func bytesToBits(data []byte) []byte {
	bits := make([]byte, 0, 8*len(data))
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}
	return bits
}

func bitsToBytes(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | bits[i*8+j]
		}
		out[i] = b
	}
	return out
}

// EncodeSymbol returns the bit sequence for symbol: the path to its
// existing leaf, or the path to NYT followed by symbol's raw bits for
// a symbol never seen before. Either way, the tree is mutated (a new
// leaf inserted if needed, then the leaf's weight incremented) only
// after the code has been computed, so a symbol's encoding is never
// observed half-mutated.
func (t *Tree) EncodeSymbol(symbol []byte) []byte {
	if leaf, ok := t.leaves[string(symbol)]; ok {
		bits := pathBits(leaf)
		t.increment(leaf)
		return bits
	}
	bits := pathBits(t.NYT)
	bits = append(bits, bytesToBits(symbol)...)
	leaf := &huffnode.Node{Symbol: append([]byte(nil), symbol...)}
	t.newLeaf(leaf)
	t.increment(leaf)
	return bits
}

// EncodeEOF returns the path to the EOF leaf. EOF's weight is never
// incremented; it stays 1 for the tree's lifetime.
func (t *Tree) EncodeEOF() []byte {
	if t.EOF == nil {
		panic("adaptive: EncodeEOF called on a tree built without an EOF sentinel")
	}
	return pathBits(t.EOF)
}

// DecodeSymbol consumes bits one at a time from src, starting at
// Active, until it resolves a full symbol, the EOF leaf, or runs out
// of bits. On running out of bits it rewinds src to its entry position
// and returns ok == false so the caller can retry once more bits are
// available (e.g. after prepending them to the next chunk) — Active
// is left untouched in that case, so the retry is exactly equivalent
// to the original call.
func (t *Tree) DecodeSymbol(src *bitio.Source, symbolSize int) (symbol []byte, eof bool, ok bool, err error) {
	mark := src.Mark()
	node := t.Active
	for {
		bit, has := src.PopBit()
		if !has {
			src.Reset(mark)
			return nil, false, false, nil
		}
		if bit == 0 {
			node = node.Children[huffnode.Left]
		} else {
			node = node.Children[huffnode.Right]
		}
		if node == nil {
			src.Reset(mark)
			return nil, false, false, hufferr.New(hufferr.CorruptInput, "adaptive: decoded path fell off the tree")
		}
		if node == t.EOF {
			t.Active = t.Root
			return nil, true, true, nil
		}
		if node == t.NYT {
			litBits, has := src.Peek(8 * symbolSize)
			if !has {
				src.Reset(mark)
				return nil, false, false, nil
			}
			src.Advance(8 * symbolSize)
			sym := bitsToBytes(litBits)
			leaf := &huffnode.Node{Symbol: sym}
			t.newLeaf(leaf)
			t.increment(leaf)
			t.Active = t.Root
			return sym, false, true, nil
		}
		if node.Symbol != nil {
			t.increment(node)
			t.Active = t.Root
			return node.Symbol, false, true, nil
		}
		// internal node: keep descending
	}
}

// DecodeChunk repeatedly decodes whole symbols from src until either no
// complete symbol remains in the buffer or the EOF symbol fires. It
// returns the concatenated decoded symbols and whether EOF was seen;
// on EOF the caller must stop pulling further chunks from the
// underlying source.
func (t *Tree) DecodeChunk(src *bitio.Source, symbolSize int) (content []byte, eof bool, err error) {
	for {
		symbol, isEOF, ok, err := t.DecodeSymbol(src, symbolSize)
		if err != nil {
			return content, false, err
		}
		if !ok {
			return content, false, nil
		}
		if isEOF {
			return content, true, nil
		}
		content = append(content, symbol...)
	}
}
