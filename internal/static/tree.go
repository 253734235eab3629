package static

import (
	"sort"

	"github.com/CzarekM2012/Huffman/internal/hufferr"
	"github.com/CzarekM2012/Huffman/internal/huffnode"
)

// Tree is a frozen canonical Huffman tree built once from a frequency
// table, per spec.md §4.E.
type Tree struct {
	Root  *huffnode.Node
	Codes map[string][]byte // symbol -> MSB-first-emission-order bit sequence (0/1 values)
}

// Build constructs the canonical tree for entries: start from one leaf
// per entry sorted by ascending weight, then repeatedly combine the
// two lightest nodes and stable-insert the result, exactly as
// original_source/src/basicHuffman.py::_build_tree does. entries must
// be non-empty.
func Build(entries []Entry) (*Tree, error) {
	if len(entries) == 0 {
		return nil, hufferr.New(hufferr.InvalidConfig, "static.Build: empty alphabet")
	}
	if len(entries) == 1 {
		// A single-symbol alphabet has no second leaf to pair it with,
		// so _build_tree's pairing loop never runs. Give it a real
		// one-child root instead of treating the leaf itself as the
		// root, so decoding can still descend via Children[bit] like
		// every other alphabet size.
		leaf := &huffnode.Node{Weight: entries[0].Count, Symbol: entries[0].Symbol}
		root := &huffnode.Node{Weight: leaf.Weight}
		huffnode.SetChild(root, leaf, huffnode.Left)
		return &Tree{Root: root, Codes: map[string][]byte{string(leaf.Symbol): {0}}}, nil
	}
	nodes := make([]*huffnode.Node, len(entries))
	for i, e := range entries {
		nodes[i] = &huffnode.Node{Weight: e.Count, Symbol: e.Symbol}
	}
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Weight < nodes[j].Weight })

	for len(nodes) > 1 {
		left, right := nodes[0], nodes[1]
		nodes = nodes[2:]
		parent := &huffnode.Node{Weight: left.Weight + right.Weight}
		huffnode.SetChild(parent, left, huffnode.Left)
		huffnode.SetChild(parent, right, huffnode.Right)

		inserted := false
		for i, n := range nodes {
			if parent.Weight < n.Weight {
				nodes = append(nodes[:i], append([]*huffnode.Node{parent}, nodes[i:]...)...)
				inserted = true
				break
			}
		}
		if !inserted {
			nodes = append(nodes, parent)
		}
	}

	root := nodes[0]
	return &Tree{Root: root, Codes: extractCodes(root)}, nil
}

// extractCodes walks the tree with an explicit stack (depth is bounded
// by the alphabet size, but systems-code habit per spec.md's design
// notes favors an explicit stack over recursion), recording each
// leaf's root-to-leaf bit path. Build does not call it for a
// single-leaf alphabet; that case gets its code "0" in Build itself.
func extractCodes(root *huffnode.Node) map[string][]byte {
	codes := make(map[string][]byte)

	type frame struct {
		node   *huffnode.Node
		prefix []byte
	}
	stack := []frame{{root, nil}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.IsLeaf() {
			codes[string(top.node.Symbol)] = top.prefix
			continue
		}
		if right := top.node.Children[huffnode.Right]; right != nil {
			stack = append(stack, frame{right, appendBit(top.prefix, 1)})
		}
		if left := top.node.Children[huffnode.Left]; left != nil {
			stack = append(stack, frame{left, appendBit(top.prefix, 0)})
		}
	}
	return codes
}

func appendBit(prefix []byte, bit byte) []byte {
	out := make([]byte, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = bit
	return out
}

// Encode returns the code for symbol.
func (t *Tree) Encode(symbol []byte) ([]byte, error) {
	code, ok := t.Codes[string(symbol)]
	if !ok {
		return nil, hufferr.New(hufferr.CorruptInput, "static.Tree.Encode: symbol not in alphabet")
	}
	return code, nil
}

// DecodeBlock walks bits from the root, emitting a symbol each time it
// reaches a leaf and resetting to the root, until fewer bits remain
// than are needed to reach another leaf. It returns the decoded
// symbols and the bits of the in-progress symbol it couldn't resolve
// (i.e. everything since the last completed symbol).
func (t *Tree) DecodeBlock(bits []byte) (decoded [][]byte, remainder []byte) {
	node := t.Root
	i := 0
	symStart := 0
	for i < len(bits) {
		node = node.Children[bits[i]]
		i++
		if node == nil {
			break
		}
		if node.IsLeaf() {
			decoded = append(decoded, node.Symbol)
			node = t.Root
			symStart = i
		}
	}
	return decoded, bits[symStart:]
}
