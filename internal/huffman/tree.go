package huffman

import (
	"cmp"
	"container/heap"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.
//
// A node is either a leaf, which holds a symbol and its frequency,
// or a branch, which holds the combined weight of its children.
// Use IsLeaf to tell them apart; the value of Symbol is meaningless
// for branches.
//
// Trees are read-only once built.
// They may be shared between goroutines as long as nobody modifies them.
type Node[S cmp.Ordered] struct {
	// Symbol held by a leaf.
	Symbol S

	// Frequency of the leaf's symbol,
	// or the combined frequency of all leaves under a branch.
	Weight int

	// Children of a branch. Both are nil for leaves.
	// Right is nil for the root of a single-symbol tree.
	Left, Right *Node[S]

	leaf bool

	// Position in the total order used to break ties between equal
	// weights. Leaves are numbered in ascending symbol order,
	// branches in the order they were created after all leaves.
	seq int
}

// NewLeaf builds a leaf node for the given symbol.
func NewLeaf[S cmp.Ordered](symbol S, weight int) *Node[S] {
	return &Node[S]{Symbol: symbol, Weight: weight, leaf: true}
}

// NewBranch builds a branch node over the given children.
// right may be nil to build the root of a single-symbol tree.
func NewBranch[S cmp.Ordered](left, right *Node[S]) *Node[S] {
	n := &Node[S]{Left: left, Right: right}
	if left != nil {
		n.Weight += left.Weight
	}
	if right != nil {
		n.Weight += right.Weight
	}
	return n
}

// IsLeaf reports whether this node is a leaf.
func (n *Node[S]) IsLeaf() bool {
	return n != nil && n.leaf
}

// child returns the child for the given bit.
func (n *Node[S]) child(bit Bit) *Node[S] {
	if bit == 0 {
		return n.Left
	}
	return n.Right
}

// BuildTree builds a Huffman tree for the given frequencies
// and returns its root.
//
// Nodes are merged lowest weight first. Ties are broken by a fixed total
// order: leaves come in ascending symbol order, and merged nodes follow
// all leaves in the order they were created. The first of the two nodes
// taken off the queue becomes the left child. As a result, building a tree
// from the same table always yields the same tree.
//
// If the table holds a single symbol, the root is a branch whose only
// child is the leaf for that symbol, on the left. That symbol's code is
// "0".
//
// BuildTree fails with ErrInvalidInput if the table is empty
// or holds a count that isn't positive.
func BuildTree[S cmp.Ordered](freqs FrequencyTable[S]) (*Node[S], error) {
	if err := freqs.validate(); err != nil {
		return nil, err
	}

	symbols := freqs.Symbols()
	nodes := make(nodeHeap[S], len(symbols))
	for i, s := range symbols {
		leaf := NewLeaf(s, freqs[s])
		leaf.seq = i
		nodes[i] = leaf
	}

	if len(nodes) == 1 {
		root := NewBranch(nodes[0], nil)
		root.seq = 1
		return root, nil
	}

	heap.Init(&nodes)
	seq := len(nodes)
	for nodes.Len() > 1 {
		left := heap.Pop(&nodes).(*Node[S])
		right := heap.Pop(&nodes).(*Node[S])

		merged := NewBranch(left, right)
		merged.seq = seq
		seq++
		heap.Push(&nodes, merged)
	}

	// n leaves always take exactly n-1 merges.
	assert.Assertf(seq == 2*len(symbols)-1,
		"built %d nodes from %d leaves", seq, len(symbols))
	assert.Assertf(nodes.Len() == 1, "%d roots left after merging", nodes.Len())

	return heap.Pop(&nodes).(*Node[S]), nil
}

// Walk visits every node of the tree rooted at n in depth-first order,
// left before right, calling fn with the node and the path to it from n.
//
// Each path is a fresh slice that fn may retain.
func (n *Node[S]) Walk(fn func(node *Node[S], path Code)) {
	if n == nil {
		return
	}

	type frame struct {
		node *Node[S]
		path Code
	}

	// Explicit stack so that deep trees from skewed frequencies
	// don't grow the goroutine stack.
	stack := []frame{{node: n, path: Code{}}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(top.node, top.path)
		if top.node.IsLeaf() {
			continue
		}

		// Push right first so that left is visited first.
		if r := top.node.Right; r != nil {
			stack = append(stack, frame{r, top.path.extend(1)})
		}
		if l := top.node.Left; l != nil {
			stack = append(stack, frame{l, top.path.extend(0)})
		}
	}
}

// Leaves returns the number of leaves under n.
func (n *Node[S]) Leaves() int {
	var count int
	n.Walk(func(node *Node[S], _ Code) {
		if node.IsLeaf() {
			count++
		}
	})
	return count
}

// Depth reports the length of the longest path from n to a leaf.
func (n *Node[S]) Depth() int {
	var depth int
	n.Walk(func(node *Node[S], path Code) {
		if node.IsLeaf() {
			depth = max(depth, len(path))
		}
	})
	return depth
}

// String renders the tree in a compact parenthesized form, for example
// (7 'b' (4 'a' 'c')) for the tree of "aabbbcc".
func (n *Node[S]) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node[S]) writeTo(sb *strings.Builder) {
	switch {
	case n == nil:
		sb.WriteString("nil")
	case n.leaf:
		sb.WriteString(FormatSymbol(n.Symbol))
	default:
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(n.Weight))
		sb.WriteByte(' ')
		n.Left.writeTo(sb)
		if n.Right != nil {
			sb.WriteByte(' ')
			n.Right.writeTo(sb)
		}
		sb.WriteByte(')')
	}
}

type nodeHeap[S cmp.Ordered] []*Node[S]

func (ns nodeHeap[S]) Len() int { return len(ns) }

func (ns nodeHeap[S]) Less(i, j int) bool {
	a, b := ns[i], ns[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.seq < b.seq
}

func (ns nodeHeap[S]) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns *nodeHeap[S]) Push(e any) {
	*ns = append(*ns, e.(*Node[S]))
}

func (ns *nodeHeap[S]) Pop() any {
	n := len(*ns) - 1
	v := (*ns)[n]
	(*ns)[n] = nil
	*ns = (*ns)[:n]
	return v
}
