package skew

// Digest is the canonical identity of a subtree's shape and contents.
//
// Two nodes produced by the same [Forest] have equal digests if and only if
// they have the same value and their children have equal digests. Digests are
// assigned by interning, never by hashing, so equality is exact.
// The empty tree has digest 0.
type Digest uint32

// Node is an immutable skew-heap node.
//
// The value of a node is its insertion rank. Nodes are created only through
// [Forest.Node] and are never modified afterwards; every "undo" builds new
// nodes and leaves existing ones untouched. A nil *Node is the empty tree.
type Node struct {
	value  int
	left   *Node
	right  *Node
	digest Digest
	size   int
}

// Value returns the node's value (its insertion rank).
func (n *Node) Value() int { return n.value }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

// Digest returns the canonical digest of the subtree rooted at n.
// The empty tree (nil) has digest 0.
func (n *Node) Digest() Digest {
	if n == nil {
		return 0
	}
	return n.digest
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// localOK reports whether n satisfies heap order and the structural
// invariant at its own root. Children are assumed valid.
func (n *Node) localOK() bool {
	if n.left == nil && n.right != nil {
		return false
	}
	if n.left != nil && n.value > n.left.value {
		return false
	}
	if n.right != nil && n.value > n.right.value {
		return false
	}
	return true
}

type shape struct {
	value       int
	left, right Digest
}

// Forest hash-conses nodes so that structurally equal subtrees share one
// *Node and one [Digest].
//
// A Forest belongs to a single query. It is not safe for concurrent use.
//
// The zero value is not usable; use NewForest.
type Forest struct {
	nodes map[shape]*Node
}

// NewForest returns an empty Forest.
func NewForest() *Forest {
	return &Forest{nodes: make(map[shape]*Node)}
}

// Node returns the canonical node with the given value and children,
// creating it on first use. left and right must belong to f (or be nil).
func (f *Forest) Node(value int, left, right *Node) *Node {
	key := shape{value: value, left: left.Digest(), right: right.Digest()}
	if n, ok := f.nodes[key]; ok {
		return n
	}
	n := &Node{
		value:  value,
		left:   left,
		right:  right,
		digest: Digest(len(f.nodes) + 1),
		size:   1 + left.Size() + right.Size(),
	}
	f.nodes[key] = n
	return n
}

// Len returns the number of distinct subtrees interned in f.
func (f *Forest) Len() int { return len(f.nodes) }

// Equal reports whether a and b have the same shape and contents.
// Both must belong to the same Forest.
func Equal(a, b *Node) bool {
	return a.Digest() == b.Digest()
}
