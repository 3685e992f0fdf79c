package skew

import "iter"

// Order selects the direction in which undo candidates are produced.
type Order int

const (
	// Descending yields candidates from the largest inserted value down.
	Descending Order = iota
	// Ascending yields candidates from the smallest inserted value up.
	Ascending
)

// String returns "desc" or "asc".
func (o Order) String() string {
	if o == Ascending {
		return "asc"
	}
	return "desc"
}

// Undo yields every way the last insertion into the subtree rooted at n can
// be reversed, as pairs of (inserted value, previous subtree), sorted by the
// inserted value in the given order. Previous subtrees are new nodes interned
// in f; n itself is never modified.
//
// Two cases contribute:
//   - terminal: the insertion created n itself. Valid when n has no right
//     child and its value is below its left child's (if any). The previous
//     subtree is n's left child.
//   - propagated: the insertion went into n's left subtree after n swapped
//     its children. For each undo (s, b) of the left child with s ≥ n's value,
//     the previous subtree is (n.value, left: n.right, right: b), kept only if
//     it satisfies the heap and shape rules at its root.
//
// The terminal candidate's value is n's own value, which is smaller than any
// propagated value, so it comes last when descending and first when ascending.
// When descending, enumeration stops at the first propagated value below n's.
func (f *Forest) Undo(n *Node, order Order) iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		if n == nil {
			return
		}
		if order == Descending {
			if !f.propagated(n, order, yield) {
				return
			}
			if terminal(n) {
				yield(n.value, n.left)
			}
			return
		}
		if terminal(n) && !yield(n.value, n.left) {
			return
		}
		f.propagated(n, order, yield)
	}
}

func terminal(n *Node) bool {
	return n.right == nil && (n.left == nil || n.value < n.left.value)
}

// propagated yields the propagated-case candidates of n. It returns false if
// yield asked to stop.
func (f *Forest) propagated(n *Node, order Order, yield func(int, *Node) bool) bool {
	if n.left == nil {
		return true
	}
	for s, b := range f.Undo(n.left, order) {
		if s < n.value {
			if order == Descending {
				break
			}
			continue
		}
		prev := f.candidate(n.value, n.right, b)
		if prev == nil {
			continue
		}
		if !yield(s, prev) {
			return false
		}
	}
	return true
}

// candidate interns (value, left, right) if it is locally valid, else
// returns nil.
func (f *Forest) candidate(value int, left, right *Node) *Node {
	probe := Node{value: value, left: left, right: right}
	if !probe.localOK() {
		return nil
	}
	return f.Node(value, left, right)
}
