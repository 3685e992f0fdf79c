package skew

import (
	"iter"
	"slices"

	"github.com/matzehuels/skewrev/pkg/errors"
)

// Insert returns the skew heap obtained by inserting value into h.
//
// If value is below the root, it becomes the new root with h as its left
// child. Otherwise the root swaps its children and value is inserted into
// what was the right subtree, which becomes the new left subtree. h is not
// modified; only the nodes on the insertion path are rebuilt.
func (f *Forest) Insert(h *Node, value int) *Node {
	var path []*Node
	cur := h
	for cur != nil && value >= cur.value {
		path = append(path, cur)
		cur = cur.right
	}

	var sub *Node
	if cur == nil {
		sub = f.Node(value, nil, nil)
	} else {
		sub = f.Node(value, cur, nil)
	}
	for i := len(path) - 1; i >= 0; i-- {
		p := path[i]
		sub = f.Node(p.value, sub, p.left)
	}
	return sub
}

// Replay inserts seq into an empty heap in order and returns the result.
// seq must be a permutation of 1..len(seq).
func (f *Forest) Replay(seq []int) (*Node, error) {
	if err := checkPermutation(seq); err != nil {
		return nil, err
	}
	var h *Node
	for _, v := range seq {
		h = f.Insert(h, v)
	}
	return h, nil
}

func checkPermutation(seq []int) error {
	seen := make([]bool, len(seq)+1)
	for i, v := range seq {
		if v < 1 || v > len(seq) {
			return errors.New(errors.ErrCodeInvalidInput, "value %d at position %d is outside 1..%d", v, i+1, len(seq))
		}
		if seen[v] {
			return errors.New(errors.ErrCodeInvalidInput, "value %d appears more than once", v)
		}
		seen[v] = true
	}
	return nil
}

// Orders yields every permutation of 1..n using Heap's algorithm.
//
// The yielded slice is reused between iterations; clone it to keep it.
// For n = 0 a single empty permutation is yielded. The count grows as n!,
// so this is only practical for small n.
func Orders(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i + 1
		}
		if !yield(seq) {
			return
		}
		state := make([]int, n)
		for i := 0; i < n; {
			if state[i] < i {
				if i&1 == 0 {
					seq[0], seq[i] = seq[i], seq[0]
				} else {
					seq[state[i]], seq[i] = seq[i], seq[state[i]]
				}
				if !yield(seq) {
					return
				}
				state[i]++
				i = 0
			} else {
				state[i] = 0
				i++
			}
		}
	}
}

// Producers returns every insertion order of 1..target.Size() that builds
// target, sorted lexicographically. It replays all n! orders and is meant as
// a reference for small trees only. target must belong to f.
func (f *Forest) Producers(target *Node) [][]int {
	var out [][]int
	for seq := range Orders(target.Size()) {
		h, err := f.Replay(seq)
		if err == nil && Equal(h, target) {
			out = append(out, slices.Clone(seq))
		}
	}
	slices.SortFunc(out, slices.Compare[[]int])
	return out
}
