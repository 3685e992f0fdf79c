package skew

import (
	"github.com/matzehuels/skewrev/pkg/errors"
)

// Build validates a parent→children description and returns its root.
//
// left and right are 1-indexed: left[i] and right[i] are the children of node
// i, with 0 meaning "absent". Index 0 of both slices is ignored, so for n
// nodes both slices have length n+1. The value of node i is i.
//
// Build checks, in order:
//   - every child reference is in 1..n and no node has two parents
//   - exactly one node has no parent
//   - every node is reachable from that root
//   - heap order (i ≤ child) and no right child without a left child
//
// The first three failures are reported as [errors.ErrCodeTopology], the last
// as [errors.ErrCodeHeap]. An empty description (n = 0) has no root and is a
// topology failure.
//
// Nodes are interned in f bottom-up without recursion, so arbitrarily deep
// trees are safe.
func Build(f *Forest, left, right []int) (*Node, error) {
	if len(left) != len(right) {
		return nil, errors.New(errors.ErrCodeInternal, "child slices differ in length (%d, %d)", len(left), len(right))
	}
	n := len(left) - 1
	if n <= 0 {
		return nil, errors.New(errors.ErrCodeTopology, "tree has no nodes")
	}

	root, err := findRoot(n, left, right)
	if err != nil {
		return nil, err
	}
	if err := checkInvariants(n, left, right); err != nil {
		return nil, err
	}
	return assemble(f, root, left, right), nil
}

func findRoot(n int, left, right []int) (int, error) {
	parents := make([]int, n+1)
	for i := 1; i <= n; i++ {
		for _, c := range [2]int{left[i], right[i]} {
			if c == 0 {
				continue
			}
			if c < 1 || c > n {
				return 0, errors.New(errors.ErrCodeTopology, "node %d references child %d outside 1..%d", i, c, n)
			}
			parents[c]++
			if parents[c] > 1 {
				return 0, errors.New(errors.ErrCodeTopology, "node %d has more than one parent", c)
			}
		}
	}

	root := 0
	for i := 1; i <= n; i++ {
		if parents[i] != 0 {
			continue
		}
		if root != 0 {
			return 0, errors.New(errors.ErrCodeTopology, "nodes %d and %d both have no parent", root, i)
		}
		root = i
	}
	if root == 0 {
		return 0, errors.New(errors.ErrCodeTopology, "every node has a parent")
	}

	seen := make([]bool, n+1)
	stack := []int{root}
	reached := 0
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[u] {
			continue
		}
		seen[u] = true
		reached++
		if left[u] != 0 {
			stack = append(stack, left[u])
		}
		if right[u] != 0 {
			stack = append(stack, right[u])
		}
	}
	if reached != n {
		for i := 1; i <= n; i++ {
			if !seen[i] {
				return 0, errors.New(errors.ErrCodeTopology, "node %d is not reachable from root %d", i, root)
			}
		}
	}
	return root, nil
}

func checkInvariants(n int, left, right []int) error {
	for i := 1; i <= n; i++ {
		l, r := left[i], right[i]
		if r != 0 && l == 0 {
			return errors.New(errors.ErrCodeHeap, "node %d has a right child but no left child", i)
		}
		if l != 0 && i > l {
			return errors.New(errors.ErrCodeHeap, "node %d is larger than its left child %d", i, l)
		}
		if r != 0 && i > r {
			return errors.New(errors.ErrCodeHeap, "node %d is larger than its right child %d", i, r)
		}
	}
	return nil
}

// assemble interns the tree rooted at root in post-order. The description
// must already be a validated tree.
func assemble(f *Forest, root int, left, right []int) *Node {
	built := make([]*Node, len(left))
	type frame struct {
		id       int
		expanded bool
	}
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.expanded {
			top.expanded = true
			id := top.id
			if r := right[id]; r != 0 {
				stack = append(stack, frame{id: r})
			}
			if l := left[id]; l != 0 {
				stack = append(stack, frame{id: l})
			}
			continue
		}
		id := top.id
		stack = stack[:len(stack)-1]
		built[id] = f.Node(id, child(built, left[id]), child(built, right[id]))
	}
	return built[root]
}

func child(built []*Node, id int) *Node {
	if id == 0 {
		return nil
	}
	return built[id]
}

// Describe flattens the tree rooted at root back into 1-indexed child
// slices, the inverse of [Build]. Values must be a permutation of 1..n.
func Describe(root *Node) (left, right []int) {
	n := root.Size()
	left = make([]int, n+1)
	right = make([]int, n+1)
	stack := []*Node{}
	if root != nil {
		stack = append(stack, root)
	}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u.left != nil {
			left[u.value] = u.left.value
			stack = append(stack, u.left)
		}
		if u.right != nil {
			right[u.value] = u.right.value
			stack = append(stack, u.right)
		}
	}
	return left, right
}
