// Package skew reconstructs skew-heap insertion orders from a final tree.
//
// # Overview
//
// Inserting the values 1..n into an empty skew heap in some order produces a
// binary tree in which every node is smaller than its children and no node
// has a right child without a left child. Given only that final tree, this
// package decides whether any insertion order produces it, and if so finds
// the lexicographically smallest and largest such orders.
//
// # Undoing an Insertion
//
// Skew-heap insertion walks down from the root, swapping children at every
// node it passes. Reversing one insertion therefore has two shapes: either
// the inserted value became the root of a subtree (terminal case), or it went
// deeper into what is now the left subtree and the node above swapped its
// children (propagated case). [Forest.Undo] enumerates both, sorted by the
// value being removed.
//
// # Searching
//
// A full removal sequence undoes insertions until the tree is empty; read
// backwards it is an insertion order. [Solver.ExtremeRemoval] takes the first
// candidate, in sorted order, whose remainder can still be emptied. Because
// a sequence's rank is fixed by its first element, that greedy choice is
// optimal.
//
// The same subtree shape is reached along many undo paths, so results are
// memoized by [Digest]. A [Forest] hash-conses nodes: structurally equal
// subtrees share one *Node, and digests compare exactly with no collisions.
//
// # Basic Usage
//
//	f := skew.NewForest()
//	root, err := skew.Build(f, left, right)
//	if err != nil {
//	    return err
//	}
//	res, err := skew.NewSolver(f, logger).Solve(ctx, root)
//	// res.Min, res.Max
//
// Or in one call:
//
//	res, err := skew.Reconstruct(ctx, left, right, logger)
package skew
