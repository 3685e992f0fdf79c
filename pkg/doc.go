// Package pkg holds the public libraries behind skewrev, a tool that recovers
// the insertion orders of a skew heap from its final shape.
//
// # Overview
//
//  1. [skew] - trees, forward insertion, one-step undo and the extreme-order search
//  2. [io] - the batch text format, JSON descriptions and result output
//  3. [errors] - coded errors shared by every layer
//  4. [observability] - hooks for counting queries and memo effectiveness
//  5. [buildinfo] - version information set at link time
//
// # Data flow
//
//	n + child pairs (stdin, file or JSON)
//	         ↓
//	    [io] package (tokenize, Description)
//	         ↓
//	    [skew.Build] (topology and heap checks, interned Forest)
//	         ↓
//	    [skew.Solver] (memoized greedy undo, both directions)
//	         ↓
//	    [io.WriteResult] (two sequences or "impossible")
//
// # Quick Start
//
//	res, err := skew.Reconstruct(ctx, d.Left, d.Right, logger)
//	if err != nil {
//	    return io.WriteResult(os.Stdout, nil, nil, err)
//	}
//	return io.WriteResult(os.Stdout, res.Min, res.Max, nil)
package pkg
