package skew

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/skewrev/pkg/errors"
	"github.com/matzehuels/skewrev/pkg/observability"
)

// Result holds the two extreme insertion sequences for a tree.
type Result struct {
	Min []int // lexicographically smallest insertion sequence
	Max []int // lexicographically largest insertion sequence

	Stats Stats
}

// Stats describes the work done by one query.
type Stats struct {
	Nodes    int           // nodes in the input tree
	Interned int           // distinct subtrees created, input included
	Memo     int           // memo entries across both directions
	Duration time.Duration // wall time of Solve
}

// removal is a persistent list of removed values. Memo entries share tails.
type removal struct {
	value int
	next  *removal
}

type memoEntry struct {
	seq *removal
	ok  bool
}

// Solver searches for extreme removal sequences over trees of one Forest.
//
// A Solver belongs to a single query: its memo tables are keyed by digests,
// which are only meaningful within the Forest that issued them. Create a new
// Forest and Solver for every query. A Solver is not safe for concurrent use.
type Solver struct {
	Logger *log.Logger

	forest *Forest
	memo   [2]map[Digest]memoEntry
	hooks  observability.SolverHooks
	ctx    context.Context
}

// NewSolver returns a Solver over trees interned in f.
// If logger is nil, log.Default() is used.
func NewSolver(f *Forest, logger *log.Logger) *Solver {
	if logger == nil {
		logger = log.Default()
	}
	return &Solver{
		Logger: logger,
		forest: f,
		memo:   [2]map[Digest]memoEntry{make(map[Digest]memoEntry), make(map[Digest]memoEntry)},
		hooks:  observability.Solver(),
		ctx:    context.Background(),
	}
}

// ExtremeRemoval returns the lexicographically extreme sequence of values
// obtained by undoing insertions one at a time until n is empty: the largest
// sequence for Descending, the smallest for Ascending. The boolean is false
// if no sequence of undos empties n.
//
// Candidates from [Forest.Undo] arrive already sorted, and a sequence's rank
// is decided by its first element, so the first candidate whose remainder can
// be emptied gives the extreme sequence.
func (s *Solver) ExtremeRemoval(n *Node, order Order) ([]int, bool) {
	seq, ok := s.extreme(n, order)
	if !ok {
		return nil, false
	}
	out := make([]int, 0, n.Size())
	for r := seq; r != nil; r = r.next {
		out = append(out, r.value)
	}
	return out, true
}

func (s *Solver) extreme(n *Node, order Order) (*removal, bool) {
	if n == nil {
		return nil, true
	}
	memo := s.memo[order]
	if e, ok := memo[n.digest]; ok {
		s.hooks.OnMemoHit(s.ctx, order.String())
		return e.seq, e.ok
	}
	s.hooks.OnMemoMiss(s.ctx, order.String())

	if !n.localOK() {
		memo[n.digest] = memoEntry{}
		return nil, false
	}
	for v, prev := range s.forest.Undo(n, order) {
		if rest, ok := s.extreme(prev, order); ok {
			e := memoEntry{seq: &removal{value: v, next: rest}, ok: true}
			memo[n.digest] = e
			return e.seq, true
		}
	}
	memo[n.digest] = memoEntry{}
	return nil, false
}

// Solve computes both extreme insertion sequences for the tree rooted at root.
//
// The largest removal sequence reversed is the smallest insertion sequence,
// and the smallest removal sequence reversed is the largest insertion
// sequence. If either search fails, Solve returns an
// [errors.ErrCodeInfeasible] error and no partial result.
func (s *Solver) Solve(ctx context.Context, root *Node) (*Result, error) {
	s.ctx = ctx
	defer func() { s.ctx = context.Background() }()

	start := time.Now()
	nodes := root.Size()
	s.hooks.OnSolveStart(ctx, nodes)

	res, err := s.solve(root)
	elapsed := time.Since(start)
	s.hooks.OnSolveComplete(ctx, nodes, elapsed, err)
	if err != nil {
		s.Logger.Debug("search failed", "nodes", nodes, "memo", s.memoSize(), "duration", elapsed, "err", err)
		return nil, err
	}

	res.Stats = Stats{
		Nodes:    nodes,
		Interned: s.forest.Len(),
		Memo:     s.memoSize(),
		Duration: elapsed,
	}
	s.Logger.Debug("search complete",
		"nodes", nodes,
		"interned", res.Stats.Interned,
		"memo", res.Stats.Memo,
		"duration", elapsed)
	return res, nil
}

func (s *Solver) solve(root *Node) (*Result, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeTopology, "tree has no nodes")
	}
	desc, ok := s.ExtremeRemoval(root, Descending)
	if !ok {
		return nil, errors.New(errors.ErrCodeInfeasible, "no insertion sequence produces this tree (descending search)")
	}
	asc, ok := s.ExtremeRemoval(root, Ascending)
	if !ok {
		return nil, errors.New(errors.ErrCodeInfeasible, "no insertion sequence produces this tree (ascending search)")
	}
	slices.Reverse(desc)
	slices.Reverse(asc)
	return &Result{Min: desc, Max: asc}, nil
}

func (s *Solver) memoSize() int {
	return len(s.memo[Descending]) + len(s.memo[Ascending])
}

// Reconstruct validates a 1-indexed child description (see [Build]) and
// returns its extreme insertion sequences. Each call uses its own Forest and
// Solver, so nothing is shared between calls.
func Reconstruct(ctx context.Context, left, right []int, logger *log.Logger) (*Result, error) {
	f := NewForest()
	root, err := Build(f, left, right)
	if err != nil {
		return nil, err
	}
	return NewSolver(f, logger).Solve(ctx, root)
}
