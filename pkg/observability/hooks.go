// Package observability provides hooks for metrics, tracing, and logging.
//
// The solver calls these hooks at well-defined points so that callers can
// count queries, time them, or measure memo effectiveness without the solver
// depending on any particular metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    observability.SetInputHooks(&myInputHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solver().OnSolveStart(ctx, nodes)
//	// ... search ...
//	observability.Solver().OnSolveComplete(ctx, nodes, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from the insertion-order reconstruction.
type SolverHooks interface {
	// Query events
	OnSolveStart(ctx context.Context, nodes int)
	OnSolveComplete(ctx context.Context, nodes int, duration time.Duration, err error)

	// Memo events, reported per search direction ("asc" or "desc")
	OnMemoHit(ctx context.Context, order string)
	OnMemoMiss(ctx context.Context, order string)
}

// =============================================================================
// Input Hooks
// =============================================================================

// InputHooks receives events from input parsing and validation.
type InputHooks interface {
	// OnParsed records a successfully parsed description.
	OnParsed(ctx context.Context, nodes int)

	// OnRejected records an input rejected before the search, with its error code.
	OnRejected(ctx context.Context, code string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(context.Context, int)                           {}
func (NoopSolverHooks) OnSolveComplete(context.Context, int, time.Duration, error) {}
func (NoopSolverHooks) OnMemoHit(context.Context, string)                          {}
func (NoopSolverHooks) OnMemoMiss(context.Context, string)                         {}

// NoopInputHooks is a no-op implementation of InputHooks.
type NoopInputHooks struct{}

func (NoopInputHooks) OnParsed(context.Context, int)      {}
func (NoopInputHooks) OnRejected(context.Context, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solverHooks SolverHooks = NoopSolverHooks{}
	inputHooks  InputHooks  = NoopInputHooks{}
	hooksMu     sync.RWMutex
)

// SetSolverHooks registers custom solver hooks.
// This should be called once at application startup before any query runs.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// SetInputHooks registers custom input hooks.
func SetInputHooks(h InputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		inputHooks = h
	}
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Input returns the registered input hooks.
func Input() InputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return inputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solverHooks = NoopSolverHooks{}
	inputHooks = NoopInputHooks{}
}
