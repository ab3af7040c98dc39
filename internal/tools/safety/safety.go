package safety

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Limits bounds a recursive walk over untrusted input.
type Limits struct {
	MaxDepth int
	MaxNodes int32
	Timeout  time.Duration
}

// DefaultLimits fits any real-world API description.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth: 512,
		MaxNodes: 2_000_000,
		Timeout:  30 * time.Second,
	}
}

// RecursionGuard enforces Limits on one walk at a time.
type RecursionGuard struct {
	limits    Limits
	nodeCount int32
}

func NewRecursionGuard(limits Limits) *RecursionGuard {
	return &RecursionGuard{limits: limits}
}

// WithContext starts a new walk: it resets the node counter and derives a
// context that expires after the configured timeout.
func (rg *RecursionGuard) WithContext(parent context.Context) (context.Context, context.CancelFunc) {
	atomic.StoreInt32(&rg.nodeCount, 0)
	if parent == nil {
		parent = context.Background()
	}
	if rg.limits.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, rg.limits.Timeout)
}

// Check is called once per visited node at the given depth.
func (rg *RecursionGuard) Check(ctx context.Context, depth int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if depth > rg.limits.MaxDepth {
		return fmt.Errorf("%w (%d)", ErrMaxDepth, rg.limits.MaxDepth)
	}

	if atomic.AddInt32(&rg.nodeCount, 1) > rg.limits.MaxNodes {
		return fmt.Errorf("%w (%d)", ErrMaxNodes, rg.limits.MaxNodes)
	}

	return nil
}

// Visited returns how many nodes the current walk has checked.
func (rg *RecursionGuard) Visited() int32 {
	return atomic.LoadInt32(&rg.nodeCount)
}

var (
	ErrMaxDepth = fmt.Errorf("maximum nesting depth exceeded")
	ErrMaxNodes = fmt.Errorf("maximum number of nodes exceeded")
)
