package asyncimage

import (
	"context"
	"sync"
)

// taskLifecycle binds one cancellable asynchronous operation to an
// activation/deactivation pair: Activate acquires the operation, Deactivate
// cancels and releases it. At most one operation is alive at a time.
//
// Completion delivery is generation-checked: a result computed before
// cancellation was observed is still suppressed once Deactivate has run.
type taskLifecycle struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// Activate starts run in its own goroutine unless an operation is already
// active. run receives a context cancelled by Deactivate and the generation
// token to present on delivery.
func (tl *taskLifecycle) Activate(run func(ctx context.Context, gen uint64)) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if tl.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	tl.cancel = cancel
	tl.gen++

	go run(ctx, tl.gen)
}

// Deactivate cancels the active operation and clears the retained handle.
// Safe to call repeatedly.
func (tl *taskLifecycle) Deactivate() {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if tl.cancel == nil {
		return
	}

	tl.cancel()
	tl.cancel = nil
}

// Live reports whether a result produced under gen may still be applied:
// the operation handle must still be retained and no newer activation may
// have superseded it.
func (tl *taskLifecycle) Live(gen uint64) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.cancel != nil && tl.gen == gen
}

// Active reports whether an operation handle is currently retained
func (tl *taskLifecycle) Active() bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.cancel != nil
}
