package auth

import (
	"context"
	"runtime"

	"gatekeeper/internal/errors"

	"golang.org/x/sync/semaphore"
)

// hashPool bounds how many slow hash computations run at once, so a burst of
// logins cannot occupy every CPU the request handlers need.
type hashPool struct {
	sem *semaphore.Weighted
}

func newHashPool(size int) *hashPool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	return &hashPool{sem: semaphore.NewWeighted(int64(size))}
}

// run executes fn once a slot is free. It returns the context error when ctx ends first.
func (p *hashPool) run(ctx context.Context, fn func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "waiting for hash slot")
	}
	defer p.sem.Release(1)

	fn()

	return nil
}
