// Package executor provides fire-and-forget task dispatch. Submitted tasks have
// no result channel, cannot be cancelled, and are not ordered relative to the
// submitting goroutine.
package executor

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Executor runs submitted tasks at some point after Submit is called.
type Executor interface {
	Submit(task func())
}

// Sync runs every task inline on the calling goroutine. Use it where
// deterministic completion is needed, such as tests.
type Sync struct{}

// Submit runs task immediately.
func (Sync) Submit(task func()) { task() }

// Async runs each task on its own goroutine. A panicking task is recovered and
// logged; it does not take the process down.
type Async struct {
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewAsync returns an Async executor.
//
// Postcondition: Returns a non-nil executor; a nil logger discards panic reports.
func NewAsync(logger *zap.Logger) *Async {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Async{logger: logger.Named("executor")}
}

// Submit starts task on a new goroutine and returns immediately.
func (a *Async) Submit(task func()) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				a.logger.Error("async task panicked",
					zap.String("panic", fmt.Sprint(r)),
					zap.Duration("elapsed", time.Since(start)),
				)
			}
		}()
		task()
	}()
}

// Wait blocks until every task submitted so far has returned. It is meant for
// shutdown; normal callers must not rely on task completion.
func (a *Async) Wait() {
	a.wg.Wait()
}
