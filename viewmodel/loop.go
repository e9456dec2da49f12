// Package viewmodel implements the observable state layer between screens
// and the API client.
//
// Every view-model owns a set of displayed fields plus the loading/error
// pair, and one blocking method per CRUD operation. Methods perform the
// HTTP round trip on the calling goroutine and publish results as tasks on
// the UI loop, so all observable state is only ever mutated by the single
// loop goroutine. A Scope ties in-flight work to the lifetime of a screen:
// closing the scope cancels outstanding requests and drops their late
// completions instead of mutating a dismissed screen's state.
package viewmodel

import (
	"context"
	"sync/atomic"
)

// Loop is the single UI run loop. It owns all view-model state; tasks are
// executed one at a time in submission order.
type Loop struct {
	tasks chan func()
	quit  chan struct{}
	done  chan struct{}
}

// NewLoop starts a new run loop.
func NewLoop() *Loop {
	l := &Loop{
		tasks: make(chan func(), 64),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)

	for {
		select {
		case task := <-l.tasks:
			task()
		case <-l.quit:
			// Drain whatever is already queued so no completion is lost
			// between the stop signal and shutdown.
			for {
				select {
				case task := <-l.tasks:
					task()
				default:
					return
				}
			}
		}
	}
}

// Dispatch queues a task on the loop and returns immediately.
func (l *Loop) Dispatch(task func()) {
	select {
	case l.tasks <- task:
	case <-l.quit:
	}
}

// Perform queues a task on the loop and waits for it to finish. It must
// not be called from a task already running on the loop.
func (l *Loop) Perform(task func()) {
	ran := make(chan struct{})
	l.Dispatch(func() {
		task()
		close(ran)
	})

	select {
	case <-ran:
	case <-l.done:
	}
}

// Stop shuts the loop down after draining queued tasks.
func (l *Loop) Stop() {
	close(l.quit)
	<-l.done
}

// Scope ties view-model work to the lifetime of a screen. All requests
// started through the scope use its context; closing the scope cancels
// them and suppresses their state mutations.
type Scope struct {
	loop   *Loop
	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool
}

// NewScope returns a scope for a newly presented screen.
func (l *Loop) NewScope() *Scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scope{loop: l, ctx: ctx, cancel: cancel}
}

// Context returns the context in-flight requests of this scope run under.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Close cancels in-flight work for the screen. Completions that were still
// queued are dropped when they run.
func (s *Scope) Close() {
	s.closed.Store(true)
	s.cancel()
}

// perform runs a state mutation on the loop and waits for it, unless the
// scope has been closed. Reports whether the task ran. The closed check
// happens at execution time, so a completion queued before Close and
// executed after it is still dropped.
func (s *Scope) perform(task func()) bool {
	applied := false
	s.loop.Perform(func() {
		if s.closed.Load() {
			return
		}
		task()
		applied = true
	})

	return applied
}
