package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Group runs a batch of functions on the worker pool and waits for all of them. A panic inside one of the
// functions is reported to sentry and raised again on the goroutine calling Wait, so the worker itself survives.
type Group struct {
	wg sync.WaitGroup

	mu        sync.Mutex
	recovered any
}

// Go runs f on the worker pool.
func (g *Group) Go(f func()) {
	g.wg.Add(1)
	Submit(func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Recover(r)

				g.mu.Lock()
				if g.recovered == nil {
					g.recovered = r
				}
				g.mu.Unlock()
			}
		}()
		f()
	})
}

// Wait blocks until every function passed to Go returned. If any of them panicked, Wait panics with the first
// recovered value.
func (g *Group) Wait() {
	g.wg.Wait()

	g.mu.Lock()
	r := g.recovered
	g.recovered = nil
	g.mu.Unlock()
	if r != nil {
		panic(r)
	}
}
