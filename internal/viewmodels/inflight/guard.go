// Package inflight serialises a view-model operation so at most one call is
// outstanding at a time.
package inflight

import "sync"

// Guard tracks a single in-flight operation. The zero value is idle.
type Guard struct {
	mu   sync.Mutex
	done chan struct{}
}

// Begin starts an operation. If one is already running it returns that
// operation's channel and false; the caller must not start new work.
func (g *Guard) Begin() (<-chan struct{}, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.done != nil {
		return g.done, false
	}
	g.done = make(chan struct{})
	return g.done, true
}

// End marks the running operation finished and wakes its waiters.
func (g *Guard) End() {
	g.mu.Lock()
	ch := g.done
	g.done = nil
	g.mu.Unlock()

	if ch != nil {
		close(ch)
	}
}

// Busy reports whether an operation is in flight.
func (g *Guard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.done != nil
}
