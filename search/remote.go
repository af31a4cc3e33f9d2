// Package search implements the two ways rows can be narrowed down:
// a debounced remote search and a synchronous local filter.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/log"
)

// DefaultDebounce is how long input must stay idle before a remote search is sent.
const DefaultDebounce = 300 * time.Millisecond

// Func performs one remote search.
type Func func(ctx context.Context, query string) ([]catalog.Item, error)

// Result is delivered once per settled query.
type Result struct {
	Seq   uint64
	Query string
	Items []catalog.Item
	Err   error
}

// Remote debounces queries and guarantees that only the latest one is delivered.
//
// Every call to Query takes a new sequence number, stops the pending timer
// and cancels the request in flight. A response is delivered only if its
// sequence number is still the latest when it arrives.
type Remote struct {
	fn     Func
	window time.Duration

	mu      sync.Mutex
	seq     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
	closed  bool
	results chan Result
}

// NewRemote returns a debouncer calling fn. A non-positive window means DefaultDebounce.
func NewRemote(fn Func, window time.Duration) *Remote {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Remote{
		fn:      fn,
		window:  window,
		results: make(chan Result, 1),
	}
}

// Results delivers settled queries. Only the newest undelivered result is kept.
func (r *Remote) Results() <-chan Result {
	return r.results
}

// Query schedules a search for q and returns its sequence number.
// A blank query clears immediately without calling fn.
func (r *Remote) Query(q string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return r.seq
	}

	r.seq++
	seq := r.seq
	r.stopLocked()

	if strings.TrimSpace(q) == "" {
		r.deliverLocked(Result{Seq: seq, Query: q})
		return seq
	}

	r.timer = time.AfterFunc(r.window, func() {
		r.fire(seq, q)
	})
	return seq
}

// Latest reports whether seq is the most recently issued query.
func (r *Remote) Latest(seq uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.closed && seq == r.seq
}

// Close cancels the pending timer and any request in flight.
// Nothing is delivered afterwards.
func (r *Remote) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.stopLocked()
}

func (r *Remote) fire(seq uint64, q string) {
	r.mu.Lock()
	if r.closed || seq != r.seq {
		r.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.mu.Unlock()

	items, err := r.fn(ctx, q)
	cancel()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || seq != r.seq {
		log.Debugf("search: dropped stale result for %q", q)
		return
	}

	r.cancel = nil
	r.deliverLocked(Result{Seq: seq, Query: q, Items: items, Err: err})
}

func (r *Remote) stopLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// deliverLocked replaces any undelivered result with res.
func (r *Remote) deliverLocked(res Result) {
	select {
	case <-r.results:
	default:
	}
	r.results <- res
}
