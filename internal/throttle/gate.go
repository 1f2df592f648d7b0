// Package throttle provides the rate-limiting gate that sits in front
// of every shared-state setter in the widget: the query text, the
// measured width, and the ghost suggestion each commit through their
// own Gate so fast typing cannot re-render faster than once per window.
package throttle

import "time"

// Gate is a leading+trailing throttle. The first value offered while
// the window is open passes through immediately; values offered inside
// the window replace each other, and only the most recent one is
// delivered when the window elapses. Intermediate values are dropped,
// never queued.
//
// The gate is a pure state machine driven by explicit timestamps. The
// caller owns the timer: when Offer arms the trailing edge, schedule a
// Flush after Delay and hand it the sequence number from Seq. A flush
// carrying a stale sequence number is ignored, which is how superseded
// timers die without cancellation.
//
// A Gate is not safe for concurrent use; the widget drives all of its
// gates from the single UI event loop.
type Gate[T any] struct {
	interval time.Duration
	last     time.Time
	pending  T
	waiting  bool
	seq      uint64
}

// New returns a gate enforcing at most one delivery per interval.
func New[T any](interval time.Duration) *Gate[T] {
	return &Gate[T]{interval: interval}
}

// Interval reports the gate's minimum time between deliveries.
func (g *Gate[T]) Interval() time.Duration {
	return g.interval
}

// Offer presents v to the gate at time now.
//
// deliver reports that v passed straight through (leading edge); the
// caller must commit it. arm reports that the trailing edge was just
// armed; the caller must schedule Flush(Seq(), ...) after Delay(now).
// When both are false the offer only replaced the pending value of an
// already-armed trailing edge.
func (g *Gate[T]) Offer(v T, now time.Time) (deliver, arm bool) {
	if now.Sub(g.last) >= g.interval {
		// Window open: deliver immediately. Any armed trailing value is
		// superseded; its timer will arrive with a stale sequence number.
		g.last = now
		g.waiting = false
		g.seq++
		return true, false
	}

	g.pending = v
	if g.waiting {
		return false, false
	}
	g.waiting = true
	g.seq++
	return false, true
}

// Flush delivers the pending trailing value. It returns ok=false when
// the sequence number is stale or nothing is pending.
func (g *Gate[T]) Flush(seq uint64, now time.Time) (v T, ok bool) {
	if !g.waiting || seq != g.seq {
		var zero T
		return zero, false
	}
	g.waiting = false
	g.last = now
	return g.pending, true
}

// Delay returns how long the caller should wait before flushing the
// trailing edge.
func (g *Gate[T]) Delay(now time.Time) time.Duration {
	d := g.interval - now.Sub(g.last)
	if d < 0 {
		d = 0
	}
	return d
}

// Seq returns the correlation number for the most recent arm/delivery.
func (g *Gate[T]) Seq() uint64 {
	return g.seq
}
