// Package rate provides a pacer that enforces a minimum interval between
// operation starts, with support for temporarily widening the interval when
// the remote endpoint pushes back.
package rate

import (
	"context"
	"sync"
	"time"
)

// Pacer spaces operation starts at least one interval apart. Unlike a token
// bucket it never allows bursts: the guarantee is a lower bound on the gap
// between consecutive starts, which is what polite endpoint probing needs.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time // earliest time the next slot may start
}

// New creates a pacer with the given minimum interval between starts.
// A zero interval disables pacing (every Wait returns immediately).
func New(interval time.Duration) *Pacer {
	if interval < 0 {
		interval = 0
	}
	return &Pacer{interval: interval}
}

// Wait blocks until the next start slot is available or the context is
// canceled. On success the slot is consumed: the following Wait will not
// return before one interval has passed.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	target := p.next
	if target.Before(now) {
		target = now
	}
	p.next = target.Add(p.interval)
	p.mu.Unlock()

	d := time.Until(target)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Postpone pushes the next slot at least d into the future, on top of the
// regular interval. Used for backoff after transient failures: the widened
// gap applies once, subsequent slots return to the normal cadence.
func (p *Pacer) Postpone(d time.Duration) {
	if d <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	candidate := time.Now().Add(d)
	if candidate.After(p.next) {
		p.next = candidate
	}
}

// Interval returns the configured minimum interval.
func (p *Pacer) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// SetInterval changes the minimum interval dynamically.
func (p *Pacer) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = interval
}
