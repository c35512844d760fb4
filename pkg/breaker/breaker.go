package breaker

import (
	"sync"
	"time"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

// Breaker is a circuit breaker guarding the storage backend. Failures
// are counted over a sliding window; once maxFailures is exceeded the
// breaker opens and Allow answers false until timeout has elapsed, at
// which point a single probe request is let through (half-open).
type Breaker struct {
	maxFailures     int
	window          time.Duration
	timeout         time.Duration
	failures        []time.Time
	lastFailureTime time.Time
	state           State
	mu              sync.Mutex
}

func New(maxFailures int, timeout time.Duration) *Breaker {
	return NewWithWindow(maxFailures, timeout, 60*time.Second)
}

func NewWithWindow(maxFailures int, timeout, window time.Duration) *Breaker {
	return &Breaker{
		maxFailures: maxFailures,
		window:      window,
		timeout:     timeout,
		state:       StateClosed,
		failures:    make([]time.Time, 0),
	}
}

// Allow reports whether a request may proceed. When the breaker is open
// and the cooldown has passed, it transitions to half-open and admits
// the caller as a probe.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if time.Since(b.lastFailureTime) >= b.timeout {
			b.state = StateHalfOpen
			b.failures = b.failures[:0]
			return true
		}
		return false
	}
	return true
}

// RecordFailure notes a storage-layer failure. Exceeding maxFailures
// within the window, or failing while half-open, opens the breaker.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.lastFailureTime = now
	b.failures = append(b.failures, now)
	b.cleanOldFailures(now)

	if len(b.failures) > b.maxFailures || b.state == StateHalfOpen {
		b.state = StateOpen
	}
}

// RecordSuccess closes a half-open breaker and ages out old failures.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cleanOldFailures(time.Now())

	if b.state == StateHalfOpen {
		b.state = StateClosed
		b.failures = b.failures[:0]
	}
}

func (b *Breaker) cleanOldFailures(now time.Time) {
	cutoff := now.Add(-b.window)
	valid := b.failures[:0]
	for _, t := range b.failures {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	b.failures = valid
}

func (b *Breaker) GetState() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
