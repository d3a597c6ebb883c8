package gateway

import (
	"net/http"
	"sync"
	"time"

	"github.com/shareit-go/shareit/internal/pkg/apperror"
)

// ErrBreakerOpen is returned while the backend is considered down.
var ErrBreakerOpen = apperror.New(http.StatusServiceUnavailable, "shareit server is unavailable")

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

// Breaker is a failure-window circuit breaker guarding calls to the
// backend server. After maxFailures transport errors within the window
// it opens for timeout, then allows a single probe call.
type Breaker struct {
	maxFailures int
	window      time.Duration
	timeout     time.Duration

	mu          sync.Mutex
	state       breakerState
	probing     bool
	failures    []time.Time
	lastFailure time.Time
}

func NewBreaker(maxFailures int, timeout, window time.Duration) *Breaker {
	return &Breaker{
		maxFailures: maxFailures,
		window:      window,
		timeout:     timeout,
		state:       stateClosed,
	}
}

// Execute runs fn unless the breaker is open. Only transport errors
// count as failures; any HTTP response from the backend is a success.
func (b *Breaker) Execute(fn func() error) error {
	b.mu.Lock()
	if b.state == stateOpen {
		if time.Since(b.lastFailure) < b.timeout {
			b.mu.Unlock()
			return ErrBreakerOpen
		}
		b.state = stateHalfOpen
		b.failures = b.failures[:0]
	}
	// Only one probe may be in flight while half-open.
	if b.state == stateHalfOpen {
		if b.probing {
			b.mu.Unlock()
			return ErrBreakerOpen
		}
		b.probing = true
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		if b.state == stateHalfOpen {
			b.state = stateClosed
			b.probing = false
		}
		return nil
	}

	now := time.Now()
	b.lastFailure = now
	b.failures = append(b.failures, now)
	b.trimWindow(now)

	if b.state == stateHalfOpen {
		b.state = stateOpen
		b.probing = false
	} else if len(b.failures) >= b.maxFailures {
		b.state = stateOpen
	}
	return err
}

func (b *Breaker) trimWindow(now time.Time) {
	cutoff := now.Add(-b.window)
	kept := b.failures[:0]
	for _, t := range b.failures {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	b.failures = kept
}
