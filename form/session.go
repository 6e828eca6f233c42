package form

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/smartscrape"
	"golang.org/x/sync/semaphore"
)

// Ensure Session implements Indicator at compile time.
var _ Indicator = (*Session)(nil)

// Session is one user's transient interaction with the form.
// It permits a single in-flight submission at a time; that submission can
// be canceled from another goroutine. Session is safe for concurrent use.
type Session struct {
	id         string
	controller *Controller
	slot       *semaphore.Weighted
	busy       atomic.Bool

	mu       sync.Mutex
	cancel   context.CancelFunc
	inputs   smartscrape.Inputs
	outcome  *Outcome
	lastSeen time.Time
}

// NewSession creates a new Session with default inputs.
func NewSession(id string, controller *Controller) *Session {
	return &Session{
		id:         id,
		controller: controller,
		slot:       semaphore.NewWeighted(1),
		inputs:     smartscrape.DefaultInputs(),
		lastSeen:   time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Submit runs one submission through the controller.
// If another submission is still running, Submit returns a rejected outcome
// with code ECONFLICT and the controller is not called.
func (s *Session) Submit(ctx context.Context, in smartscrape.Inputs) *Outcome {
	if !s.slot.TryAcquire(1) {
		return &Outcome{
			State:   StateRejected,
			Code:    smartscrape.ECONFLICT,
			Message: BusyMessage,
		}
	}
	defer s.slot.Release(1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.cancel = cancel
	s.inputs = in.Redacted()
	s.lastSeen = time.Now()
	s.mu.Unlock()

	out := s.controller.Submit(ctx, in, s)

	s.mu.Lock()
	s.cancel = nil
	s.outcome = out
	s.lastSeen = time.Now()
	s.mu.Unlock()

	return out
}

// Cancel stops the in-flight submission, if any.
// Returns true if a submission was running.
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return false
	}
	s.cancel()
	return true
}

// Start marks the session busy. It is called by the controller.
func (s *Session) Start() {
	s.busy.Store(true)
}

// Stop clears the busy mark. It is called by the controller.
func (s *Session) Stop() {
	s.busy.Store(false)
}

// Busy reports whether an extraction is running right now.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Inputs returns the last submitted inputs without the credential,
// or the defaults if nothing has been submitted.
func (s *Session) Inputs() smartscrape.Inputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs
}

// Outcome returns the outcome of the last completed submission.
// Returns nil if no submission has completed.
func (s *Session) Outcome() *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Touch records activity on the session.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// LastSeen returns the time of the most recent activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
