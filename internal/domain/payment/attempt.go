// Package payment models a single checkout attempt as an explicit state
// machine. The only legal entries into the processing state are
// idle -> processing (first submit) and failed -> processing (retry); a
// caller holding an attempt in processing must wait for the upstream result
// before anything else can happen to it.
package payment

import (
	"errors"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	ErrAlreadyProcessing = errors.New("payment attempt is already processing")
	ErrNotIdle           = errors.New("payment attempt has already been submitted")
	ErrNotFailed         = errors.New("payment attempt is not in a failed state")
	ErrNotProcessing     = errors.New("payment attempt is not processing")
	ErrNotTerminal       = errors.New("payment attempt is not in a terminal state")
)

// Attempt is the live payment attempt of one checkout session.
type Attempt struct {
	id       uuid.UUID
	state    State
	orderRef string
	failure  string
}

func NewAttempt() *Attempt {
	return &Attempt{
		id:    uuid.New(),
		state: StateIdle,
	}
}

func (a *Attempt) ID() uuid.UUID    { return a.id }
func (a *Attempt) State() State     { return a.state }
func (a *Attempt) OrderRef() string { return a.orderRef }

// Failure is the user-facing message captured when the attempt failed.
func (a *Attempt) Failure() string { return a.failure }

// Begin moves idle -> processing. It is the entry transition of submit().
func (a *Attempt) Begin() error {
	switch a.state {
	case StateIdle:
		a.state = StateProcessing
		return nil
	case StateProcessing:
		return ErrAlreadyProcessing
	default:
		return ErrNotIdle
	}
}

// Retry moves failed -> processing, clearing the captured failure. The
// caller re-sends the identical payload; the machine never mutates it.
func (a *Attempt) Retry() error {
	switch a.state {
	case StateFailed:
		a.state = StateProcessing
		a.failure = ""
		return nil
	case StateProcessing:
		return ErrAlreadyProcessing
	default:
		return ErrNotFailed
	}
}

// Succeed moves processing -> succeeded, recording the upstream order
// reference. Succeeded is terminal apart from Dismiss.
func (a *Attempt) Succeed(orderRef string) error {
	if a.state != StateProcessing {
		return ErrNotProcessing
	}
	a.state = StateSucceeded
	a.orderRef = orderRef
	return nil
}

// Fail moves processing -> failed, capturing the user-facing message.
func (a *Attempt) Fail(message string) error {
	if a.state != StateProcessing {
		return ErrNotProcessing
	}
	a.state = StateFailed
	a.failure = message
	return nil
}

// Dismiss closes the status display from either terminal state and reports
// whether the caller should navigate away (only after success).
func (a *Attempt) Dismiss() (navigate bool, err error) {
	switch a.state {
	case StateSucceeded:
		a.state = StateIdle
		return true, nil
	case StateFailed:
		a.state = StateIdle
		return false, nil
	default:
		return false, ErrNotTerminal
	}
}
