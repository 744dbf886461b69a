// Package lifecycle decides which status and payment changes a registration may go through.
//
// Everything here is pure: callers load a State, ask Apply for the next one and persist it
// themselves.
package lifecycle

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCanceled  Status = "cancelado"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "não pago"
	PaymentPaid   PaymentStatus = "pago"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	}
	return false
}

func (p PaymentStatus) Valid() bool {
	return p == PaymentUnpaid || p == PaymentPaid
}

// ParseStatus returns the Status named by s.
func ParseStatus(s string) (Status, error) {
	if st := Status(s); st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// ParsePaymentStatus returns the PaymentStatus named by s.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	if ps := PaymentStatus(s); ps.Valid() {
		return ps, nil
	}
	return "", fmt.Errorf("invalid payment status %q", s)
}

// State is the part of a registration the engine reasons about.
type State struct {
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// Initial is the state every new registration starts in.
var Initial = State{Status: StatusPending, PaymentStatus: PaymentUnpaid}

func (s State) Paid() bool { return s.PaymentStatus == PaymentPaid }

func (s State) String() string {
	return fmt.Sprintf("%s/%s", s.Status, s.PaymentStatus)
}

type Operation string

const (
	OpMarkPaid   Operation = "markPaid"
	OpUnmarkPaid Operation = "unmarkPaid"
	OpConfirm    Operation = "confirm"
	OpCancel     Operation = "cancel"
	OpRestore    Operation = "restore"
)

// Operations lists every operation in the order a dashboard presents them.
var Operations = []Operation{OpMarkPaid, OpUnmarkPaid, OpConfirm, OpCancel, OpRestore}

var (
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrUnknownOperation     = errors.New("unknown operation")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// TransitionError is returned when an operation's precondition does not hold.
type TransitionError struct {
	From State
	Op   Operation
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a registration that is %s", e.Op, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// ParseOperation accepts the operation names used on the wire.
func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Allowed reports whether op's precondition holds in s.
func Allowed(s State, op Operation) bool {
	switch op {
	case OpMarkPaid:
		return s.Status == StatusPending && s.PaymentStatus == PaymentUnpaid
	case OpUnmarkPaid, OpConfirm:
		return s.Status == StatusPending && s.PaymentStatus == PaymentPaid
	case OpCancel:
		return s.Status == StatusPending || s.Status == StatusConfirmed
	case OpRestore:
		return s.Status == StatusCanceled
	}
	return false
}

// Apply returns the state after op. On a failed precondition s is returned unchanged
// together with a *TransitionError.
func Apply(s State, op Operation) (State, error) {
	if _, err := ParseOperation(string(op)); err != nil {
		return s, err
	}
	if !Allowed(s, op) {
		return s, &TransitionError{From: s, Op: op}
	}

	next := s
	switch op {
	case OpMarkPaid:
		next.PaymentStatus = PaymentPaid
	case OpUnmarkPaid:
		next.PaymentStatus = PaymentUnpaid
	case OpConfirm:
		next.Status = StatusConfirmed
	case OpCancel:
		// canceling a paid registration refunds it
		next.Status = StatusCanceled
		next.PaymentStatus = PaymentUnpaid
	case OpRestore:
		next.Status = StatusPending
	}
	return next, nil
}

// ApplyConfirmed is Apply guarded by the confirmation rule: operations that need an explicit
// yes fail with ErrConfirmationRequired unless confirmed is set.
func ApplyConfirmed(s State, op Operation, confirmed bool) (State, error) {
	next, err := Apply(s, op)
	if err != nil {
		return s, err
	}
	if RequiredConfirmation(s, op) != ConfirmNone && !confirmed {
		return s, fmt.Errorf("%w: %s", ErrConfirmationRequired, RequiredConfirmation(s, op).Prompt())
	}
	return next, nil
}

// Available lists the operations whose precondition holds in s.
func Available(s State) []Operation {
	ops := make([]Operation, 0, 2)
	for _, op := range Operations {
		if Allowed(s, op) {
			ops = append(ops, op)
		}
	}
	return ops
}
