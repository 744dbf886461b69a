package apiclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/internal/registration"
)

// ErrDeclined is returned when the operator answers no to a confirmation prompt.
var ErrDeclined = errors.New("operation declined")

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, c lifecycle.Confirmation) (bool, error)
}

type ConfirmFunc func(ctx context.Context, c lifecycle.Confirmation) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, c lifecycle.Confirmation) (bool, error) {
	return f(ctx, c)
}

// AlwaysConfirm answers yes to every prompt.
var AlwaysConfirm = ConfirmFunc(func(context.Context, lifecycle.Confirmation) (bool, error) { return true, nil })

// Actions runs dashboard operations the way the admin UI does: the lifecycle rules are
// checked locally, the operator confirms when needed, and only the fields that changed are
// written through the raw status and payment endpoints.
type Actions struct {
	Client  *Client
	Confirm Confirmer
}

func NewActions(c *Client, confirm Confirmer) *Actions {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	return &Actions{Client: c, Confirm: confirm}
}

// Perform applies op to reg. An invalid transition fails before any request is sent.
func (a *Actions) Perform(ctx context.Context, reg *registration.Registration, op lifecycle.Operation) (*registration.Registration, error) {
	from := reg.State()
	to, err := lifecycle.Apply(from, op)
	if err != nil {
		return nil, err
	}

	if kind := lifecycle.RequiredConfirmation(from, op); kind != lifecycle.ConfirmNone {
		ok, err := a.Confirm.Confirm(ctx, kind)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDeclined
		}
	}

	updated := reg
	if to.Status != from.Status {
		if updated, err = a.Client.UpdateStatus(ctx, reg.ID, string(to.Status)); err != nil {
			return nil, fmt.Errorf("%s: update status: %w", op, err)
		}
	}
	if to.PaymentStatus != from.PaymentStatus {
		if updated, err = a.Client.UpdatePayment(ctx, reg.ID, string(to.PaymentStatus)); err != nil {
			return nil, fmt.Errorf("%s: update payment: %w", op, err)
		}
	}
	return updated, nil
}
