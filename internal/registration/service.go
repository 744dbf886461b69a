package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/internal/notification"
)

// EventLookup resolves the event a registration is taken for.
type EventLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
}

type Service interface {
	List(ctx context.Context, f ListFilter) ([]Registration, error)
	Get(ctx context.Context, id uuid.UUID) (*Registration, error)
	Create(ctx context.Context, req CreateRequest) (*Registration, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*Registration, error)
	SetPaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus string) (*Registration, error)
	Transition(ctx context.Context, id uuid.UUID, op string, confirmed bool) (*Registration, error)
}

type service struct {
	repo      Repository
	events    EventLookup
	publisher notification.Publisher
	now       func() time.Time
}

func NewService(repo Repository, events EventLookup, publisher notification.Publisher) Service {
	if publisher == nil {
		publisher = notification.NopPublisher{}
	}
	return &service{repo: repo, events: events, publisher: publisher, now: time.Now}
}

func (s *service) List(ctx context.Context, f ListFilter) ([]Registration, error) {
	regs, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Registration, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stamps the event's current name and price on the registration.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Registration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, apperrors.NewValidation("eventId", "must be a valid UUID")
	}
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	reg := NewRegistration(req, ev, s.now().UTC())
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	created, err := s.repo.GetByID(ctx, reg.ID)
	if err != nil {
		return nil, err
	}
	log.Info().Str("registration_id", created.ID.String()).Str("event_id", ev.ID.String()).Msg("✅ registration created")
	s.notify(ctx, notification.RegistrationCreated, created, "")
	return created, nil
}

// SetStatus overwrites the status as given. Only the enum is checked.
func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status string) (*Registration, error) {
	st, err := lifecycle.ParseStatus(status)
	if err != nil {
		return nil, apperrors.NewValidation("status", "must be one of [pendente confirmado cancelado]")
	}
	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	return s.reload(ctx, id, "")
}

// SetPaymentStatus overwrites the payment status as given. Only the enum is checked.
func (s *service) SetPaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus string) (*Registration, error) {
	ps, err := lifecycle.ParsePaymentStatus(paymentStatus)
	if err != nil {
		return nil, apperrors.NewValidation("paymentStatus", "must be one of [não pago, pago]")
	}
	if err := s.repo.UpdatePaymentStatus(ctx, id, ps); err != nil {
		return nil, err
	}
	return s.reload(ctx, id, "")
}

// Transition runs op through the lifecycle engine and stores the resulting state.
func (s *service) Transition(ctx context.Context, id uuid.UUID, op string, confirmed bool) (*Registration, error) {
	operation, err := lifecycle.ParseOperation(op)
	if err != nil {
		return nil, err
	}
	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.ApplyConfirmed(reg.State(), operation, confirmed)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateState(ctx, id, next); err != nil {
		return nil, err
	}
	log.Info().Str("registration_id", id.String()).Str("operation", string(operation)).
		Str("from", reg.State().String()).Str("to", next.String()).Msg("🔁 registration transition")
	return s.reload(ctx, id, operation)
}

func (s *service) reload(ctx context.Context, id uuid.UUID, op lifecycle.Operation) (*Registration, error) {
	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, notification.RegistrationUpdated, reg, op)
	return reg, nil
}

func (s *service) notify(ctx context.Context, typ notification.ChangeType, reg *Registration, op lifecycle.Operation) {
	notification.Notify(ctx, s.publisher, notification.Change{
		Type:           typ,
		RegistrationID: reg.ID.String(),
		EventID:        reg.EventID.String(),
		EventName:      reg.EventName,
		FullName:       reg.FullName,
		Status:         string(reg.Status),
		PaymentStatus:  string(reg.PaymentStatus),
		Operation:      string(op),
		At:             s.now().UTC(),
	})
}
