package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
)

// Service wraps business logic for events
type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

func (s *Service) ListEvents(ctx context.Context) ([]Event, error) {
	events, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *Service) GetEvent(ctx context.Context, id uuid.UUID) (*Event, error) {
	return s.Repo.GetByID(ctx, id)
}

// ===========================
// 🎯 Create Event
func (s *Service) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	e, err := req.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	log.Info().Str("event_id", e.ID.String()).Str("name", e.Name).Msg("✅ event created")
	return e, nil
}

// ===========================
// 🛠 Update Event
//
// Every editable field is replaced. Registrations keep the name and price they were taken with.
func (s *Service) UpdateEvent(ctx context.Context, id uuid.UUID, req EventRequest) (*Event, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := req.Validate()
	if err != nil {
		return nil, err
	}

	existing.Name = next.Name
	existing.Description = next.Description
	existing.Date = next.Date
	existing.Price = next.Price
	existing.Capacity = next.Capacity
	existing.Location = next.Location

	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return existing, nil
}

// ===========================
// ❌ Delete Event
func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.Repo.CountRegistrations(ctx, id)
	if err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if count > 0 {
		return apperrors.Conflict(fmt.Sprintf("event has %d registrations", count))
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("event_id", id.String()).Msg("🗑️ event deleted")
	return nil
}
