package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/registration"
)

// RegistrationQuery narrows the registrations a report reads.
type RegistrationQuery struct {
	EventID *uuid.UUID
	From    *time.Time
	To      *time.Time
}

// ReportRepository defines the database reads required by the reports service.
type ReportRepository interface {
	GetRegistrations(ctx context.Context, q RegistrationQuery) ([]registration.Registration, error)
	GetEvents(ctx context.Context) ([]event.Event, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReportRepository {
	return &repository{db: db}
}

// GetRegistrations returns registrations in registration order, oldest first.
func (r *repository) GetRegistrations(ctx context.Context, q RegistrationQuery) ([]registration.Registration, error) {
	query := r.db.WithContext(ctx).Model(&registration.Registration{})
	if q.EventID != nil {
		query = query.Where("event_id = ?", *q.EventID)
	}
	if q.From != nil {
		query = query.Where("date >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("date <= ?", *q.To)
	}

	var regs []registration.Registration
	err := query.Order("date ASC").Order("id ASC").Find(&regs).Error
	return regs, err
}

func (r *repository) GetEvents(ctx context.Context) ([]event.Event, error) {
	var events []event.Event
	err := r.db.WithContext(ctx).Order("date ASC").Find(&events).Error
	return events, err
}
