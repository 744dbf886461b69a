package event

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🎯 Create Event
func (r *Repository) Create(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

// ===========================
// 🔍 Get Event By ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var e Event
	err := r.DB.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Event")
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 📄 List Events, soonest first
func (r *Repository) List(ctx context.Context) ([]Event, error) {
	var events []Event
	err := r.DB.WithContext(ctx).Order("date ASC").Order("created_at ASC").Find(&events).Error
	return events, err
}

// ===========================
// 🛠 Update Event
func (r *Repository) Update(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Save(e).Error
}

// ===========================
// ❌ Delete Event
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Event")
	}
	return nil
}

// ===========================
// 🔢 Count registrations pointing at an event
func (r *Repository) CountRegistrations(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("registrations").Where("event_id = ?", id).Count(&count).Error
	return count, err
}
