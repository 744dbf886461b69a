package registration

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
)

type Repository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id uuid.UUID) (*Registration, error)
	List(ctx context.Context, f ListFilter) ([]Registration, error)
	UpdateState(ctx context.Context, id uuid.UUID, s lifecycle.State) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status lifecycle.Status) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, ps lifecycle.PaymentStatus) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Omit("Event").Create(reg).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Registration, error) {
	var reg Registration
	err := r.db.WithContext(ctx).Preload("Event").First(&reg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Registration")
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// List returns registrations oldest first, each with its event.
func (r *repository) List(ctx context.Context, f ListFilter) ([]Registration, error) {
	q := r.db.WithContext(ctx).Preload("Event")
	if f.EventID != nil {
		q = q.Where("event_id = ?", *f.EventID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}

	var regs []Registration
	err := q.Order("date ASC").Order("id ASC").Find(&regs).Error
	return regs, err
}

func (r *repository) UpdateState(ctx context.Context, id uuid.UUID, s lifecycle.State) error {
	return r.update(ctx, id, map[string]any{"status": s.Status, "payment_status": s.PaymentStatus})
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status lifecycle.Status) error {
	return r.update(ctx, id, map[string]any{"status": status})
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, ps lifecycle.PaymentStatus) error {
	return r.update(ctx, id, map[string]any{"payment_status": ps})
}

func (r *repository) update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&Registration{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Registration")
	}
	return nil
}
