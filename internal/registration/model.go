package registration

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
)

// YesNo is how the registration form answers its yes/no questions.
type YesNo string

const (
	Yes YesNo = "sim"
	No  YesNo = "nao"
)

// ============================
// 🔷 GORM Registration Model
//
// EventName and Amount are copied from the event when the registration is taken and are
// never recomputed.
type Registration struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	EventID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"eventId"`
	Event     *event.Event `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"event,omitempty"`
	EventName string       `gorm:"type:varchar(255);not null" json:"eventName"`

	FullName     string `gorm:"type:varchar(255);not null" json:"fullName"`
	CPF          string `gorm:"column:cpf;type:varchar(14);not null;index" json:"cpf"`
	Phone        string `gorm:"type:varchar(20);not null" json:"phone"`
	Address      string `gorm:"type:varchar(255);not null" json:"address"`
	Neighborhood string `gorm:"type:varchar(255);not null" json:"neighborhood"`
	Number       string `gorm:"type:varchar(20);not null" json:"number"`

	IsMinor        YesNo   `gorm:"type:varchar(3);not null" json:"isMinor"`
	MinorDocument  *string `gorm:"type:text" json:"minorDocument,omitempty"`
	HasAllergies   YesNo   `gorm:"type:varchar(3);not null" json:"hasAllergies"`
	AllergiesNotes *string `gorm:"type:text" json:"allergiesNotes,omitempty"`

	Status        lifecycle.Status        `gorm:"type:varchar(20);not null;default:'pendente';index" json:"status"`
	PaymentStatus lifecycle.PaymentStatus `gorm:"type:varchar(20);not null;default:'não pago'" json:"paymentStatus"`
	Amount        float64                 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date          time.Time               `gorm:"not null;index" json:"date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r Registration) State() lifecycle.State {
	return lifecycle.State{Status: r.Status, PaymentStatus: r.PaymentStatus}
}

// ============================
// 🟡 Create Registration Request
type CreateRequest struct {
	EventID        string `json:"eventId" binding:"required,uuid"`
	FullName       string `json:"fullName" binding:"required,min=2"`
	CPF            string `json:"cpf" binding:"required,cpf"`
	Phone          string `json:"phone" binding:"required,min=10"`
	Address        string `json:"address" binding:"required,min=2"`
	Neighborhood   string `json:"neighborhood" binding:"required,min=2"`
	Number         string `json:"number" binding:"required"`
	IsMinor        YesNo  `json:"isMinor" binding:"required,oneof=sim nao"`
	MinorDocument  string `json:"minorDocument"`
	HasAllergies   YesNo  `json:"hasAllergies" binding:"required,oneof=sim nao"`
	AllergiesNotes string `json:"allergiesNotes"`
}

// Validate covers the conditional rules between fields.
func (r CreateRequest) Validate() error {
	verr := &apperrors.ValidationError{}
	if r.IsMinor == Yes && strings.TrimSpace(r.MinorDocument) == "" {
		verr.Add("minorDocument", "is required for minors")
	}
	return verr.OrNil()
}

// NewRegistration builds a pending, unpaid registration for ev. Optional answers are only
// kept when the matching question was answered "sim".
func NewRegistration(req CreateRequest, ev *event.Event, now time.Time) *Registration {
	reg := &Registration{
		EventID:       ev.ID,
		EventName:     ev.Name,
		FullName:      strings.TrimSpace(req.FullName),
		CPF:           strings.TrimSpace(req.CPF),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		Neighborhood:  strings.TrimSpace(req.Neighborhood),
		Number:        strings.TrimSpace(req.Number),
		IsMinor:       req.IsMinor,
		HasAllergies:  req.HasAllergies,
		Status:        lifecycle.Initial.Status,
		PaymentStatus: lifecycle.Initial.PaymentStatus,
		Amount:        ev.Price,
		Date:          now,
	}
	if req.IsMinor == Yes {
		doc := strings.TrimSpace(req.MinorDocument)
		reg.MinorDocument = &doc
	}
	if req.HasAllergies == Yes {
		if notes := strings.TrimSpace(req.AllergiesNotes); notes != "" {
			reg.AllergiesNotes = &notes
		}
	}
	return reg
}

// ============================
// 🟠 Status / payment overwrite and transition requests
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

type TransitionRequest struct {
	Operation string `json:"operation" binding:"required"`
	Confirmed bool   `json:"confirmed"`
}

// ListFilter narrows GET /api/registrations. Zero values mean no filter.
type ListFilter struct {
	EventID *uuid.UUID
	Status  lifecycle.Status
	From    *time.Time
	To      *time.Time
}
