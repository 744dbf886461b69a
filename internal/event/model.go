package event

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
)

// DateLayout is the calendar-date format the dashboard sends.
const DateLayout = "2006-01-02"

// MaxPrice is the largest value the decimal(10,2) price column holds.
const MaxPrice = 99999999.99

// Location is kept as a JSON document so more fields can be added without a migration.
type Location struct {
	Address string `json:"address"`
}

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                       `gorm:"type:varchar(255);not null" json:"name"`
	Description string                       `gorm:"type:text;not null" json:"description"`
	Date        time.Time                    `gorm:"not null;index" json:"date"`
	Price       float64                      `gorm:"type:decimal(10,2);not null" json:"price"`
	Capacity    int                          `gorm:"not null" json:"capacity"`
	Location    datatypes.JSONType[Location] `gorm:"not null" json:"location"`
	CreatedAt   time.Time                    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time                    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// ============================
// 🟡 Create / Update Event Request
//
// Price and capacity accept both JSON numbers and numeric strings, since the dashboard form
// posts its inputs as strings.
type EventRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Date        string      `json:"date" binding:"required"`
	Price       json.Number `json:"price" binding:"required"`
	Capacity    json.Number `json:"capacity" binding:"required"`
	Location    *Location   `json:"location"`
}

// Validate checks the fields binding tags cannot express and returns the parsed values.
func (r EventRequest) Validate() (*Event, error) {
	verr := &apperrors.ValidationError{}

	date, err := ParseDate(r.Date)
	if err != nil {
		verr.Add("date", "must be a date (YYYY-MM-DD)")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r.Price.String()), 64)
	switch {
	case err != nil, math.IsNaN(price), math.IsInf(price, 0):
		verr.Add("price", "must be a number")
	case price < 0:
		verr.Add("price", "must be greater than or equal to 0")
	case price > MaxPrice:
		verr.Add("price", "must be at most 99999999.99")
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(r.Capacity.String()))
	switch {
	case err != nil:
		verr.Add("capacity", "must be an integer")
	case capacity < 1:
		verr.Add("capacity", "must be at least 1")
	}

	if strings.TrimSpace(r.Name) == "" {
		verr.Add("name", "is required")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	loc := Location{}
	if r.Location != nil {
		loc = *r.Location
	}
	return &Event{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Date:        date,
		Price:       roundCents(price),
		Capacity:    capacity,
		Location:    datatypes.NewJSONType(loc),
	}, nil
}

// ParseDate accepts a calendar date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
