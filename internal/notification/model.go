package notification

import (
	"time"
)

// Channel is the Redis pub/sub channel dashboards listen on.
const Channel = "notifications:registrations"

type ChangeType string

const (
	RegistrationCreated ChangeType = "registration.created"
	RegistrationUpdated ChangeType = "registration.updated"
)

// Change announces that a registration was created or its status changed.
type Change struct {
	Type           ChangeType `json:"type"`
	RegistrationID string     `json:"registrationId"`
	EventID        string     `json:"eventId"`
	EventName      string     `json:"eventName"`
	FullName       string     `json:"fullName"`
	Status         string     `json:"status"`
	PaymentStatus  string     `json:"paymentStatus"`
	Operation      string     `json:"operation,omitempty"`
	At             time.Time  `json:"at"`
}
