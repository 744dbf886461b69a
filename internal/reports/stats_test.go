package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/internal/registration"
)

func TestComputeStats(t *testing.T) {
	regs := sampleRegistrations()
	// paid but still pending still counts as revenue
	regs = append(regs, registration.Registration{
		Status: lifecycle.StatusPending, PaymentStatus: lifecycle.PaymentPaid, Amount: 0.1,
	})
	events := []event.Event{{Capacity: 100}, {Capacity: 30}}

	stats := ComputeStats(regs, events)
	assert.Equal(t, DashboardStats{
		TotalEvents:        2,
		TotalCapacity:      130,
		TotalRegistrations: 5,
		Pending:            2,
		Confirmed:          2,
		Canceled:           1,
		Paid:               3,
		TotalRevenue:       230.6,
	}, stats)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, DashboardStats{}, ComputeStats(nil, nil))
}
