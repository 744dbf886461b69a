package reports

import (
	"math"

	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/internal/registration"
)

// ComputeStats counts registrations by status and sums the amount of paid ones.
// Revenue counts any registration marked pago, whatever its status.
func ComputeStats(regs []registration.Registration, events []event.Event) DashboardStats {
	stats := DashboardStats{
		TotalEvents:        len(events),
		TotalRegistrations: len(regs),
	}
	for _, e := range events {
		stats.TotalCapacity += e.Capacity
	}

	var revenue float64
	for _, r := range regs {
		switch r.Status {
		case lifecycle.StatusPending:
			stats.Pending++
		case lifecycle.StatusConfirmed:
			stats.Confirmed++
		case lifecycle.StatusCanceled:
			stats.Canceled++
		}
		if r.PaymentStatus == lifecycle.PaymentPaid {
			stats.Paid++
			revenue += r.Amount
		}
	}
	stats.TotalRevenue = math.Round(revenue*100) / 100
	return stats
}
