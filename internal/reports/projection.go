package reports

import (
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/internal/registration"
)

// Headers lists the columns a report built with opts carries.
func Headers(opts Options) []string {
	var cols []string
	if opts.IncludePersonalInfo {
		cols = append(cols, ColName, ColCPF, ColPhone)
	}
	if opts.IncludeEventDetails {
		cols = append(cols, ColEvent, ColDate)
	}
	if opts.IncludePaymentInfo {
		cols = append(cols, ColStatus, ColPaymentStatus, ColAmount)
	}
	return cols
}

// Project turns registrations into report rows. Input order is kept, values are not
// formatted, and with every group switched off each kept registration still yields an
// empty row.
func Project(regs []registration.Registration, opts Options) []Row {
	rows := make([]Row, 0, len(regs))
	for _, reg := range regs {
		if opts.OnlyConfirmed && reg.Status != lifecycle.StatusConfirmed {
			continue
		}

		var row Row
		if opts.IncludePersonalInfo {
			row.set(ColName, reg.FullName)
			row.set(ColCPF, reg.CPF)
			row.set(ColPhone, reg.Phone)
		}
		if opts.IncludeEventDetails {
			row.set(ColEvent, reg.EventName)
			row.set(ColDate, reg.Date)
		}
		if opts.IncludePaymentInfo {
			row.set(ColStatus, string(reg.Status))
			row.set(ColPaymentStatus, string(reg.PaymentStatus))
			row.set(ColAmount, reg.Amount)
		}
		rows = append(rows, row)
	}
	return rows
}
