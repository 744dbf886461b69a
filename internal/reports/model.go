package reports

import (
	"bytes"
	"encoding/json"
	"time"
)

const (
	// Report format constants
	FormatExcel = "excel"
	FormatCSV   = "csv"
	FormatPDF   = "pdf"
	FormatJSON  = "json"

	// Date range constants
	DateRangeAll     = "all"
	DateRangeDaily   = "daily"
	DateRangeWeekly  = "weekly"
	DateRangeMonthly = "monthly"
	DateRangeYearly  = "yearly"
	DateRangeCustom  = "custom"

	SheetName      = "Registrations"
	FilenamePrefix = "event-registrations"
)

// Column headers, in the order they appear in a report.
const (
	ColName          = "Nome"
	ColCPF           = "CPF"
	ColPhone         = "Telefone"
	ColEvent         = "Evento"
	ColDate          = "Data"
	ColStatus        = "Status"
	ColPaymentStatus = "Status Pagamento"
	ColAmount        = "Valor"
)

// Options selects which column groups a report carries and which registrations it keeps.
type Options struct {
	IncludePersonalInfo bool `form:"includePersonalInfo,default=true" json:"includePersonalInfo"`
	IncludePaymentInfo  bool `form:"includePaymentInfo,default=true" json:"includePaymentInfo"`
	IncludeEventDetails bool `form:"includeEventDetails,default=true" json:"includeEventDetails"`
	OnlyConfirmed       bool `form:"onlyConfirmed,default=false" json:"onlyConfirmed"`
}

// DefaultOptions matches what the export dialog starts with.
func DefaultOptions() Options {
	return Options{IncludePersonalInfo: true, IncludePaymentInfo: true, IncludeEventDetails: true}
}

// ExportRequest is the query string of GET /api/reports/registrations.
type ExportRequest struct {
	Options
	Format    string `form:"format,default=excel"`
	EventID   string `form:"eventId"`
	DateRange string `form:"dateRange,default=all"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// Cell is one column of a Row.
type Cell struct {
	Column string
	Value  any
}

// Row is an ordered column -> value mapping. Values are raw: strings, float64 and time.Time.
type Row struct {
	cells []Cell
}

func (r *Row) set(column string, value any) {
	r.cells = append(r.cells, Cell{Column: column, Value: value})
}

func (r Row) Len() int { return len(r.cells) }

func (r Row) Cells() []Cell { return r.cells }

func (r Row) Columns() []string {
	cols := make([]string, len(r.cells))
	for i, c := range r.cells {
		cols[i] = c.Column
	}
	return cols
}

func (r Row) Get(column string) (any, bool) {
	for _, c := range r.cells {
		if c.Column == column {
			return c.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the row as an object whose keys keep column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.cells {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Column)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Report is the JSON form of an export.
type Report struct {
	Headers     []string  `json:"headers"`
	Rows        []Row     `json:"rows"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// DashboardStats are the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalEvents        int     `json:"totalEvents"`
	TotalCapacity      int     `json:"totalCapacity"`
	TotalRegistrations int     `json:"totalRegistrations"`
	Pending            int     `json:"pending"`
	Confirmed          int     `json:"confirmed"`
	Canceled           int     `json:"canceled"`
	Paid               int     `json:"paid"`
	TotalRevenue       float64 `json:"totalRevenue"`
}
