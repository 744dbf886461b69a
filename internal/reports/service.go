package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
)

// ReportService coordinates repo + projection + exporter.
type ReportService interface {
	GetReport(ctx context.Context, req ExportRequest) (Report, error)
	ExportReport(ctx context.Context, req ExportRequest) ([]byte, string, string, error)
	GetDashboardStats(ctx context.Context) (DashboardStats, error)
}

type reportService struct {
	repo     ReportRepository
	exporter ReportExporter
	now      func() time.Time
}

func NewReportService(repo ReportRepository, exporter ReportExporter) ReportService {
	return &reportService{repo: repo, exporter: exporter, now: time.Now}
}

func (s *reportService) GetReport(ctx context.Context, req ExportRequest) (Report, error) {
	q, err := s.query(req)
	if err != nil {
		return Report{}, err
	}
	regs, err := s.repo.GetRegistrations(ctx, q)
	if err != nil {
		return Report{}, fmt.Errorf("load registrations: %w", err)
	}
	return Report{
		Headers:     Headers(req.Options),
		Rows:        Project(regs, req.Options),
		GeneratedAt: s.now(),
	}, nil
}

func (s *reportService) ExportReport(ctx context.Context, req ExportRequest) ([]byte, string, string, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	switch format {
	case "", FormatExcel, FormatCSV, FormatPDF:
	default:
		return nil, "", "", apperrors.NewValidation("format", "must be one of [excel csv pdf json]")
	}

	report, err := s.GetReport(ctx, req)
	if err != nil {
		return nil, "", "", err
	}
	data, filename, mime, err := s.exporter.Export(format, report.Headers, report.Rows, report.GeneratedAt)
	if err != nil {
		return nil, "", "", fmt.Errorf("export %s: %w", format, err)
	}
	log.Info().Str("format", format).Int("rows", len(report.Rows)).Str("file", filename).Msg("📄 registrations report exported")
	return data, filename, mime, nil
}

func (s *reportService) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	regs, err := s.repo.GetRegistrations(ctx, RegistrationQuery{})
	if err != nil {
		return DashboardStats{}, fmt.Errorf("load registrations: %w", err)
	}
	events, err := s.repo.GetEvents(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("load events: %w", err)
	}
	return ComputeStats(regs, events), nil
}

func (s *reportService) query(req ExportRequest) (RegistrationQuery, error) {
	var q RegistrationQuery
	if req.EventID != "" {
		id, err := uuid.Parse(req.EventID)
		if err != nil {
			return q, apperrors.NewValidation("eventId", "must be a valid UUID")
		}
		q.EventID = &id
	}
	from, to, err := GetDateRange(req.DateRange, req.StartDate, req.EndDate, s.now())
	if err != nil {
		return q, apperrors.NewValidation("dateRange", err.Error())
	}
	q.From, q.To = from, to
	return q, nil
}
