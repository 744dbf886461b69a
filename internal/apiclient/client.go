// Package apiclient is a typed HTTP binding for the event registration API, used by the
// admin CLI and by end-to-end tests.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sharath018/event-registration-backend/internal/auth"
	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/registration"
	"github.com/sharath018/event-registration-backend/internal/reports"
)

// NetworkError means the request never got an HTTP answer. Retrying may help.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer decoded from the server's error body.
type APIError struct {
	StatusCode int             `json:"-"`
	Message    string          `json:"error"`
	Code       string          `json:"code,omitempty"`
	Details    string          `json:"details,omitempty"`
	Fields     []APIFieldError `json:"fields,omitempty"`
	Available  []string        `json:"available,omitempty"`
}

type APIFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Details != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, msg, e.Details)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, msg)
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after Login.
func (c *Client) SetToken(token string) { c.token = token }

// =============================
// Auth
// =============================

func (c *Client) Login(ctx context.Context, username, password string) (*auth.Token, error) {
	var out auth.Token
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	return &out, nil
}

// =============================
// Events
// =============================

// EventInput is the body accepted by the event create/update endpoints.
type EventInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Price       float64         `json:"price"`
	Capacity    int             `json:"capacity"`
	Location    *event.Location `json:"location,omitempty"`
}

func (c *Client) ListEvents(ctx context.Context) ([]event.Event, error) {
	var out []event.Event
	return out, c.do(ctx, http.MethodGet, "/api/events", nil, nil, &out)
}

func (c *Client) GetEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	var out event.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*event.Event, error) {
	var out event.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id uuid.UUID, in EventInput) (*event.Event, error) {
	var out event.Event
	if err := c.do(ctx, http.MethodPut, "/api/events/"+id.String(), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+id.String(), nil, nil, nil)
}

// =============================
// Registrations
// =============================

type RegistrationFilter struct {
	EventID *uuid.UUID
	Status  string
}

func (c *Client) ListRegistrations(ctx context.Context, f RegistrationFilter) ([]registration.Registration, error) {
	q := url.Values{}
	if f.EventID != nil {
		q.Set("eventId", f.EventID.String())
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	var out []registration.Registration
	return out, c.do(ctx, http.MethodGet, "/api/registrations", q, nil, &out)
}

func (c *Client) GetRegistration(ctx context.Context, id uuid.UUID) (*registration.Registration, error) {
	var out registration.Registration
	if err := c.do(ctx, http.MethodGet, "/api/registrations/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRegistration(ctx context.Context, in registration.CreateRequest) (*registration.Registration, error) {
	var out registration.Registration
	if err := c.do(ctx, http.MethodPost, "/api/registrations", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*registration.Registration, error) {
	var out registration.Registration
	body := registration.StatusRequest{Status: status}
	if err := c.do(ctx, http.MethodPut, "/api/registrations/"+id.String()+"/status", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePayment(ctx context.Context, id uuid.UUID, paymentStatus string) (*registration.Registration, error) {
	var out registration.Registration
	body := registration.PaymentRequest{PaymentStatus: paymentStatus}
	if err := c.do(ctx, http.MethodPut, "/api/registrations/"+id.String()+"/payment", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transition asks the server to run op through its own lifecycle check.
func (c *Client) Transition(ctx context.Context, id uuid.UUID, op string, confirmed bool) (*registration.Registration, error) {
	var out registration.Registration
	body := registration.TransitionRequest{Operation: op, Confirmed: confirmed}
	if err := c.do(ctx, http.MethodPost, "/api/registrations/"+id.String()+"/transitions", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// =============================
// Reports
// =============================

type ExportParams struct {
	Format    string
	Options   reports.Options
	EventID   *uuid.UUID
	DateRange string
	StartDate string
	EndDate   string
}

// Export is a downloaded report file.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (p ExportParams) query() url.Values {
	q := url.Values{}
	if p.Format != "" {
		q.Set("format", p.Format)
	}
	q.Set("includePersonalInfo", strconv.FormatBool(p.Options.IncludePersonalInfo))
	q.Set("includePaymentInfo", strconv.FormatBool(p.Options.IncludePaymentInfo))
	q.Set("includeEventDetails", strconv.FormatBool(p.Options.IncludeEventDetails))
	q.Set("onlyConfirmed", strconv.FormatBool(p.Options.OnlyConfirmed))
	if p.EventID != nil {
		q.Set("eventId", p.EventID.String())
	}
	if p.DateRange != "" {
		q.Set("dateRange", p.DateRange)
	}
	if p.StartDate != "" {
		q.Set("startDate", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("endDate", p.EndDate)
	}
	return q
}

// ExportReport downloads the report file in p.Format.
func (c *Client) ExportReport(ctx context.Context, p ExportParams) (*Export, error) {
	resp, err := c.send(ctx, http.MethodGet, "/api/reports/registrations", p.query(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "read report", Err: err}
	}

	out := &Export{ContentType: resp.Header.Get("Content-Type"), Data: data}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		out.Filename = params["filename"]
	}
	return out, nil
}

// ReportData is the JSON form of a report. Headers keep the column order the rows lose.
type ReportData struct {
	Headers     []string                 `json:"headers"`
	Rows        []map[string]interface{} `json:"rows"`
	GeneratedAt time.Time                `json:"generatedAt"`
}

func (c *Client) Report(ctx context.Context, p ExportParams) (*ReportData, error) {
	p.Format = reports.FormatJSON
	var out ReportData
	if err := c.do(ctx, http.MethodGet, "/api/reports/registrations", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*reports.DashboardStats, error) {
	var out reports.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// =============================
// Transport
// =============================

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, q, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: method + " " + path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// send returns the response only for 2xx answers; the caller closes its body.
func (c *Client) send(ctx context.Context, method, path string, q url.Values, body interface{}) (*http.Response, error) {
	op := method + " " + path
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if len(raw) > 0 && json.Unmarshal(raw, apiErr) != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return nil, apiErr
}
