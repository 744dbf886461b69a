package apiclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sharath018/event-registration-backend/config"
	"github.com/sharath018/event-registration-backend/internal/auth"
	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/internal/registration"
	"github.com/sharath018/event-registration-backend/internal/reports"
	"github.com/sharath018/event-registration-backend/internal/testutil"
	"github.com/sharath018/event-registration-backend/routes"
)

type server struct {
	*httptest.Server
	requests atomic.Int64
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AdminUsername:      "admin",
		AdminPassword:      "s3nha",
		AdminAuthRequired:  true,
		JWTAccessSecret:    "test-secret",
		JWTAccessTTLHours:  1,
		RateLimitPerMinute: 1000,
	}
	authSvc, err := auth.NewService(cfg)
	require.NoError(t, err)

	r := gin.New()
	routes.Setup(r, routes.Dependencies{
		Config: cfg,
		DB:     testutil.NewDB(t, &event.Event{}, &registration.Registration{}),
		Auth:   authSvc,
	})

	s := &server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.requests.Add(1)
		r.ServeHTTP(w, req)
	}))
	t.Cleanup(s.Close)
	return s
}

func loggedIn(t *testing.T, s *server) *Client {
	t.Helper()
	c := New(s.URL)
	_, err := c.Login(context.Background(), "admin", "s3nha")
	require.NoError(t, err)
	return c
}

func createEvent(t *testing.T, c *Client) *event.Event {
	t.Helper()
	ev, err := c.CreateEvent(context.Background(), EventInput{
		Name:        "Retiro de Carnaval",
		Description: "Quatro dias de retiro",
		Date:        "2026-02-14",
		Price:       150,
		Capacity:    80,
		Location:    &event.Location{Address: "Chácara Recanto"},
	})
	require.NoError(t, err)
	return ev
}

func register(t *testing.T, c *Client, ev *event.Event, name string) *registration.Registration {
	t.Helper()
	reg, err := c.CreateRegistration(context.Background(), registration.CreateRequest{
		EventID:      ev.ID.String(),
		FullName:     name,
		CPF:          "123.456.789-09",
		Phone:        "11987654321",
		Address:      "Rua das Flores",
		Neighborhood: "Centro",
		Number:       "42",
		IsMinor:      registration.No,
		HasAllergies: registration.No,
	})
	require.NoError(t, err)
	return reg
}

func TestLifecycleEndToEnd(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	c := loggedIn(t, s)

	ev := createEvent(t, c)
	reg := register(t, New(s.URL), ev, "Maria Souza")
	assert.Equal(t, lifecycle.Initial, reg.State())
	assert.Equal(t, 150.0, reg.Amount)
	assert.Equal(t, ev.Name, reg.EventName)

	var prompts []lifecycle.Confirmation
	actions := NewActions(c, ConfirmFunc(func(_ context.Context, kind lifecycle.Confirmation) (bool, error) {
		prompts = append(prompts, kind)
		return true, nil
	}))

	steps := []struct {
		op   lifecycle.Operation
		want lifecycle.State
	}{
		{lifecycle.OpMarkPaid, lifecycle.State{Status: lifecycle.StatusPending, PaymentStatus: lifecycle.PaymentPaid}},
		{lifecycle.OpConfirm, lifecycle.State{Status: lifecycle.StatusConfirmed, PaymentStatus: lifecycle.PaymentPaid}},
		{lifecycle.OpCancel, lifecycle.State{Status: lifecycle.StatusCanceled, PaymentStatus: lifecycle.PaymentUnpaid}},
		{lifecycle.OpRestore, lifecycle.State{Status: lifecycle.StatusPending, PaymentStatus: lifecycle.PaymentUnpaid}},
	}
	for _, step := range steps {
		var err error
		reg, err = actions.Perform(ctx, reg, step.op)
		require.NoError(t, err, step.op)
		assert.Equal(t, step.want, reg.State(), step.op)

		stored, err := c.GetRegistration(ctx, reg.ID)
		require.NoError(t, err)
		assert.Equal(t, step.want, stored.State(), "stored after %s", step.op)
	}
	assert.Equal(t, []lifecycle.Confirmation{lifecycle.ConfirmRefundAndCancel}, prompts)
}

func TestInvalidTransitionSendsNothing(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	c := loggedIn(t, s)
	reg := register(t, c, createEvent(t, c), "João Lima")

	before := s.requests.Load()
	_, err := NewActions(c, nil).Perform(ctx, reg, lifecycle.OpConfirm)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	assert.Equal(t, before, s.requests.Load(), "no request for a rejected transition")
}

func TestDeclinedConfirmation(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	c := loggedIn(t, s)
	reg := register(t, c, createEvent(t, c), "Ana Paula")

	before := s.requests.Load()
	decline := ConfirmFunc(func(context.Context, lifecycle.Confirmation) (bool, error) { return false, nil })
	_, err := NewActions(c, decline).Perform(ctx, reg, lifecycle.OpCancel)
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Equal(t, before, s.requests.Load())

	stored, err := c.GetRegistration(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.Initial, stored.State())
}

func TestServerSideTransitions(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	c := loggedIn(t, s)
	reg := register(t, c, createEvent(t, c), "Pedro Alves")

	_, err := c.Transition(ctx, reg.ID, string(lifecycle.OpConfirm), false)
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", apiErr.Code)
	assert.Equal(t, []string{"markPaid", "cancel"}, apiErr.Available)

	_, err = c.Transition(ctx, reg.ID, string(lifecycle.OpCancel), false)
	assert.True(t, IsStatus(err, http.StatusPreconditionRequired))

	updated, err := c.Transition(ctx, reg.ID, string(lifecycle.OpCancel), true)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusCanceled, updated.Status)
}

func TestErrors(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	anon := New(s.URL)
	_, err := anon.ListRegistrations(ctx, RegistrationFilter{})
	assert.True(t, IsStatus(err, http.StatusUnauthorized), "admin routes need a token")

	_, err = anon.Login(ctx, "admin", "wrong")
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	c := loggedIn(t, s)
	_, err = c.CreateEvent(ctx, EventInput{Name: "x", Description: "y", Date: "2026-02-14", Price: 10, Capacity: 0})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Validation error", apiErr.Message)
	require.NotEmpty(t, apiErr.Fields)
	assert.Equal(t, "capacity", apiErr.Fields[0].Field)

	// nothing listens on this address once closed
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()
	_, err = New(dead.URL).ListEvents(ctx)
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestExportAndStats(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	c := loggedIn(t, s)
	ev := createEvent(t, c)

	paid := register(t, c, ev, "Carla Dias")
	_, err := NewActions(c, nil).Perform(ctx, paid, lifecycle.OpMarkPaid)
	require.NoError(t, err)
	register(t, c, ev, "Bruno Reis")

	file, err := c.ExportReport(ctx, ExportParams{Options: reports.DefaultOptions()})
	require.NoError(t, err)
	assert.Regexp(t, `^event-registrations-\d{4}-\d{2}-\d{2}\.xlsx$`, file.Filename)

	x, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows(reports.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	data, err := c.Report(ctx, ExportParams{Options: reports.Options{IncludePaymentInfo: true}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Status", "Status Pagamento", "Valor"}, data.Headers)
	assert.Len(t, data.Rows, 2)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRegistrations)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Paid)
	assert.Equal(t, 150.0, stats.TotalRevenue)
	assert.Equal(t, 80, stats.TotalCapacity)
}
