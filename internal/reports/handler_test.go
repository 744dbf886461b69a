package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/registration"
	"github.com/sharath018/event-registration-backend/internal/testutil"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t, &event.Event{}, &registration.Registration{})
	ctx := context.Background()

	ev := &event.Event{Name: "Retiro", Description: "d", Date: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), Price: 150, Capacity: 50}
	require.NoError(t, db.WithContext(ctx).Create(ev).Error)

	for _, reg := range sampleRegistrations() {
		reg.EventID = ev.ID
		reg.Address, reg.Neighborhood, reg.Number = "Rua A", "Centro", "1"
		reg.IsMinor, reg.HasAllergies = registration.No, registration.No
		require.NoError(t, db.WithContext(ctx).Omit("Event").Create(&reg).Error)
	}

	svc := NewReportService(NewRepository(db), NewReportExporter())
	svc.(*reportService).now = func() time.Time { return time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC) }
	h := NewHandler(svc)

	r := gin.New()
	r.GET("/api/reports/registrations", h.GetRegistrationsReport)
	r.GET("/api/dashboard/stats", h.GetDashboardStats)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestDownloadDefaultsToExcel(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/api/reports/registrations")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "attachment; filename=event-registrations-2026-03-18.xlsx", w.Header().Get("Content-Disposition"))
	assert.Equal(t, mimeExcel, w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestJSONReportHonoursOptions(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/api/reports/registrations?format=json&includePersonalInfo=false&includeEventDetails=false&onlyConfirmed=true")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Headers []string         `json:"headers"`
		Rows    []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Status", "Status Pagamento", "Valor"}, body.Headers)
	require.Len(t, body.Rows, 2)
	assert.Equal(t, "confirmado", body.Rows[0]["Status"])
	assert.Equal(t, 150.0, body.Rows[0]["Valor"])
}

func TestReportValidation(t *testing.T) {
	r := setupRouter(t)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/reports/registrations?format=docx").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/reports/registrations?dateRange=custom").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/reports/registrations?eventId=abc").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/reports/registrations?onlyConfirmed=maybe").Code)
}

func TestDashboardStats(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/api/dashboard/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var stats DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, DashboardStats{
		TotalEvents:        1,
		TotalCapacity:      50,
		TotalRegistrations: 4,
		Pending:            1,
		Confirmed:          2,
		Canceled:           1,
		Paid:               2,
		TotalRevenue:       230.5,
	}, stats)
}
