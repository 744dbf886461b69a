package event

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
	"github.com/sharath018/event-registration-backend/internal/testutil"
	"github.com/sharath018/event-registration-backend/internal/validation"
)

func setupRouter(t *testing.T) (*gin.Engine, *Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Register()

	db := testutil.NewDB(t, &Event{})
	// registrations live in another package; the delete guard only needs the column
	require.NoError(t, db.Exec("CREATE TABLE registrations (id TEXT PRIMARY KEY, event_id TEXT NOT NULL)").Error)
	repo := NewRepository(db)
	h := NewHandler(NewService(repo))

	r := gin.New()
	g := r.Group("/api/events")
	g.GET("", h.ListEvents)
	g.GET("/:id", h.GetEvent)
	g.POST("", h.CreateEvent)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
	return r, repo
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndListEvents(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events", map[string]any{
		"name":        "Retiro de Carnaval",
		"description": "Quatro dias de retiro",
		"date":        "2026-02-14",
		"price":       "150.50",
		"capacity":    "120",
		"location":    map[string]string{"address": "Rua das Flores, 10"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 150.5, created.Price)
	assert.Equal(t, 120, created.Capacity)
	assert.Equal(t, "Rua das Flores, 10", created.Location.Data().Address)

	w = doJSON(r, http.MethodPost, "/api/events", map[string]any{
		"name": "Encontro", "description": "Jovens", "date": "2026-01-10", "price": 0, "capacity": 30,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var events []Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, "Encontro", events[0].Name, "events are ordered by date")
	assert.Equal(t, "", events[0].Location.Data().Address)
}

func TestCreateEventValidation(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing name", map[string]any{"description": "d", "date": "2026-01-01", "price": 1, "capacity": 1}, "name"},
		{"negative price", map[string]any{"name": "n", "description": "d", "date": "2026-01-01", "price": -1, "capacity": 1}, "price"},
		{"zero capacity", map[string]any{"name": "n", "description": "d", "date": "2026-01-01", "price": 1, "capacity": 0}, "capacity"},
		{"bad date", map[string]any{"name": "n", "description": "d", "date": "amanhã", "price": 1, "capacity": 1}, "date"},
		{"huge price", map[string]any{"name": "n", "description": "d", "date": "2026-01-01", "price": 1e300, "capacity": 1}, "price"},
		{"price over column limit", map[string]any{"name": "n", "description": "d", "date": "2026-01-01", "price": 100000000, "capacity": 1}, "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/events", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var body struct {
				Error  string `json:"error"`
				Fields []struct {
					Field string `json:"field"`
				} `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Validation error", body.Error)
			require.NotEmpty(t, body.Fields)
			assert.Equal(t, tt.field, body.Fields[0].Field)
		})
	}
}

func TestEventRequestPrice(t *testing.T) {
	base := EventRequest{Name: "n", Description: "d", Date: "2026-01-01", Capacity: json.Number("10")}

	tests := []struct {
		price   string
		want    float64
		wantErr bool
	}{
		{"0", 0, false},
		{"80.125", 80.13, false},
		{"99999999.99", MaxPrice, false},
		{"1e300", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-0.01", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			req := base
			req.Price = json.Number(tt.price)
			ev, err := req.Validate()
			if tt.wantErr {
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "price", verr.Fields[0].Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ev.Price)
			assert.GreaterOrEqual(t, ev.Price, 0.0)
		})
	}
}

func TestUpdateEvent(t *testing.T) {
	r, repo := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events", map[string]any{
		"name": "Retiro", "description": "d", "date": "2026-03-01", "price": 100, "capacity": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPut, "/api/events/"+created.ID.String(), map[string]any{
		"name": "Retiro 2026", "description": "d2", "date": "2026-03-02", "price": 80, "capacity": 15,
		"location": map[string]string{"address": "Chácara"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Retiro 2026", stored.Name)
	assert.Equal(t, 80.0, stored.Price)
	assert.Equal(t, 15, stored.Capacity)
	assert.Equal(t, "Chácara", stored.Location.Data().Address)
}

func TestUnknownEvent(t *testing.T) {
	r, _ := setupRouter(t)
	const missing = "6f1c2b1e-9a43-4a4c-9a7e-3c0c1c7d0a11"

	w := doJSON(r, http.MethodPut, "/api/events/"+missing, map[string]any{
		"name": "n", "description": "d", "date": "2026-01-01", "price": 1, "capacity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Event not found"}`, w.Body.String())

	w = doJSON(r, http.MethodDelete, "/api/events/"+missing, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/events/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEvent(t *testing.T) {
	r, repo := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events", map[string]any{
		"name": "n", "description": "d", "date": "2026-01-01", "price": 1, "capacity": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	require.NoError(t, repo.DB.Exec("INSERT INTO registrations (id, event_id) VALUES (?, ?)", "r1", created.ID.String()).Error)
	w = doJSON(r, http.MethodDelete, "/api/events/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	require.NoError(t, repo.DB.Exec("DELETE FROM registrations").Error)
	w = doJSON(r, http.MethodDelete, "/api/events/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/api/events/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
