package sepsis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sepsis/cohort/internal/platform/auth"
)

func newTestServer(repo Repository) *echo.Echo {
	e := echo.New()
	api := e.Group("/api/v1", auth.DevAuthMiddleware())
	NewHandler(NewService(repo, zerolog.Nop())).RegisterRoutes(api)
	return e
}

func TestHandler_ListLabels(t *testing.T) {
	repo := &mockLabelRepo{
		run: &Run{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		labels: []Label{
			{HadmID: 1, IsInfection: true, IsSepsis: true},
			{HadmID: 2},
		},
	}
	e := newTestServer(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data  []Label `json:"data"`
		Total int     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Data, 2)
	assert.True(t, body.Data[0].IsSepsis)
}

func TestHandler_GetLabel_NotFound(t *testing.T) {
	e := newTestServer(&mockLabelRepo{run: &Run{ID: uuid.New()}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_GetLabel_BadID(t *testing.T) {
	e := newTestServer(&mockLabelRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Summary(t *testing.T) {
	repo := &mockLabelRepo{run: &Run{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		Cohort:      120,
		Infections:  30,
		SepsisCases: 12,
	}}
	e := newTestServer(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels/summary", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var run Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, 120, run.Cohort)
	assert.Equal(t, 12, run.SepsisCases)
}

func TestHandler_SummaryWithoutRun(t *testing.T) {
	e := newTestServer(&mockLabelRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels/summary", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
