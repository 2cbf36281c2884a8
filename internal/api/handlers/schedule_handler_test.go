package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cornexhq/cornex-connect/internal/api/handlers"
	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/schedule"
	"github.com/cornexhq/cornex-connect/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduleRepo struct {
	entries []domain.ScheduleEntry
}

func (s *stubScheduleRepo) ListEntriesForRange(_ context.Context, from, to time.Time) ([]domain.ScheduleEntry, error) {
	var out []domain.ScheduleEntry
	for _, e := range s.entries {
		if !e.ScheduledDate.Before(from) && e.ScheduledDate.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubScheduleRepo) GetEntry(_ context.Context, id string) (*domain.ScheduleEntry, error) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return &s.entries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubScheduleRepo) CreateEntry(_ context.Context, entry *domain.ScheduleEntry, _ *domain.AuditEntry) error {
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *stubScheduleRepo) UpdateStatus(_ context.Context, id string, status domain.ScheduleStatus, _ int, _ *domain.AuditEntry) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func newScheduleRouter(repo *stubScheduleRepo, loc *time.Location) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewScheduleService(repo, loc)
	handler := handlers.NewScheduleHandler(svc)

	router := gin.New()
	router.GET("/schedule", handler.GetMonth)
	router.GET("/schedule/day", handler.GetDay)
	router.POST("/schedule", handler.CreateEntry)
	router.PUT("/schedule/:id/status", handler.UpdateStatus)

	return router
}

func TestGetMonth_RendersGrid(t *testing.T) {
	repo := &stubScheduleRepo{
		entries: []domain.ScheduleEntry{
			{ID: "a", ScheduledDate: time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC), Status: domain.ScheduleInProgress},
		},
	}
	router := newScheduleRouter(repo, time.UTC)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule?year=2024&month=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var grid schedule.MonthGrid
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grid))
	require.Len(t, grid.Days, 29)
	assert.Equal(t, []string{"active"}, grid.Days[28].Dots)
}

func TestGetMonth_RejectsBadMonth(t *testing.T) {
	router := newScheduleRouter(&stubScheduleRepo{}, time.UTC)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule?year=2024&month=13", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDay_RequiresDate(t *testing.T) {
	router := newScheduleRouter(&stubScheduleRepo{}, time.UTC)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule/day?date=03-05-2024", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDay_DisplayTimezone(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// stored as UTC instants, both at local noon
	repo := &stubScheduleRepo{
		entries: []domain.ScheduleEntry{
			{ID: "march4", ScheduledDate: time.Date(2024, time.March, 4, 17, 0, 0, 0, time.UTC)},
			{ID: "march5", ScheduledDate: time.Date(2024, time.March, 5, 17, 0, 0, 0, time.UTC)},
		},
	}
	router := newScheduleRouter(repo, newYork)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule/day?date=2024-03-05", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Entries []domain.ScheduleEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Entries, 1)
	assert.Equal(t, "march5", body.Entries[0].ID)
}

func TestCreateEntry_DateOnlyUsesDisplayTimezone(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	repo := &stubScheduleRepo{}
	router := newScheduleRouter(repo, newYork)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/schedule",
		strings.NewReader(`{"product_id": "p1", "scheduled_date": "2024-03-05"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.entries, 1)
	assert.True(t, repo.entries[0].ScheduledDate.Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, newYork)),
		"date-only input must be local midnight, not UTC midnight")
}

func TestUpdateStatus_UnknownLabelIs400(t *testing.T) {
	repo := &stubScheduleRepo{entries: []domain.ScheduleEntry{{ID: "a", Status: domain.ScheduleScheduled}}}
	router := newScheduleRouter(repo, time.UTC)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/schedule/a/status", strings.NewReader(`{"status": "paused"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_MissingEntryIs404(t *testing.T) {
	router := newScheduleRouter(&stubScheduleRepo{}, time.UTC)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/schedule/nope/status", strings.NewReader(`{"status": "completed"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
