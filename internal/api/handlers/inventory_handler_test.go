package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cornexhq/cornex-connect/internal/api/handlers"
	"github.com/cornexhq/cornex-connect/internal/cache"
	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/repository"
	"github.com/cornexhq/cornex-connect/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInventoryRepo struct {
	records []domain.InventoryRecord
	err     error
}

func (f *fakeInventoryRepo) GetSnapshot(_ context.Context, _ repository.InventoryFilter) ([]domain.InventoryRecord, error) {
	return f.records, f.err
}

func (f *fakeInventoryRepo) ListWarehouses(_ context.Context) ([]string, error) {
	return []string{"main"}, nil
}

func newInventoryRouter(repo repository.InventoryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewInventoryService(repo, cache.NewNoopRecommendationCache())
	handler := handlers.NewInventoryHandler(svc)

	router := gin.New()
	router.GET("/inventory/recommendations", handler.GetRecommendations)
	router.POST("/inventory/recommendations", handler.ScoreRecords)
	router.GET("/inventory/recommendations/export", handler.ExportRecommendations)

	return router
}

func snapshotFixture() []domain.InventoryRecord {
	return []domain.InventoryRecord{
		{SKU: "critical", BasePrice: decimal.NewFromInt(10), CurrentStock: 0, ReorderPoint: 100, MaxStock: 1000},
		{SKU: "optimal", BasePrice: decimal.NewFromInt(5), CurrentStock: 150, ReorderPoint: 100, MaxStock: 1000},
		{SKU: "excess", BasePrice: decimal.NewFromInt(2), CurrentStock: 850, ReorderPoint: 100, MaxStock: 1000},
	}
}

type recommendationsResponse struct {
	Recommendations []domain.Recommendation      `json:"recommendations"`
	Summary         domain.RecommendationSummary `json:"summary"`
}

func TestGetRecommendations_RankedOrderAndSummary(t *testing.T) {
	router := newInventoryRouter(&fakeInventoryRepo{records: snapshotFixture()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inventory/recommendations", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp recommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Recommendations, 3)
	assert.Equal(t, "critical", resp.Recommendations[0].Record.SKU)
	assert.Equal(t, "excess", resp.Recommendations[1].Record.SKU)
	assert.Equal(t, "optimal", resp.Recommendations[2].Record.SKU)

	assert.Equal(t, 1, resp.Summary.CountsByPriority[domain.PriorityCritical])
	assert.True(t, resp.Summary.TotalPotentialSavings.Equal(decimal.NewFromInt(1060)),
		"got %s", resp.Summary.TotalPotentialSavings)
}

func TestGetRecommendations_EmptySnapshot(t *testing.T) {
	router := newInventoryRouter(&fakeInventoryRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inventory/recommendations", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp recommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Empty(t, resp.Recommendations)
	assert.True(t, resp.Summary.TotalPotentialSavings.IsZero())
}

func TestScoreRecords_AcceptsFlatAndNestedShapes(t *testing.T) {
	router := newInventoryRouter(&fakeInventoryRepo{})

	body := `[
		{"sku": "flat", "base_price": 10, "current_stock": 0, "reorder_point": 100, "max_stock": 1000},
		{"product": {"sku": "nested", "base_price": "5"}, "inventory": {"current_stock": 150, "reorder_point": 100, "max_stock": 1000}}
	]`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inventory/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp recommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "flat", resp.Recommendations[0].Record.SKU)
	assert.Equal(t, domain.StockCritical, resp.Recommendations[0].Classification)
	assert.Equal(t, "nested", resp.Recommendations[1].Record.SKU)
	assert.Equal(t, domain.StockOptimal, resp.Recommendations[1].Classification)
}

func TestScoreRecords_RejectsNonListBody(t *testing.T) {
	router := newInventoryRouter(&fakeInventoryRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inventory/recommendations", strings.NewReader(`{"sku": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportRecommendations_CSV(t *testing.T) {
	router := newInventoryRouter(&fakeInventoryRepo{records: snapshotFixture()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inventory/recommendations/export", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "sku,name,classification,priority,action"))
	assert.True(t, strings.HasPrefix(lines[1], "critical,"))
}
