package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/optimizer"
	"github.com/cornexhq/cornex-connect/internal/repository"
	"github.com/cornexhq/cornex-connect/internal/service"
	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *service.InventoryService
	engine  *optimizer.Engine
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		engine:  optimizer.NewEngine(),
	}
}

func (h *InventoryHandler) parseFilter(c *gin.Context) repository.InventoryFilter {
	return repository.InventoryFilter{
		Warehouse: strings.TrimSpace(c.Query("warehouse")),
		Category:  strings.TrimSpace(c.Query("category")),
	}
}

func (h *InventoryHandler) GetInventory(c *gin.Context) {
	filter := h.parseFilter(c)
	records, err := h.service.GetSnapshot(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inventory", "details": err.Error()})
		return
	}

	if records == nil {
		records = make([]domain.InventoryRecord, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"items": records,
		"total": len(records),
	})
}

func (h *InventoryHandler) GetWarehouses(c *gin.Context) {
	warehouses, err := h.service.ListWarehouses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch warehouses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"warehouses": warehouses})
}

// GetRecommendations serves the ranked recommendation view for the stored
// inventory snapshot.
func (h *InventoryHandler) GetRecommendations(c *gin.Context) {
	filter := h.parseFilter(c)
	result, err := h.service.GetRecommendations(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ScoreRecords computes recommendations for a caller-supplied record list
// without touching storage. Records may arrive flattened or with nested
// inventory/product sub-objects.
func (h *InventoryHandler) ScoreRecords(c *gin.Context) {
	var dtos []inventoryRecordDTO
	if err := c.ShouldBindJSON(&dtos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a list of inventory records", "details": err.Error()})
		return
	}

	records := make([]domain.InventoryRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, dto.toDomain())
	}

	ranked, summary := h.engine.Recommend(records)

	c.JSON(http.StatusOK, gin.H{
		"recommendations": ranked,
		"summary":         summary,
	})
}

// ExportRecommendations streams the ranked recommendations as a CSV download.
func (h *InventoryHandler) ExportRecommendations(c *gin.Context) {
	filter := h.parseFilter(c)
	result, err := h.service.GetRecommendations(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendations", "details": err.Error()})
		return
	}

	filename := "recommendations_" + time.Now().Format("20060102") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.service.WriteRecommendationsCSV(c.Writer, result.Recommendations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export recommendations", "details": err.Error()})
	}
}
