package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/service"
	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	service *service.ScheduleService
}

func NewScheduleHandler(service *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// GetMonth renders the calendar grid for ?year=&month=, defaulting to the
// current month.
func (h *ScheduleHandler) GetMonth(c *gin.Context) {
	now := time.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	grid, err := h.service.GetMonth(c.Request.Context(), year, time.Month(monthNum))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, grid)
}

// GetDay returns the untruncated entry list for ?date=YYYY-MM-DD.
func (h *ScheduleHandler) GetDay(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("date"))
	date, err := time.ParseInLocation("2006-01-02", raw, h.service.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entries, err := h.service.GetDay(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch day entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    raw,
		"entries": entries,
	})
}

type createEntryRequest struct {
	ProductID       string `json:"product_id" binding:"required"`
	ScheduledDate   string `json:"scheduled_date" binding:"required"`
	ProductionLine  string `json:"production_line"`
	PlannedQuantity int    `json:"planned_quantity"`
	Priority        string `json:"priority"`
	Notes           string `json:"notes"`
}

func (h *ScheduleHandler) CreateEntry(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule entry", "details": err.Error()})
		return
	}

	scheduled, err := time.Parse(time.RFC3339, req.ScheduledDate)
	if err != nil {
		// date-only input from the calendar picker means that day in the
		// display timezone, not UTC
		scheduled, err = time.ParseInLocation("2006-01-02", req.ScheduledDate, h.service.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_date must be RFC3339 or YYYY-MM-DD"})
			return
		}
	}

	entry, err := h.service.CreateEntry(c.Request.Context(), &domain.ScheduleEntry{
		ProductID:       req.ProductID,
		ScheduledDate:   scheduled,
		ProductionLine:  req.ProductionLine,
		PlannedQuantity: req.PlannedQuantity,
		Priority:        domain.ParseSchedulePriority(req.Priority),
		Notes:           req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

type updateStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	ActualQuantity int    `json:"actual_quantity"`
}

func (h *ScheduleHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status update", "details": err.Error()})
		return
	}

	entry, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.ActualQuantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown schedule status", "details": req.Status})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule entry not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update schedule entry", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}
