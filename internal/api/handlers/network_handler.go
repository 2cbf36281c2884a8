package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/cornexhq/cornex-connect/internal/service"
	"github.com/gin-gonic/gin"
)

// NetworkHandler serves the distributor map, achievements and audit pages.
type NetworkHandler struct {
	service *service.NetworkService
}

func NewNetworkHandler(service *service.NetworkService) *NetworkHandler {
	return &NetworkHandler{service: service}
}

func (h *NetworkHandler) ListDistributors(c *gin.Context) {
	country := strings.ToUpper(strings.TrimSpace(c.Query("country")))

	distributors, err := h.service.ListDistributors(c.Request.Context(), country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch distributors", "details": err.Error()})
		return
	}

	if distributors == nil {
		distributors = make([]domain.Distributor, 0)
	}

	c.JSON(http.StatusOK, gin.H{"distributors": distributors})
}

func (h *NetworkHandler) ListCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch countries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

func (h *NetworkHandler) ListAchievements(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user query parameter is required"})
		return
	}

	achievements, err := h.service.ListAchievements(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch achievements", "details": err.Error()})
		return
	}

	if achievements == nil {
		achievements = make([]domain.Achievement, 0)
	}

	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

func (h *NetworkHandler) UnlockAchievement(c *gin.Context) {
	err := h.service.UnlockAchievement(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "achievement not found or already unlocked"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unlock achievement", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unlocked": true})
}

func (h *NetworkHandler) ListAuditEntries(c *gin.Context) {
	filter := domain.AuditFilter{
		Page:     1,
		PageSize: 50,
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 0 {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("page_size", "50")); err == nil && size > 0 {
		filter.PageSize = size
	}
	filter.EntityType = strings.TrimSpace(c.Query("entity_type"))

	entries, total, err := h.service.ListAuditEntries(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch audit trail", "details": err.Error()})
		return
	}

	if entries == nil {
		entries = make([]domain.AuditEntry, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
	})
}
