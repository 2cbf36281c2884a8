package handlers

import (
	"net/http"
	"strings"

	"github.com/cornexhq/cornex-connect/internal/service"
	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	service        *service.InsightService
	defaultCountry string
}

func NewInsightHandler(service *service.InsightService, defaultCountry string) *InsightHandler {
	return &InsightHandler{service: service, defaultCountry: defaultCountry}
}

type moodRequest struct {
	Country string `json:"country"`
}

func (h *InsightHandler) SuggestMood(c *gin.Context) {
	var req moodRequest
	// body is optional; an empty request falls back to the default country
	_ = c.ShouldBindJSON(&req)

	country := strings.ToUpper(strings.TrimSpace(req.Country))
	if country == "" {
		country = h.defaultCountry
	}

	suggestion, err := h.service.SuggestMood(c.Request.Context(), country)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate mood suggestion", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
