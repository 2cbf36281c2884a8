package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cornexhq/cornex-connect/internal/currency"
	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CurrencyHandler struct {
	converter *currency.Converter
}

func NewCurrencyHandler(converter *currency.Converter) *CurrencyHandler {
	return &CurrencyHandler{converter: converter}
}

func (h *CurrencyHandler) ListRates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rates": h.converter.Rates()})
}

func (h *CurrencyHandler) Convert(c *gin.Context) {
	amount, err := decimal.NewFromString(strings.TrimSpace(c.Query("amount")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to currency codes are required"})
		return
	}

	converted, err := h.converter.Convert(amount, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyUnknown) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown currency code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to convert amount", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"amount":    amount,
		"from":      strings.ToUpper(from),
		"to":        strings.ToUpper(to),
		"converted": converted,
	})
}
