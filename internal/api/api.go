// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/cornexhq/cornex-connect/internal/api/handlers"
	"github.com/cornexhq/cornex-connect/internal/api/middleware"
	"github.com/cornexhq/cornex-connect/internal/currency"
	"github.com/cornexhq/cornex-connect/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Inventory      *service.InventoryService
	Catalog        *service.CatalogService
	Schedule       *service.ScheduleService
	Insight        *service.InsightService
	Network        *service.NetworkService
	Currency       *currency.Converter
	DefaultCountry string
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Inventory != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.Inventory)
			inventoryGroup := apiGroup.Group("/inventory")
			{
				inventoryGroup.GET("", inventoryHandler.GetInventory)
				inventoryGroup.GET("/warehouses", inventoryHandler.GetWarehouses)
				inventoryGroup.GET("/recommendations", inventoryHandler.GetRecommendations)
				inventoryGroup.POST("/recommendations", inventoryHandler.ScoreRecords)
				inventoryGroup.GET("/recommendations/export", inventoryHandler.ExportRecommendations)
			}
		}

		if services.Catalog != nil {
			productHandler := handlers.NewProductHandler(services.Catalog)
			productGroup := apiGroup.Group("/products")
			{
				productGroup.GET("", productHandler.ListProducts)
				productGroup.GET("/categories", productHandler.ListCategories)
				productGroup.GET("/:id", productHandler.GetProduct)
			}
		}

		if services.Schedule != nil {
			scheduleHandler := handlers.NewScheduleHandler(services.Schedule)
			scheduleGroup := apiGroup.Group("/schedule")
			{
				scheduleGroup.GET("", scheduleHandler.GetMonth)
				scheduleGroup.GET("/day", scheduleHandler.GetDay)
				scheduleGroup.POST("", scheduleHandler.CreateEntry)
				scheduleGroup.PUT("/:id/status", scheduleHandler.UpdateStatus)
			}
		}

		if services.Network != nil {
			networkHandler := handlers.NewNetworkHandler(services.Network)
			apiGroup.GET("/distributors", networkHandler.ListDistributors)
			apiGroup.GET("/distributors/countries", networkHandler.ListCountries)
			apiGroup.GET("/achievements", networkHandler.ListAchievements)
			apiGroup.POST("/achievements/:id/unlock", networkHandler.UnlockAchievement)
			apiGroup.GET("/audit", networkHandler.ListAuditEntries)
		}

		if services.Insight != nil {
			insightHandler := handlers.NewInsightHandler(services.Insight, services.DefaultCountry)
			apiGroup.POST("/insights/mood", insightHandler.SuggestMood)
		}

		if services.Currency != nil {
			currencyHandler := handlers.NewCurrencyHandler(services.Currency)
			apiGroup.GET("/currencies", currencyHandler.ListRates)
			apiGroup.GET("/currencies/convert", currencyHandler.Convert)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
