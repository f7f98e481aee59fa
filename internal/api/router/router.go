package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidbrief/backend/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		if deps.DB != nil {
			if err := deps.DB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"service": "vidbrief-api",
					"error":   err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "vidbrief-api",
		})
	})

	summaryHandler := handler.NewSummaryHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		summaries := v1.Group("/summaries")
		{
			// POST /api/v1/summaries - Upload a video and create a summary
			summaries.POST("", summaryHandler.CreateSummary)

			// GET /api/v1/summaries?userId=... - List a user's summaries
			summaries.GET("", summaryHandler.ListSummaries)

			// GET /api/v1/summaries/:summary_id - Get a single summary
			summaries.GET("/:summary_id", summaryHandler.GetSummary)
		}
	}

	return r
}
