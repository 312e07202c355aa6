package routes

import (
	"net/http"
	"time"

	"github.com/ariyanssg/event-mangement-api/internal/container"
	"github.com/ariyanssg/event-mangement-api/internal/handlers"
	"github.com/ariyanssg/event-mangement-api/internal/middleware"
	"github.com/ariyanssg/event-mangement-api/internal/models"
	"github.com/ariyanssg/event-mangement-api/internal/validation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 10 << 20 // 10 MB

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	cfg := c.Config

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if cfg.IsProduction() {
		// Cross-origin access is restricted to the configured base URL in
		// production and left open everywhere else.
		corsConfig.AllowOrigins = []string{cfg.APIBaseURL}
	} else {
		corsConfig.AllowCredentials = false
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.RateLimiter())
	r.Use(middleware.BodySizeLimit(maxBodyBytes))
	r.Use(gin.Recovery())

	// Health check
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Event Management API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Admin routes. These are admin-only by convention; no auth is
	// enforced here.
	admin := r.Group("/api/v1/admin")
	{
		admin.POST("/addEvent", validation.ValidateEvent(), handlers.AddEvent(c.EventService, cfg))
		admin.PUT("/updateEvent", validation.ValidateEventUpdate(), handlers.UpdateEvent(c.EventService, cfg))
		admin.GET("/getEventData/:rid", handlers.GetEventData(c.EventService, cfg))
		admin.DELETE("/DeleteEvent", validation.ValidateEventID(), handlers.DeleteEvent(c.EventService, cfg))
	}

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse("Route not found"))
	})

	return r
}
