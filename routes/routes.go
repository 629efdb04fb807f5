package routes

import (
	"net/http"
	"time"

	"malone/handlers"
	"malone/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	bookingGroup := r.Group("/api/booking")
	bookingGroup.Use(middleware.AgentAuthMiddleware())
	{
		bookingGroup.POST("/session", bh.StartSession)
		bookingGroup.GET("/session/:sessionID", bh.GetSession)
		bookingGroup.POST("/confirm", bh.Confirm)
		bookingGroup.DELETE("/session/:sessionID", bh.Cancel)
	}
}

// RegisterDispatchRoutes sets up the stateless scheduling lookups and the
// office's booking views.
func RegisterDispatchRoutes(r *gin.Engine, rh *handlers.BookingsHandler) {
	api := r.Group("/api")
	api.Use(middleware.AgentAuthMiddleware())
	{
		api.GET("/availability", handlers.Availability)
		api.GET("/appliances", handlers.ApplianceMenu)
		api.GET("/zone", handlers.ZoneForDate)
		api.GET("/bookings", rh.List)
		api.GET("/bookings/:id", rh.Get)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/healthz", handlers.Health)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Malone's dispatch scheduler"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, rh *handlers.BookingsHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, bh)
	RegisterDispatchRoutes(r, rh)
	RegisterHealthRoute(r)
}
