package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"quickcowork/handlers"
	"quickcowork/middleware"
	"quickcowork/models"
)

// RegisterSpaceRoutes registers the public browse endpoints.
func RegisterSpaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/spaces")
	{
		api.GET("", hb.SearchSpacesHandler)
		api.GET("/:id", hb.GetSpaceByIDHandler)
	}
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.CurrentUserHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for quotes and bookings.
// Quotes are public; everything else requires authentication.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.POST("/quote", hb.QuoteHandler)

		protected := bookingGroup.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/validate", hb.ValidateDraftHandler)
		protected.POST("", hb.SubmitBookingHandler)
		protected.GET("/last", hb.LastBookingHandler)
	}
}

// RegisterDashboardRoutes sets up the role-dispatched dashboard and the
// owner listing endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	dash := r.Group("/api/dashboard")
	dash.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	dash.GET("", hb.GetDashboardHandler)

	listings := r.Group("/api/listings")
	listings.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleOwner))
	listings.POST("", hb.CreateListingHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/stats", hb.GetAdminStatsHandler)
		adminGroup.GET("/users", hb.GetAllUsersHandler)
		adminGroup.DELETE("/users/:id", hb.DeleteUserHandler)
		adminGroup.GET("/listings/pending", hb.GetPendingListingsHandler)
		adminGroup.POST("/listings/:id/approve", hb.ApproveListingHandler)
		adminGroup.POST("/listings/:id/reject", hb.RejectListingHandler)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/chat", hb.ChatHandler)
		api.GET("/history", hb.ChatHistoryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm QuickCoWork"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSpaceRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterAIRoutes(r, hb)
}
