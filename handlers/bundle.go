package handlers

import (
	"github.com/gin-gonic/gin"

	userRepo "quickcowork/database/repository/user"
)

// HandlerBundle groups every route handler plus the repositories the
// middleware needs, so routes.RegisterRoutes takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Browse endpoints.
	SearchSpacesHandler gin.HandlerFunc
	GetSpaceByIDHandler gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	CurrentUserHandler      gin.HandlerFunc

	// Booking endpoints.
	QuoteHandler         gin.HandlerFunc
	ValidateDraftHandler gin.HandlerFunc
	SubmitBookingHandler gin.HandlerFunc
	LastBookingHandler   gin.HandlerFunc

	// Dashboard and listing endpoints.
	GetDashboardHandler  gin.HandlerFunc
	CreateListingHandler gin.HandlerFunc

	// Admin endpoints.
	GetAdminStatsHandler      gin.HandlerFunc
	GetAllUsersHandler        gin.HandlerFunc
	DeleteUserHandler         gin.HandlerFunc
	GetPendingListingsHandler gin.HandlerFunc
	ApproveListingHandler     gin.HandlerFunc
	RejectListingHandler      gin.HandlerFunc

	// AI endpoints.
	ChatHandler        gin.HandlerFunc
	ChatHistoryHandler gin.HandlerFunc
}
