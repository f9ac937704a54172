package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	userRepo "quickcowork/database/repository/user"
	"quickcowork/handlers"
)

func TestRegisterRoutesExposesFullSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	noop := func(*gin.Context) {}
	hb := &handlers.HandlerBundle{
		UserRepo: userRepo.NewMemoryUserRepo(),

		SearchSpacesHandler: noop,
		GetSpaceByIDHandler: noop,

		RegisterUserHandler:     noop,
		AuthenticateUserHandler: noop,
		CurrentUserHandler:      noop,

		QuoteHandler:         noop,
		ValidateDraftHandler: noop,
		SubmitBookingHandler: noop,
		LastBookingHandler:   noop,

		GetDashboardHandler:  noop,
		CreateListingHandler: noop,

		GetAdminStatsHandler:      noop,
		GetAllUsersHandler:        noop,
		DeleteUserHandler:         noop,
		GetPendingListingsHandler: noop,
		ApproveListingHandler:     noop,
		RejectListingHandler:      noop,

		ChatHandler:        noop,
		ChatHistoryHandler: noop,
	}

	r := gin.New()
	RegisterRoutes(r, hb)

	registered := make(map[string]bool)
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	for _, route := range []string{
		"GET /health",
		"GET /api/spaces",
		"GET /api/spaces/:id",
		"POST /api/users/register",
		"POST /api/users/login",
		"GET /api/users/me",
		"POST /api/bookings/quote",
		"POST /api/bookings/validate",
		"POST /api/bookings",
		"GET /api/bookings/last",
		"GET /api/dashboard",
		"POST /api/listings",
		"GET /api/admin/stats",
		"GET /api/admin/users",
		"DELETE /api/admin/users/:id",
		"GET /api/admin/listings/pending",
		"POST /api/admin/listings/:id/approve",
		"POST /api/admin/listings/:id/reject",
		"POST /api/ai/chat",
		"GET /api/ai/history",
	} {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
