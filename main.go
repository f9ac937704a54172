// File: quickcowork/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"quickcowork/config"
	"quickcowork/database"
	recordsRepo "quickcowork/database/repository/records"
	spaceRepo "quickcowork/database/repository/space"
	userRepoPkg "quickcowork/database/repository/user"
	"quickcowork/handlers"
	"quickcowork/middleware"
	"quickcowork/routes"
	"quickcowork/services/booking"
	"quickcowork/services/catalog"
	"quickcowork/services/dashboard"
	ai "quickcowork/services/intelligence"
	"quickcowork/services/listing"
	"quickcowork/services/user"
	"quickcowork/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRecordsStore()
	utils.InitChatStore()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := spaceRepo.NewMemorySpaceRepo()
	records := recordsRepo.NewRedisRecordsRepo(utils.GetRecordsClient())

	var userRepo userRepoPkg.UserRepository
	switch config.AppConfig.UserStore {
	case "mongo":
		database.InitDB()
		userRepo = userRepoPkg.NewMongoUserRepo()
	default:
		userRepo = userRepoPkg.NewMemoryUserRepo()
	}

	// services.
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}

	userService := &user.DefaultUserService{Repo: userRepo}

	bookingService := &booking.DefaultBookingService{
		Catalog: catalogService,
		Records: records,
		Latency: 2 * time.Second,
	}

	listingService := &listing.DefaultListingService{Records: records}

	dashboardService := &dashboard.DefaultDashboardService{
		Records: records,
		Users:   userService,
	}

	historyStore := ai.NewRedisHistoryStore(utils.GetChatClient(), 50, 30*24*time.Hour)
	conciergeService := ai.NewDefaultConciergeService(config.AppConfig.GeminiAPIKey, historyStore)

	// handlers.
	spaceHandler := handlers.NewSpaceHandler(catalogService)
	userHandler := handlers.NewUserHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	listingHandler := handlers.NewListingHandler(listingService)
	adminHandler := handlers.NewAdminHandler(userService, listingService, dashboardService)
	aiHandler := handlers.NewAIHandler(conciergeService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Browse endpoints.
		SearchSpacesHandler: spaceHandler.SearchSpacesHandler,
		GetSpaceByIDHandler: spaceHandler.GetSpaceByIDHandler,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		CurrentUserHandler:      userHandler.CurrentUserHandler,

		// Booking endpoints.
		QuoteHandler:         bookingHandler.QuoteHandler,
		ValidateDraftHandler: bookingHandler.ValidateDraftHandler,
		SubmitBookingHandler: bookingHandler.SubmitBookingHandler,
		LastBookingHandler:   bookingHandler.LastBookingHandler,

		// Dashboard and listing endpoints.
		GetDashboardHandler:  dashboardHandler.GetDashboardHandler,
		CreateListingHandler: listingHandler.CreateListingHandler,

		// Admin endpoints.
		GetAdminStatsHandler:      adminHandler.GetAdminStatsHandler,
		GetAllUsersHandler:        adminHandler.GetAllUsersHandler,
		DeleteUserHandler:         adminHandler.DeleteUserHandler,
		GetPendingListingsHandler: adminHandler.GetPendingListingsHandler,
		ApproveListingHandler:     adminHandler.ApproveListingHandler,
		RejectListingHandler:      adminHandler.RejectListingHandler,

		// AI endpoints.
		ChatHandler:        aiHandler.ChatHandler,
		ChatHistoryHandler: aiHandler.ChatHistoryHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
