// File: malone/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"malone/config"
	"malone/cron"
	"malone/database"
	bookingRepo "malone/database/repository/booking"
	"malone/handlers"
	"malone/middleware"
	"malone/routes"
	"malone/services/booking"
	"malone/services/calendar"
	"malone/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories and external collaborators.
	bookings := bookingRepo.NewMongoBookingRepo()
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), config.SessionTTL)
	calendarGateway := calendar.NewComposioGateway()
	reminders := cron.NewAsynqReminderScheduler()

	// Services.
	bookingService := &booking.DefaultBookingSessionService{
		Store:     sessionStore,
		Calendar:  calendarGateway,
		Repo:      bookings,
		Reminders: reminders,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	bookingsHandler := handlers.NewBookingsHandler(bookings)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler, bookingsHandler)

	// Background workers and monitors.
	cron.InitReminderWorker(bookings)
	utils.StartHealthMonitor(map[string]*redis.Client{
		"sessions": utils.GetSessionCacheClient(),
	}, database.MongoClient)

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
