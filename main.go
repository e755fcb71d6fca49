// File: gatherly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gatherly/config"
	"gatherly/database"
	activityRepo "gatherly/database/repository/activity"
	"gatherly/handlers"
	"gatherly/routes"
	"gatherly/services/calendar"
	ai "gatherly/services/intelligence"
	"gatherly/services/scheduling"
	"gatherly/services/weather"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Collaborators.
	calendarSvc := calendar.NewGoogleCalendarService(config.AppConfig.GoogleCalendarCredentials)
	if !calendarSvc.IsEnabled() {
		logger.Warn("calendar collaborator disabled; organizer availability will be simulated")
	}

	weatherSvc := weather.NewOpenMeteoService(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.WeatherCacheTTLMin)*time.Minute,
	)

	var reasoner scheduling.ReasoningStrategy = &scheduling.RuleReasoner{}
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Warn("gemini client unavailable, using rule-based reasoning", zap.Error(err))
		} else {
			reasoner = &scheduling.AIReasoner{Gen: gemini, Fallback: &scheduling.RuleReasoner{}}
		}
	} else {
		logger.Warn("no gemini api key configured, using rule-based reasoning")
	}

	// Services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Calendar: calendarSvc,
		Weather:  weatherSvc,
		Reasoner: reasoner,
	}

	// Repositories and handlers.
	activitiesRepo := activityRepo.NewMongoActivityRepo()
	schedulingHandler := handlers.NewSchedulingHandler(schedulingService, activitiesRepo, logger)

	routes.RegisterRoutes(router, schedulingHandler)

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
