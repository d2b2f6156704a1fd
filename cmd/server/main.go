package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"workoutlog/internal/api"
	"workoutlog/internal/config"
	"workoutlog/internal/service"
	"workoutlog/internal/store"
)

func main() {
	log.Println("Starting Workout Log Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database ---
	st, err := store.Open(cfg.Database.Path, cfg.Database.ForeignKeys)
	if err != nil {
		log.Fatalf("FATAL: Could not open database: %v", err)
	}
	defer func() {
		log.Println("Closing database...")
		if err := st.Close(); err != nil {
			log.Printf("ERROR: Failed to close database: %v", err)
		}
	}()
	log.Printf("Database ready at %s (foreign keys: %v).", cfg.Database.Path, cfg.Database.ForeignKeys)

	// --- Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(st, cfg.JWT.Secret, cfg.JWT.Expiration)
	workoutService := service.NewWorkoutService(st)
	exerciseService := service.NewExerciseService(st)
	biometricsService := service.NewBiometricsService(st)

	// --- Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, workoutService, exerciseService, biometricsService)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
