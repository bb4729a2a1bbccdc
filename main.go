package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-site-backend/config"
	"hotel-site-backend/controllers"
	"hotel-site-backend/realtime"
	"hotel-site-backend/routes"
	"hotel-site-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set. Cannot issue sessions.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	hub := realtime.NewHub()

	authService := services.NewAuthService(db, jwtSecret)
	settingsService := services.NewSettingsService(db, hub)
	uploadService := services.NewUploadService(services.NewStorageFromEnv())

	router := routes.SetupRouter(routes.Controllers{
		Rooms:       controllers.NewRoomController(db, hub),
		Facilities:  controllers.NewFacilityController(db, hub),
		Services:    controllers.NewServiceController(db, hub),
		Reviews:     controllers.NewReviewController(db, hub),
		FooterLogos: controllers.NewFooterLogoController(db, hub),
		Settings:    controllers.NewSettingsController(settingsService),
		Auth:        controllers.NewAuthController(authService),
		Profile:     controllers.NewProfileController(authService, uploadService),
		Uploads:     controllers.NewUploadController(uploadService),
		Dashboard:   controllers.NewDashboardController(db),
		Realtime:    controllers.NewRealtimeController(hub),
		AuthService: authService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
