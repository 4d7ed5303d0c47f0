package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database"
	"teampulse-backend/internal/handlers"
	customMiddleware "teampulse-backend/internal/middleware"
	"teampulse-backend/internal/notify"
	"teampulse-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	// Stores: MongoDB when configured, otherwise the seeded in-memory
	// demo dataset.
	var userStore repository.UserStore
	var feedbackStore repository.FeedbackStore

	if cfg.MongoURI != "" {
		db, err := database.Connect(cfg.MongoURI, cfg.DBName)
		if err != nil {
			log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
		}
		log.Println("✅ Connected to MongoDB")

		mongoUsers := repository.NewMongoUserStore(db)
		mongoFeedback := repository.NewMongoFeedbackStore(db)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := mongoUsers.EnsureIndexes(ctx); err != nil {
			log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
		}
		if err := mongoFeedback.EnsureIndexes(ctx); err != nil {
			log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
		}
		if err := mongoUsers.Seed(ctx, repository.SeedUsers()); err != nil {
			log.Printf("⚠️  Warning: failed to seed users: %v", err)
		}

		userStore = mongoUsers
		feedbackStore = mongoFeedback
	} else {
		log.Println("✅ Using in-memory stores with demo dataset")
		userStore = repository.NewMemoryUserStore(repository.SeedUsers())
		feedbackStore = repository.NewMemoryFeedbackStore(repository.SeedFeedback())
	}

	// Notifier: Resend when configured, logging mock otherwise.
	var notifier notify.Notifier
	if cfg.ResendAPIKey != "" && cfg.FromEmail != "" {
		notifier = notify.NewResendNotifier(cfg.ResendAPIKey, cfg.FromEmail)
	} else {
		notifier = notify.NewMockNotifier()
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userStore, cfg.JWTSecret, cfg.DemoMode)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackStore, userStore, notifier)
	userHandler := handlers.NewUserHandler(userStore)
	dashboardHandler := handlers.NewDashboardHandler(feedbackStore, userStore)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"teampulse-backend"}`))
	})

	// Public routes (no auth required)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected routes (JWT required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.JWTAuth(cfg.JWTSecret))

		r.Get("/api/auth/me", authHandler.Me)
		r.Get("/api/users/team", userHandler.Team)

		r.Post("/api/feedback", feedbackHandler.Create)
		r.Get("/api/feedback/given", feedbackHandler.Given)
		r.Get("/api/feedback/received", feedbackHandler.Received)
		r.Put("/api/feedback/{id}", feedbackHandler.Update)
		r.Put("/api/feedback/{id}/acknowledge", feedbackHandler.Acknowledge)

		r.Get("/api/dashboard/manager", dashboardHandler.Manager)
		r.Get("/api/dashboard/employee", dashboardHandler.Employee)
	})

	// Start server
	if cfg.DemoMode {
		log.Println("⚠️  Demo mode: any non-empty password is accepted for known accounts")
	}
	log.Printf("🚀 TeamPulse backend starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
