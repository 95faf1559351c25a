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

	"feedback-collector/internal/config"
	"feedback-collector/internal/database"
	"feedback-collector/internal/handlers"
	"feedback-collector/internal/middleware"
	"feedback-collector/internal/notify"
	"feedback-collector/internal/repository"
	"feedback-collector/internal/router"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; deployments export the variables themselves
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	store, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Disconnect(disconnectCtx); err != nil {
			log.Printf("⚠️  Error disconnecting from MongoDB: %v", err)
		}
	}()

	// Initialize repositories
	feedbackRepo := repository.NewFeedbackRepo(store)
	pendingRepo := repository.NewPendingRepo(store)

	// Ensure indexes
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := feedbackRepo.EnsureIndexes(indexCtx); err != nil {
		// Without the unique index duplicate employees cannot be rejected
		log.Fatalf("❌ Failed to create feedback indexes: %v", err)
	}
	if err := pendingRepo.EnsureIndexes(indexCtx); err != nil {
		log.Printf("⚠️  Warning: failed to create pending submission indexes: %v", err)
	}

	var notifier notify.Notifier = notify.NewLogNotifier()
	if cfg.ResendAPIKey != "" {
		notifier = notify.NewResendNotifier(cfg.ResendAPIKey, cfg.FromEmail)
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, confirmations go to the log")
	}

	sessions := middleware.NewSessions(cfg.SessionSecret, cfg.SessionTTL)

	// Initialize handlers
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo, pendingRepo, sessions, notifier, handlers.RatingPolicy{
		Strict: cfg.StrictRatings,
		Min:    cfg.RatingMin,
		Max:    cfg.RatingMax,
	})

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: chimiddleware.Logger(router.New(router.Options{
			Feedback:    feedbackHandler,
			Pages:       handlers.NewPageHandler(cfg.StaticDir),
			Health:      handlers.NewHealthHandler(store),
			Sessions:    sessions,
			CORSOrigins: cfg.CORSOrigins,
		})),
		ReadHeaderTimeout: 5 * time.Second,
	}

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️  Shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("🚀 Feedback collector starting on http://localhost:%s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("❌ Server failed: %v", err)
	}
	<-drained
	log.Println("👋 Server stopped")
}
