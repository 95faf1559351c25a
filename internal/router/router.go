package router

import (
	"net/http"

	"feedback-collector/internal/handlers"
	customMiddleware "feedback-collector/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	Feedback    *handlers.FeedbackHandler
	Pages       *handlers.PageHandler
	Health      *handlers.HealthHandler
	Sessions    *customMiddleware.Sessions
	CORSOrigins []string
}

func New(opts Options) http.Handler {
	r := chi.NewRouter()

	// Global middleware; request logging is layered on by the caller
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if opts.Health != nil {
		r.Get("/health", opts.Health.Check)
	}

	// Pages
	r.Get("/", opts.Pages.Page("index.html"))
	r.Get("/results", opts.Pages.Page("results.html"))

	// Two-step form (session cookie required to carry step one into step two)
	r.Group(func(r chi.Router) {
		r.Use(opts.Sessions.Load)

		r.Post("/submit-part1", opts.Feedback.SubmitStepOne)
		r.Post("/submit-part2", opts.Feedback.SubmitStepTwo)
	})

	r.Get("/api/feedback-stats", opts.Feedback.GetStats)

	// Remaining static assets (feedback2.html, thankyou.html, css, ...)
	r.Handle("/*", opts.Pages.Files())

	return r
}
