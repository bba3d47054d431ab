package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/portfolio-qa-api/internal/application/question"
	"github.com/portfolio-qa-api/internal/application/verification"
	"github.com/portfolio-qa-api/internal/config"
	"github.com/portfolio-qa-api/internal/transport/http/handler"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Store    verification.Store
	Sender   verification.Sender
	Answerer question.Answerer
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	verificationSvc := verification.NewService(deps.Store, deps.Sender)
	questionSvc := question.NewService(verificationSvc, deps.Answerer, cfg.ProfilePath)

	healthH := handler.NewHealthHandler()
	verificationH := handler.NewVerificationHandler(verificationSvc)
	askH := handler.NewAskHandler(questionSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/verification/{action}", verificationH.Action)

		// Privileged: rejected unless the email completed verification.
		r.Post("/ask", askH.Ask)
	})

	return r
}
