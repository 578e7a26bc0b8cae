// Package server exposes the aggregation views and the answer service as a
// JSON API, for inspection UIs that consume the core independently of any
// terminal session.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/funddesk/fundchat"
	"github.com/funddesk/fundchat/agent"
)

// NewRouter creates and configures the HTTP router over the loaded store.
func NewRouter(store *fundchat.Store, assistant *agent.Assistant) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	h := &handler{store: store, assistant: assistant}

	r.Route("/api", func(r chi.Router) {
		r.Get("/system/health", h.Health)
		r.Get("/funds", h.Funds)
		r.Get("/funds/{fund}/summary", h.FundSummary)
		r.Get("/overview", h.Overview)
		r.Get("/performance", h.Performance)
		r.Get("/holdings/top", h.TopHoldings)
		r.Get("/custodians", h.Custodians)
		r.Get("/security-types", h.SecurityTypes)
		r.Get("/search", h.Search)
		r.Post("/ask", h.Ask)
	})

	return r
}
