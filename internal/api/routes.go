package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// NewRouter assembles the API router with standard middleware and a
// service-wide rate limit.
func NewRouter(h *Handler, limit rate.Limit, burst int) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))
	r.Use(RateLimit(rate.NewLimiter(limit, burst)))

	r.Route("/api", func(r chi.Router) {
		r.Post("/checkins", h.CreateCheckin)
		r.Get("/checkins", h.ListCheckins)
		r.Post("/onboarding", h.RecordOnboarding)
		r.Get("/onboarding", h.GetOnboarding)
	})

	return r
}

// RateLimit rejects requests beyond the shared limiter's budget. Check-in
// traffic is low-volume by nature; this guards the generation endpoint
// from bursts.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				Error(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
