package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withTraceID,
		withLogging,
		h.metrics.instrument,
		middleware.Recoverer,
	)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(h.withSession, h.consentGate)

	// sub-routers copy these when mounted, so they go first
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// operational routes, outside the gate and uncompressed
	router.Get("/healthz", h.healthz)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	// pages guarded by the consent gate
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/login", h.loginPage)
		r.Get("/", h.chatPage)
	})

	router.Route("/api", func(r chi.Router) {
		r.Use(h.cors(), withGZip)

		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.With(h.limitLogin).Post("/login", h.login)
			r.Post("/signup", h.signup)
			r.Post("/logout", h.logout)
			r.Get("/session", h.getSession)
			r.With(h.requireSession).Post("/session", h.refreshSession)
		})

		r.With(h.requireSession).Post("/consent", h.submitConsent)

		r.Route("/chat", func(r chi.Router) {
			r.Use(h.requireConsent)
			r.Post("/messages", h.sendMessage)
			r.Post("/history", h.fetchHistory)
			r.Get("/sessions", h.listSessions)
			r.Post("/sessions", h.newSession)
		})
	})

	return router
}

// cors allows the configured browser origins to call the API with
// credentials. Without origins no CORS headers are emitted.
func (h *Handler) cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
