package http

import (
	"net/http"
	"time"

	"github.com/ecofinds/marketplace/internal/catalog"
	"github.com/ecofinds/marketplace/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	Session        *session.Session
	Catalog        *catalog.Service
	SessionConfig  session.Config
	RequestTimeout time.Duration
}

// NewRouter wires every storefront endpoint under /api/v1
func NewRouter(cfg RouterConfig) chi.Router {
	stateHandler := NewStateHandler(cfg.Session)
	sessionHandler := NewSessionHandler(cfg.Session, cfg.SessionConfig)
	productHandler := NewProductHandler(cfg.Session, cfg.Catalog, cfg.SessionConfig, cfg.RequestTimeout)
	cartHandler := NewCartHandler(cfg.Session)
	chatHandler := NewChatHandler(cfg.Session)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// long lived, kept out of the timeout and compression group
		r.Get("/chat/ws", chatHandler.Stream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
			r.Use(middleware.Compress(5))

			r.Get("/state", stateHandler.GetState)
			r.Get("/screen", stateHandler.GetScreen)
			r.Post("/actions", stateHandler.Dispatch)
			r.Put("/view", stateHandler.SetView)
			r.Post("/theme/toggle", stateHandler.ToggleTheme)
			r.Put("/filters", stateHandler.SetFilters)

			r.Post("/session/login", sessionHandler.Login)
			r.Post("/session/logout", sessionHandler.Logout)
			r.Patch("/profile", sessionHandler.UpdateProfile)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.List)
				r.Post("/", productHandler.Create)
				r.Get("/featured", productHandler.Featured)
				r.Post("/describe", productHandler.Describe)
				r.Get("/{id}", productHandler.Get)
				r.Post("/{id}/select", productHandler.Select)
			})
			r.Delete("/selection", productHandler.ClearSelection)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Post("/items", cartHandler.AddItem)
				r.Delete("/items/{product_id}", cartHandler.RemoveItem)
				r.Post("/items/{product_id}/decrement", cartHandler.DecrementItem)
				r.Post("/toggle", cartHandler.Toggle)
				r.Post("/checkout", cartHandler.Checkout)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Post("/open", chatHandler.Open)
				r.Post("/close", chatHandler.Close)
				r.Get("/messages", chatHandler.Messages)
				r.Post("/messages", chatHandler.Send)
			})
		})
	})

	return r
}
