package handler

import (
	"net/http"

	"floreria-be/internal/config"
	"floreria-be/internal/logger"
	"floreria-be/internal/middleware"
	"floreria-be/internal/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Store    *StoreHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Orders   *OrdersHandler
	Reports  *ReportsHandler
	Users    *UsersHandler
}

func NewRouter(cfg *config.Config, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.Metrics)
	r.Use(middleware.Authenticate)
	r.Use(middleware.RateLimit)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", h.Auth.Init)
		r.Route("/store", h.Store.Init)

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			h.Cart.Init(r)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			h.Checkout.Init(r)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			h.Orders.Init(r)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleAdmin))
				h.Orders.InitAdmin(r)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleSupervisor))
			h.Reports.Init(r)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(user.RoleAdmin))
			r.Route("/users", h.Users.Init)
			h.Store.InitAdmin(r)
		})
	})

	return r
}
