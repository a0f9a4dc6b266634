package rest

import (
	"log/slog"

	"github.com/frahmantamala/rbac-console/internal/permission"
	"github.com/frahmantamala/rbac-console/internal/role"
	"github.com/frahmantamala/rbac-console/internal/shell"
	"github.com/frahmantamala/rbac-console/internal/transport/middleware"
	"github.com/frahmantamala/rbac-console/internal/transport/swagger"
	"github.com/frahmantamala/rbac-console/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, shellHandler *shell.Handler, userHandler *user.Handler, roleHandler *role.Handler, permissionHandler *permission.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(
		userHandler.Panel,
		roleHandler.Panel,
		permissionHandler.Panel,
	)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get(swagger.SpecPath, swagger.SpecHandler())
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match the OpenAPI server url
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/shell", shellHandler.Routes)
		r.Route("/users", userHandler.Routes)
		r.Route("/roles", roleHandler.Routes)
		r.Route("/permissions", permissionHandler.Routes)
	})
}
