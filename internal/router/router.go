package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/financeflowpro/backend/internal/handlers"
	"github.com/financeflowpro/backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	auth := middleware.NewMiddleware(deps.Firebase)
	approval := middleware.NewApprovalMiddleware(deps.UserSvc)

	ah := handlers.NewAuthHandlers(deps)
	adh := handlers.NewAdminHandlers(deps)
	ih := handlers.NewInvoiceHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	mh := handlers.NewMetricsHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.FirebaseAuth)

			// register/me/status stay reachable while pending
			r.Mount("/auth", ah.AuthRoutes())

			r.Group(func(r chi.Router) {
				r.Use(approval.RequireApproved)

				r.Mount("/invoices", ih.InvoiceRoutes())
				r.Mount("/transactions", th.TransactionRoutes())
				r.Mount("/metrics", mh.MetricsRoutes())

				r.Group(func(r chi.Router) {
					r.Use(approval.RequireAdmin)
					r.Mount("/admin/users", adh.AdminRoutes())
				})
			})
		})
	})

	return r
}
