package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/splitease/backend/internal/auth"
	"github.com/splitease/backend/internal/middleware"
	"github.com/splitease/backend/internal/service"
	"github.com/splitease/backend/internal/storage"
)

// NewRouter wires the services and handlers into the full HTTP surface.
// Signup and login are open; everything else requires a valid token.
func NewRouter(store storage.Store, jwtManager *auth.JWTManager) chi.Router {
	tripSvc := service.NewTripService(store)
	expenseSvc := service.NewExpenseService(store)
	settlementSvc := service.NewSettlementService(store)
	reportSvc := service.NewReportService(store)
	authSvc := service.NewAuthService(store, jwtManager)

	authHandler := NewAuthHandler(authSvc)
	tripHandler := NewTripHandler(tripSvc, reportSvc)
	expenseHandler := NewExpenseHandler(expenseSvc)
	settlementHandler := NewSettlementHandler(settlementSvc)
	reportHandler := NewReportHandler(reportSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(jwtManager))

			r.Post("/trips", tripHandler.CreateTrip)
			r.Get("/trips/{tripID}", tripHandler.GetTrip)
			r.Delete("/trips/{tripID}", tripHandler.DeleteTrip)
			r.Post("/trips/{tripID}/members", tripHandler.AddMember)
			r.Get("/trips/{tripID}/members", tripHandler.ListMembers)

			r.Post("/trips/{tripID}/expenses", expenseHandler.RecordExpense)
			r.Get("/trips/{tripID}/expenses", expenseHandler.ListExpenses)
			r.Delete("/expenses/{expenseID}", expenseHandler.DeleteExpense)

			r.Post("/debts/{debtID}/settle", settlementHandler.SettleDebt)
			r.Post("/trips/{tripID}/settle/{debtorID}/{creditorID}", settlementHandler.SettleDebtBetween)

			r.Get("/home", reportHandler.Home)
		})
	})

	return r
}
