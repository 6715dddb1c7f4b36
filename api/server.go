package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"prms/backend/handlers"
	"prms/backend/middleware"
	"prms/backend/services"
	"prms/backend/store"
)

// Server wires the record store to its HTTP collaborator surface. The
// UI layer talks only to these routes; it never touches the
// collections directly.
type Server struct {
	store  *store.Store
	tokens *services.TokenManager
	router *mux.Router
}

// NewServer creates a new API server around an already-constructed
// store.
func NewServer(st *store.Store, tokens *services.TokenManager, log *logrus.Logger) *Server {
	s := &Server{
		store:  st,
		tokens: tokens,
		router: mux.NewRouter(),
	}

	s.router.Use(middleware.EnableCORS)
	s.router.Use(middleware.RequestLogging(log))

	// Register routes with both direct paths and /api prefix to keep
	// the frontend dev proxy and direct deploys working.
	s.registerRoutes(s.router, log)
	s.registerRoutes(s.router.PathPrefix("/api").Subrouter(), log)

	return s
}

func (s *Server) registerRoutes(r *mux.Router, log *logrus.Logger) {
	auth := handlers.NewAuthHandler(s.store, s.tokens, log)
	properties := handlers.NewPropertyHandler(s.store)
	tenants := handlers.NewTenantHandler(s.store)
	payments := handlers.NewPaymentHandler(s.store)
	expenses := handlers.NewExpenseHandler(s.store)
	users := handlers.NewUserHandler(s.store)
	logs := handlers.NewLogHandler(s.store)
	history := handlers.NewHistoryHandler(s.store)
	reports := handlers.NewReportHandler(s.store)

	// Public routes (no auth required)
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")
	r.HandleFunc("/login", auth.Login).Methods("POST", "OPTIONS")

	// Create a subrouter for authenticated routes
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(s.tokens))

	protected.HandleFunc("/properties", properties.ListProperties).Methods("GET")
	protected.HandleFunc("/properties", properties.CreateProperty).Methods("POST")
	protected.HandleFunc("/units", properties.ListUnits).Methods("GET")
	protected.HandleFunc("/units", properties.CreateUnit).Methods("POST")

	protected.HandleFunc("/tenants", tenants.ListTenants).Methods("GET")
	protected.HandleFunc("/tenants", tenants.CreateTenant).Methods("POST")
	protected.HandleFunc("/tenants/{id}/status", tenants.UpdateTenantStatus).Methods("PUT")

	protected.HandleFunc("/payments", payments.ListPayments).Methods("GET")
	protected.HandleFunc("/payments", payments.CreatePayment).Methods("POST")
	protected.HandleFunc("/payments/{id}/correct", payments.CorrectPayment).Methods("POST")

	protected.HandleFunc("/expenses", expenses.ListExpenses).Methods("GET")
	protected.HandleFunc("/expenses", expenses.CreateExpense).Methods("POST")

	protected.HandleFunc("/users", users.ListUsers).Methods("GET")
	protected.HandleFunc("/users", users.CreateEmployee).Methods("POST")
	protected.HandleFunc("/users/{id}", users.UpdateUser).Methods("PUT")
	protected.HandleFunc("/users/{id}/permissions", users.UpdateUserPermissions).Methods("PUT")

	protected.HandleFunc("/logs", logs.ListLogs).Methods("GET")
	protected.HandleFunc("/logs", logs.ClearLogs).Methods("DELETE")

	protected.HandleFunc("/history/undo", history.Undo).Methods("POST")
	protected.HandleFunc("/history/redo", history.Redo).Methods("POST")

	protected.HandleFunc("/reports/summary", reports.Summary).Methods("GET")
	protected.HandleFunc("/reports/monthly", reports.Monthly).Methods("GET")
	protected.HandleFunc("/reports/yearly", reports.Yearly).Methods("GET")
	protected.HandleFunc("/reports/export", reports.Export).Methods("GET")
}

// Handler returns the HTTP handler for the API server.
func (s *Server) Handler() http.Handler {
	return s.router
}
