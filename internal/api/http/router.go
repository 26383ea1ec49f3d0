// Package http wires the REST surface: JSON handlers over mux with JWT
// protected tenant routes.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/security"
	"gymdesk-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth       service.AuthService
	Admin      service.AdminService
	Member     service.MemberService
	Trainer    service.TrainerService
	Offering   service.OfferingService
	Billing    service.BillingService
	Expense    service.ExpenseService
	Payment    service.PaymentService
	GymClass   service.GymClassService
	Enrollment service.EnrollmentService
	Dashboard  service.DashboardService
}

// NewRouter builds the full route table. Everything under /api/v1 except
// the auth endpoints requires a valid access token.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public auth endpoints.
	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	// Tenant-scoped endpoints.
	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	memberHandler := NewMemberHandler(svcs.Member)
	protected.HandleFunc("/members", memberHandler.Create).Methods("POST")
	protected.HandleFunc("/members", memberHandler.List).Methods("GET")
	protected.HandleFunc("/members/{id:[0-9]+}", memberHandler.Get).Methods("GET")
	protected.HandleFunc("/members/{id:[0-9]+}", memberHandler.Update).Methods("PUT")
	protected.HandleFunc("/members/{id:[0-9]+}", memberHandler.Delete).Methods("DELETE")

	enrollmentHandler := NewEnrollmentHandler(svcs.Enrollment)
	protected.HandleFunc("/enrollments", enrollmentHandler.Enroll).Methods("POST")

	trainerHandler := NewTrainerHandler(svcs.Trainer)
	protected.HandleFunc("/trainers", trainerHandler.Create).Methods("POST")
	protected.HandleFunc("/trainers", trainerHandler.List).Methods("GET")
	protected.HandleFunc("/trainers/{id:[0-9]+}", trainerHandler.Get).Methods("GET")
	protected.HandleFunc("/trainers/{id:[0-9]+}", trainerHandler.Update).Methods("PUT")
	protected.HandleFunc("/trainers/{id:[0-9]+}", trainerHandler.Delete).Methods("DELETE")

	registerOfferingRoutes(protected, "/plans", NewOfferingHandler(svcs.Offering, domain.OfferingKindPlan))
	registerOfferingRoutes(protected, "/addons", NewOfferingHandler(svcs.Offering, domain.OfferingKindAddon))

	registerBillableRoutes(protected, "/memberships", NewBillableHandler(svcs.Billing, domain.BillableKindMembership))
	registerBillableRoutes(protected, "/member-addons", NewBillableHandler(svcs.Billing, domain.BillableKindAddon))

	expenseHandler := NewExpenseHandler(svcs.Expense)
	protected.HandleFunc("/expenses", expenseHandler.Create).Methods("POST")
	protected.HandleFunc("/expenses", expenseHandler.List).Methods("GET")
	protected.HandleFunc("/expenses/{id:[0-9]+}", expenseHandler.Get).Methods("GET")
	protected.HandleFunc("/expenses/{id:[0-9]+}", expenseHandler.Update).Methods("PUT")
	protected.HandleFunc("/expenses/{id:[0-9]+}/payments", expenseHandler.RecordPayment).Methods("POST")
	protected.HandleFunc("/expenses/{id:[0-9]+}", expenseHandler.Delete).Methods("DELETE")

	paymentHandler := NewPaymentHandler(svcs.Payment)
	protected.HandleFunc("/payments", paymentHandler.History).Methods("GET")
	protected.HandleFunc("/payments/summary", paymentHandler.Summary).Methods("GET")

	classHandler := NewGymClassHandler(svcs.GymClass)
	protected.HandleFunc("/classes", classHandler.Create).Methods("POST")
	protected.HandleFunc("/classes", classHandler.List).Methods("GET")
	protected.HandleFunc("/classes/{id:[0-9]+}", classHandler.Get).Methods("GET")
	protected.HandleFunc("/classes/{id:[0-9]+}", classHandler.Update).Methods("PUT")
	protected.HandleFunc("/classes/{id:[0-9]+}", classHandler.Delete).Methods("DELETE")

	dashboardHandler := NewDashboardHandler(svcs.Dashboard)
	protected.HandleFunc("/dashboard/summary", dashboardHandler.Summary).Methods("GET")
	protected.HandleFunc("/dashboard/alerts", dashboardHandler.Alerts).Methods("GET")

	// Admin endpoints.
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(RequireAdmin)
	adminHandler := NewAdminHandler(svcs.Admin)
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods("GET")
	admin.HandleFunc("/users/pending", adminHandler.PendingUsers).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}/approve", adminHandler.Approve).Methods("POST")
	admin.HandleFunc("/users/{id:[0-9]+}/reject", adminHandler.Reject).Methods("POST")
	admin.HandleFunc("/users/{id:[0-9]+}", adminHandler.Delete).Methods("DELETE")

	return r
}

func registerOfferingRoutes(r *mux.Router, prefix string, h *OfferingHandler) {
	r.HandleFunc(prefix, h.Create).Methods("POST")
	r.HandleFunc(prefix, h.List).Methods("GET")
	r.HandleFunc(prefix+"/{id:[0-9]+}", h.Get).Methods("GET")
	r.HandleFunc(prefix+"/{id:[0-9]+}", h.Update).Methods("PUT")
	r.HandleFunc(prefix+"/{id:[0-9]+}/active", h.SetActive).Methods("PATCH")
	r.HandleFunc(prefix+"/{id:[0-9]+}", h.Delete).Methods("DELETE")
}

func registerBillableRoutes(r *mux.Router, prefix string, h *BillableHandler) {
	r.HandleFunc(prefix, h.Create).Methods("POST")
	r.HandleFunc(prefix, h.List).Methods("GET")
	r.HandleFunc(prefix+"/{id:[0-9]+}", h.Get).Methods("GET")
	r.HandleFunc(prefix+"/{id:[0-9]+}", h.Update).Methods("PUT")
	r.HandleFunc(prefix+"/{id:[0-9]+}/payments", h.RecordPayment).Methods("POST")
	r.HandleFunc(prefix+"/{id:[0-9]+}/refunds", h.Refund).Methods("POST")
	r.HandleFunc(prefix+"/{id:[0-9]+}", h.Delete).Methods("DELETE")
}
