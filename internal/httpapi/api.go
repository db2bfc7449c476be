// Package httpapi exposes the JSON HTTP API and its middleware.
package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"settleup/internal/auth"
	"settleup/internal/service"
)

// API wires the service layer to HTTP routes.
type API struct {
	auth         *service.AuthService
	events       *service.EventService
	transactions *service.TransactionService
	settlements  *service.SettlementService
	jwtManager   *auth.JWTManager
	validate     *validator.Validate
}

// New creates the API with the given services.
func New(authSvc *service.AuthService, events *service.EventService, transactions *service.TransactionService, settlements *service.SettlementService, jwtManager *auth.JWTManager) *API {
	return &API{
		auth:         authSvc,
		events:       events,
		transactions: transactions,
		settlements:  settlements,
		jwtManager:   jwtManager,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes returns the route table. Everything except registration and login
// requires a valid bearer token.
func (a *API) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/register", a.handleRegister)
	mux.HandleFunc("POST /api/users/login", a.handleLogin)

	mux.Handle("POST /api/events", a.requireAuth(a.handleCreateEvent))
	mux.Handle("GET /api/events", a.requireAuth(a.handleListEvents))
	mux.Handle("GET /api/events/{eventId}", a.requireAuth(a.handleGetEvent))
	mux.Handle("GET /api/events/{eventId}/summary", a.requireAuth(a.handleEventSummary))
	mux.Handle("POST /api/events/{eventId}/members", a.requireAuth(a.handleAddMember))
	mux.Handle("POST /api/events/{eventId}/transactions", a.requireAuth(a.handleAddTransaction))
	mux.Handle("POST /api/settlements/settle", a.requireAuth(a.handleCreateSettlement))

	return mux
}
