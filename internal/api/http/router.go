package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"odms-backend/internal/domain"
	"odms-backend/internal/security"
)

// NewRouter wires all HTTP routes. Everything except the auth endpoints
// sits behind the bearer-token middleware; admin routes additionally
// require the Admin role.
func NewRouter(
	tokens security.TokenManager,
	authHandler *AuthHandler,
	requestHandler *RequestHandler,
	adminHandler *AdminHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/v1/auth/otp", authHandler.RequestOTP).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods(http.MethodPost)

	authed := r.PathPrefix("/api/v1").Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/requests", requestHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/requests", requestHandler.ListByStatus).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{id:[0-9]+}", requestHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{id:[0-9]+}/approve", requestHandler.Approve).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{id:[0-9]+}/reject", requestHandler.Reject).Methods(http.MethodPost)

	admin := authed.PathPrefix("/admin").Subrouter()
	admin.Use(RequireRole(domain.RoleAdmin))
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id:[0-9]+}/role", adminHandler.UpdateUserRole).Methods(http.MethodPut)
	admin.HandleFunc("/import/students", adminHandler.ImportStudents).Methods(http.MethodPost)
	admin.HandleFunc("/import/faculty", adminHandler.ImportFaculty).Methods(http.MethodPost)
	admin.HandleFunc("/import/students", adminHandler.ClearStudents).Methods(http.MethodDelete)
	admin.HandleFunc("/import/faculty", adminHandler.ClearFaculty).Methods(http.MethodDelete)

	return r
}
