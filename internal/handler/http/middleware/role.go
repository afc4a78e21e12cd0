package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/handler/http/response"
)

// RequireHR requires the HR role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "HR access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || employee.Role(role) != employee.RoleHR {
			response.Forbidden(w, "HR access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireDecider requires a role that may approve or reject requests,
// Head or HR.
func RequireDecider(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Approver access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || !employee.Role(roleStr).CanDecide() {
			response.Forbidden(w, "Approver access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
