package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/pkg/jwt"
)

var errMissingClaims = errors.New("missing token claims")

// accessClaims rebuilds the employee context from the verified token.
// AuthRequired has already checked the token type, so handlers can rely
// on the snapshot being present.
func accessClaims(r *http.Request) (jwt.AccessClaims, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return jwt.AccessClaims{}, err
	}

	str := func(key string) string {
		s, _ := claims[key].(string)
		return s
	}

	c := jwt.AccessClaims{
		UserID:       str("user_id"),
		Email:        str("email"),
		EmployeeID:   str("employee_id"),
		EmployeeCode: str("employee_code"),
		Name:         str("name"),
		Department:   str("department"),
		Role:         employee.Role(str("role")),
		Position:     str("position"),
	}
	if c.UserID == "" {
		return jwt.AccessClaims{}, errMissingClaims
	}

	return c, nil
}
