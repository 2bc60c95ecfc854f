package middleware

import (
	"net/http"

	"github.com/gjd78/planilla-backend/internal/domain/user"
	"github.com/gjd78/planilla-backend/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireSuperAdmin gates user management.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleSuperAdmin)
}

// RequireAdmin gates employee management and the dev endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleSuperAdmin, user.RoleAdmin)
}

// RequireScanner gates the attendance entry/exit endpoints. Scanner
// stations carry their own role; admins can operate them too.
func RequireScanner(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleSuperAdmin, user.RoleAdmin, user.RoleScanner)
}

// RequireViewer gates the payroll reports. Scanner stations have no
// business reading pay figures.
func RequireViewer(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleSuperAdmin, user.RoleAdmin, user.RoleViewer)
}

func requireRoles(next http.Handler, allowed ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		role := user.Role(roleStr)
		for _, a := range allowed {
			if role == a {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.Forbidden(w, "Insufficient permissions")
	})
}
