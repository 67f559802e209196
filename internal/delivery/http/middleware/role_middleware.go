package middleware

import (
	"net/http"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/pkg/response"
)

// RequireRole creates a middleware that checks if the user holds any of
// the allowed roles. The role is read from context, set by AuthMiddleware
// from the JWT claims.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireClinicalStaff allows the roles that manage appointment statuses.
func RequireClinicalStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleReceptionist, entity.RoleNurse, entity.RoleAdmin)(next)
}

// RequireFrontOffice allows the roles that edit appointments and patients.
func RequireFrontOffice(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleHR, entity.RoleReceptionist)(next)
}

// RequireManagement allows the roles that delete records.
func RequireManagement(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleHR)(next)
}

// RequireSettingsAccess allows the roles that read or change clinic settings.
func RequireSettingsAccess(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleHR, entity.RoleDoctor)(next)
}
