package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/prakura/hrms-backend-go/internal/domain/auth"
	"github.com/prakura/hrms-backend-go/internal/domain/user"
	"github.com/prakura/hrms-backend-go/internal/handler/http/response"
)

// RequireRoles lets the request through when the token's role is one of roles.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			u := user.User{Role: user.Role(roleStr)}
			if !u.HasRole(roles...) {
				slog.Warn("Route denied", "role", roleStr, "path", r.URL.Path)
				response.HandleError(w, user.ErrAccessDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
