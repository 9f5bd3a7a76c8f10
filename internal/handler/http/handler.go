package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/prakura/hrms-backend-go/internal/handler/http/response"
)

// decodeJSON reads the request body into dst, answering 400 itself when the
// body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// claimString returns a string claim of the verified token, or "".
func claimString(r *http.Request, key string) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	v, _ := claims[key].(string)
	return v
}

// selfEmployeeID is the employee a signed-in user acts as when a request
// leaves the employee id out.
func selfEmployeeID(r *http.Request) string {
	if id := claimString(r, "employee_id"); id != "" {
		return id
	}
	return claimString(r, "user_id")
}
