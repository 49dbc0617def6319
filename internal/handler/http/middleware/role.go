package middleware

import (
	"net/http"

	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManager requires the manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, worker.ErrManagerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, worker.ErrManagerAccessRequired)
			return
		}

		if worker.Role(roleStr) != worker.RoleManager {
			response.HandleError(w, worker.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
