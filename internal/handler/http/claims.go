package http

import (
	"net/http"

	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/go-chi/jwtauth/v5"
)

// caller extracts the authenticated worker's identity from the request's
// JWT claims. ok is false when the claims are missing or malformed.
func caller(r *http.Request) (workerID string, role worker.Role, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", false
	}

	workerID, idOK := claims["worker_id"].(string)
	roleStr, roleOK := claims["role"].(string)
	if !idOK || !roleOK || workerID == "" {
		return "", "", false
	}

	return workerID, worker.Role(roleStr), true
}
