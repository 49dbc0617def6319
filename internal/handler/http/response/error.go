package response

import (
	"errors"
	"net/http"

	"github.com/depotworks/workforce-backend-go/internal/domain/auth"
	"github.com/depotworks/workforce-backend-go/internal/domain/catalog"
	"github.com/depotworks/workforce-backend-go/internal/domain/dailylog"
	"github.com/depotworks/workforce-backend-go/internal/domain/leave"
	"github.com/depotworks/workforce-backend-go/internal/domain/roster"
	"github.com/depotworks/workforce-backend-go/internal/domain/team"
	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountNotApproved):
		Forbidden(w, "Account has not been approved yet")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrGoogleNotLinked):
		NotFound(w, "No account registered for this Google email")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, worker.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, worker.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Caller does not own this leave request")
	case errors.Is(err, leave.ErrLeaveFinalized):
		Conflict(w, "Leave request already finalized")
	case errors.Is(err, leave.ErrLeaveNotPending):
		Conflict(w, "Leave request is not awaiting approval")
	case errors.Is(err, leave.ErrCancellationNotPending):
		Conflict(w, "Leave request has no pending cancellation")
	case errors.Is(err, leave.ErrOwnerDeleteApproved):
		Forbidden(w, "Approved leave request can only be deleted by a manager")

	// Roster domain errors
	case errors.Is(err, roster.ErrRosterNotFound):
		NotFound(w, "Roster not found for date")

	// Daily log domain errors
	case errors.Is(err, dailylog.ErrLogNotFound):
		NotFound(w, "Daily log not found")
	case errors.Is(err, dailylog.ErrNotLogAuthor):
		Forbidden(w, "Caller is not the author of this daily log")

	// Team domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrTeamNameExists):
		Conflict(w, "Team name already exists")

	// Catalog domain errors
	case errors.Is(err, catalog.ErrCategoryNotFound):
		NotFound(w, "Catalog category not found")
	case errors.Is(err, catalog.ErrCategoryNameExists):
		Conflict(w, "Catalog category name already exists")
	case errors.Is(err, catalog.ErrProductNotFound):
		NotFound(w, "Product not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
