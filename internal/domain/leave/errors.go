package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrNotRequestOwner       = errors.New("caller does not own this leave request")
	ErrLeaveFinalized        = errors.New("leave request already finalized")
	ErrLeaveNotPending       = errors.New("leave request is not awaiting approval")
	ErrCancellationNotPending = errors.New("leave request has no pending cancellation")
	ErrOwnerDeleteApproved   = errors.New("approved leave request can only be deleted by a manager")
)
