package roster

import "errors"

var (
	ErrRosterNotFound = errors.New("roster not found for date")
)
