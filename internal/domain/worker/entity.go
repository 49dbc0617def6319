package worker

import "time"

type Role string

const (
	RoleWorker  Role = "worker"
	RoleManager Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleWorker || r == RoleManager
}

// Worker is an employee whose attendance, roster and leave are tracked.
// Accounts start unapproved; a manager flips IsApproved before the worker
// can log in.
type Worker struct {
	ID           string
	Username     string
	Email        *string
	Name         string
	PasswordHash *string
	Role         Role
	IsApproved   bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
