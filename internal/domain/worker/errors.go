package worker

import "errors"

var (
	ErrWorkerNotFound        = errors.New("worker not found")
	ErrUsernameExists        = errors.New("username already registered")
	ErrEmailExists           = errors.New("email already registered")
	ErrManagerAccessRequired = errors.New("manager access required")
)
