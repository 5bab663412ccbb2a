package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrValidation    = errors.New("invalid input")
	ErrPermission    = errors.New("permission denied")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict with current state")
	ErrMachineInUse  = errors.New("machine is referenced by work entries")
)
