package services

import "errors"

// Failure kinds returned by the authentication service. Callers branch on
// these with errors.Is; none of them is fatal to the process.
var (
	ErrAlreadyRegistered  = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotActive   = errors.New("account is not active")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidStatus      = errors.New("invalid status")
)
