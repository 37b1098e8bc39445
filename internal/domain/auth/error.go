package auth

import "errors"

var (
	// ErrNoSecret means no admin secret is configured server-side. Login
	// fails closed; this is an operator problem, not a client one.
	ErrNoSecret = errors.New("admin secret not configured")

	// ErrInvalidCredential means the supplied password does not match the
	// configured secret.
	ErrInvalidCredential = errors.New("invalid credentials")
)
