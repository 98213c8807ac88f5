package services

import "errors"

// Sentinel failures shared with controllers. Services wrap them with %w so
// the HTTP layer can map status codes with errors.Is while the message keeps
// the offending id.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
