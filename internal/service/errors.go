// Package service provides business logic services for Hunter Codex.
package service

import "errors"

// Common service errors.
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrItemNotFound       = errors.New("item not found")
	ErrInternalError      = errors.New("internal server error")
)
