package models

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidRange      = errors.New("end date precedes start date")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidStatus     = errors.New("invalid boarding status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrSitterUnavailable = errors.New("sitter is not available for the requested dates")
	ErrEmailTaken        = errors.New("email already exists")
)
