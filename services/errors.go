package services

import "errors"

// Error taxonomy surfaced by the service layer. Handlers map these to
// HTTP status codes; nothing below ever swallows a failed write.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidIndex = errors.New("invalid index")
	ErrInvalidInput = errors.New("invalid input")
)
