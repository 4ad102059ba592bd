package subscriber

import "errors"

var (
	// Validation
	ErrInvalidEmail = errors.New("invalid email format")

	// Storage
	ErrStorageUnavailable = errors.New("subscriber storage unavailable")
)
