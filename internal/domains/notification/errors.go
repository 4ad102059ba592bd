package notification

import "errors"

var (
	ErrMissingPostInfo = errors.New("post title and url are required")
)
