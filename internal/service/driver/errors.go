package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidState          = errors.New("invalid driver state")
	ErrInvalidInterval       = errors.New("invalid location update interval")

	ErrDriverNotFound         = errors.New("driver not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidRole            = errors.New("user is not eligible for driving")
	ErrAlreadyActive          = errors.New("driver already active for user")
	ErrInvalidStateTransition = errors.New("invalid driver state transition")
)
