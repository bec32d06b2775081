package location

import "errors"

var (
	ErrInvalidDriverID      = errors.New("invalid driver id")
	ErrInvalidCoordinates   = errors.New("coordinates out of range")
	ErrInvalidHistoryWindow = errors.New("history window out of range")
)
