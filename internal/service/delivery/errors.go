package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAssignmentID   = errors.New("invalid assignment id")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatus         = errors.New("invalid delivery status")
	ErrInvalidPriority       = errors.New("invalid delivery priority")

	ErrAssignmentNotFound     = errors.New("delivery assignment not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrDriverNotFound         = errors.New("driver not found")
	ErrDriverUnavailable      = errors.New("driver unavailable")
	ErrAlreadyAssigned        = errors.New("order already has an active assignment")
	ErrInvalidStateTransition = errors.New("invalid delivery status transition")
	ErrNotAssignmentOwner     = errors.New("assignment belongs to another driver")
)
