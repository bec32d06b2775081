package delivery

import (
	"github.com/Andresg1046/AppTracking/internal/entities"
)

func isValidStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryAssigned,
		entities.DeliveryStarted,
		entities.DeliveryInProgress,
		entities.DeliveryCompleted,
		entities.DeliveryFailed:
		return true
	default:
		return false
	}
}

func isValidPriority(priority entities.DeliveryPriorityType) bool {
	switch priority {
	case entities.PriorityLow,
		entities.PriorityNormal,
		entities.PriorityHigh,
		entities.PriorityUrgent:
		return true
	default:
		return false
	}
}

// canTransition encodes the delivery lifecycle. Forward steps are
// strictly linear, failed is reachable from every non-terminal status.
// Re-entering the current status is a no-op handled by the caller.
func canTransition(from, to entities.DeliveryStatusType) bool {
	if from == to {
		return true
	}
	if from.IsTerminal() {
		return false
	}
	if to == entities.DeliveryFailed {
		return true
	}

	switch from {
	case entities.DeliveryAssigned:
		return to == entities.DeliveryStarted
	case entities.DeliveryStarted:
		return to == entities.DeliveryInProgress
	case entities.DeliveryInProgress:
		return to == entities.DeliveryCompleted
	default:
		return false
	}
}
