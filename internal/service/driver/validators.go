package driver

import (
	"strings"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

const (
	minLocationUpdateInterval = 10
	maxLocationUpdateInterval = 300
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if len(phone) < 2 || !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidState(state entities.DriverStateType) bool {
	switch state {
	case entities.DriverOffline,
		entities.DriverAvailable,
		entities.DriverPaused,
		entities.DriverDelivering:
		return true
	default:
		return false
	}
}

func isValidInterval(seconds int) bool {
	return seconds >= minLocationUpdateInterval && seconds <= maxLocationUpdateInterval
}

// canTransition holds the manual state rules. The delivering state is
// entered and left by the assignment flow, never by the driver directly.
func canTransition(from, to entities.DriverStateType) bool {
	if from == to {
		return true
	}
	if from == entities.DriverDelivering {
		return false
	}
	return to != entities.DriverDelivering
}
