package entities

import (
	"time"
)

type Driver struct {
	ID                     int64
	UserID                 int64
	Name                   string
	Vehicle                *Vehicle
	State                  DriverStateType
	CurrentLocation        *Location
	LastLocationUpdate     *time.Time
	LicenseNumber          string
	Phone                  string
	Notes                  string
	LocationUpdateInterval int
	AutoLocationSharing    bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsOnline reports whether the driver is connected in any state.
func (d Driver) IsOnline() bool {
	return d.State != DriverOffline
}

// IsAvailable reports whether the driver can take a new assignment.
func (d Driver) IsAvailable() bool {
	return d.State == DriverAvailable
}

// IsDelivering reports whether the driver has an active assignment.
func (d Driver) IsDelivering() bool {
	return d.State == DriverDelivering
}

type DriverStateType string

const (
	DriverOffline    DriverStateType = "offline"
	DriverAvailable  DriverStateType = "available"
	DriverPaused     DriverStateType = "paused"
	DriverDelivering DriverStateType = "delivering"
)

const DefaultDriverState = DriverOffline

func (t DriverStateType) String() string {
	return string(t)
}

const DefaultLocationUpdateInterval = 30

type DriverModify struct {
	ID                     *int64
	UserID                 *int64
	Name                   *string
	Vehicle                *Vehicle
	State                  *DriverStateType
	CurrentLocation        *Location
	LastLocationUpdate     *time.Time
	LicenseNumber          *string
	Phone                  *string
	Notes                  *string
	LocationUpdateInterval *int
	AutoLocationSharing    *bool
}

// DriverActivation carries the optional profile fields accepted when a
// driver record is created for a user. Name and phone default to the
// user's identity record.
type DriverActivation struct {
	Vehicle                *Vehicle
	LicenseNumber          *string
	Phone                  *string
	LocationUpdateInterval *int
	AutoLocationSharing    *bool
}

// DriverStats is the aggregate view behind the driver stats endpoint.
type DriverStats struct {
	TotalDeliveries     int64
	CompletedDeliveries int64
	FailedDeliveries    int64
	ActiveDeliveries    int64
	SuccessRate         float64
	DeliveriesLast30d   int64
}

type DriverListFilter struct {
	States       []DriverStateType
	OnlineOnly   bool
	WithLocation bool
}
