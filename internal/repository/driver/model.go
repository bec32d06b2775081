package driver

import "time"

type DriverDB struct {
	ID                     int64
	UserID                 int64
	Name                   string
	Phone                  string
	State                  string
	VehicleBrand           *string
	VehicleModel           *string
	VehiclePlate           *string
	CurrentLatitude        *float64
	CurrentLongitude       *float64
	CurrentAccuracy        *float64
	CurrentSpeed           *float64
	CurrentHeading         *float64
	LastLocationUpdate     *time.Time
	LicenseNumber          *string
	Notes                  *string
	LocationUpdateInterval int
	AutoLocationSharing    bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type DriverModifyDB struct {
	ID                     *int64
	UserID                 *int64
	Name                   *string
	Phone                  *string
	State                  *string
	VehicleBrand           *string
	VehicleModel           *string
	VehiclePlate           *string
	CurrentLatitude        *float64
	CurrentLongitude       *float64
	CurrentAccuracy        *float64
	CurrentSpeed           *float64
	CurrentHeading         *float64
	LastLocationUpdate     *time.Time
	LicenseNumber          *string
	Notes                  *string
	LocationUpdateInterval *int
	AutoLocationSharing    *bool
}
