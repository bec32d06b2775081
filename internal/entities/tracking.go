package entities

import "time"

// Vehicle is the display summary shown to customers.
type Vehicle struct {
	Brand string
	Model string
	Plate string
}

// TrackingSnapshot is the customer-facing view of a delivery at one moment.
// It is what the realtime channels push and the public endpoints return.
type TrackingSnapshot struct {
	OrderNumber       string
	AssignmentID      int64
	DeliveryStatus    DeliveryStatusType
	DriverID          int64
	DriverName        string
	DriverPhone       string
	DriverState       DriverStateType
	Vehicle           *Vehicle
	CurrentLocation   *Location
	DistanceRemaining *float64
	EstimatedArrival  *time.Time
	GeneratedAt       time.Time
}
