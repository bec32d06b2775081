package delivery

import "time"

type AssignmentDB struct {
	ID                 int64
	OrderID            int64
	OrderNumber        string
	DriverID           int64
	Status             string
	Priority           string
	CustomerName       string
	CustomerPhone      string
	DeliveryAddress    string
	DeliveryLatitude   *float64
	DeliveryLongitude  *float64
	EstimatedArrival   *time.Time
	EstimatedDuration  *int
	DistanceRemaining  *float64
	LastLocationUpdate *time.Time
	Notes              *string
	AssignedAt         time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type AssignmentModifyDB struct {
	ID                 *int64
	Status             *string
	Priority           *string
	EstimatedArrival   *time.Time
	EstimatedDuration  *int
	DistanceRemaining  *float64
	LastLocationUpdate *time.Time
	Notes              *string
	StartedAt          *time.Time
	CompletedAt        *time.Time
}
