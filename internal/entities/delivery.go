package entities

import "time"

type DeliveryAssignment struct {
	ID                  int64
	OrderID             int64
	OrderNumber         string
	DriverID            int64
	Status              DeliveryStatusType
	Priority            DeliveryPriorityType
	CustomerName        string
	CustomerPhone       string
	DeliveryAddress     string
	DeliveryCoordinates *Coordinates
	EstimatedArrival    *time.Time
	EstimatedDuration   *int
	DistanceRemaining   *float64
	LastLocationUpdate  *time.Time
	Notes               string
	AssignedAt          time.Time
	StartedAt           *time.Time
	CompletedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsTerminal reports whether the assignment can no longer change status.
func (a DeliveryAssignment) IsTerminal() bool {
	return a.Status.IsTerminal()
}

type DeliveryStatusType string

const (
	DeliveryAssigned   DeliveryStatusType = "assigned"
	DeliveryStarted    DeliveryStatusType = "started"
	DeliveryInProgress DeliveryStatusType = "in_progress"
	DeliveryCompleted  DeliveryStatusType = "completed"
	DeliveryFailed     DeliveryStatusType = "failed"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

func (t DeliveryStatusType) IsTerminal() bool {
	return t == DeliveryCompleted || t == DeliveryFailed
}

// ActiveDeliveryStatuses are the non-terminal statuses. At most one
// assignment per order and per driver may hold any of them.
var ActiveDeliveryStatuses = []DeliveryStatusType{
	DeliveryAssigned,
	DeliveryStarted,
	DeliveryInProgress,
}

type DeliveryPriorityType string

const (
	PriorityLow    DeliveryPriorityType = "low"
	PriorityNormal DeliveryPriorityType = "normal"
	PriorityHigh   DeliveryPriorityType = "high"
	PriorityUrgent DeliveryPriorityType = "urgent"
)

const DefaultDeliveryPriority = PriorityNormal

func (t DeliveryPriorityType) String() string {
	return string(t)
}

// DeliveryAssignRequest carries the admin's intent to put a driver on an
// order. Customer fields are snapshotted from the order at assign time.
type DeliveryAssignRequest struct {
	OrderID           int64
	DriverID          int64
	Priority          DeliveryPriorityType
	EstimatedDuration *int
	Notes             string
}

type DeliveryAssignmentModify struct {
	ID                 *int64
	Status             *DeliveryStatusType
	Priority           *DeliveryPriorityType
	EstimatedArrival   *time.Time
	EstimatedDuration  *int
	DistanceRemaining  *float64
	LastLocationUpdate *time.Time
	Notes              *string
	StartedAt          *time.Time
	CompletedAt        *time.Time
}
