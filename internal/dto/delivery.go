package dto

import (
	"github.com/Andresg1046/AppTracking/internal/entities"
)

type CoordinatesPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AssignmentResponse struct {
	ID                  int64               `json:"id"`
	OrderID             int64               `json:"order_id"`
	OrderNumber         string              `json:"order_number"`
	DriverID            int64               `json:"driver_id"`
	Status              string              `json:"status"`
	Priority            string              `json:"priority"`
	CustomerName        string              `json:"customer_name"`
	CustomerPhone       string              `json:"customer_phone"`
	DeliveryAddress     string              `json:"delivery_address"`
	DeliveryCoordinates *CoordinatesPayload `json:"delivery_coordinates,omitempty"`
	EstimatedArrival    *string             `json:"estimated_arrival,omitempty"`
	EstimatedDuration   *int                `json:"estimated_duration,omitempty"`
	DistanceRemaining   *float64            `json:"distance_remaining,omitempty"`
	LastLocationUpdate  *string             `json:"last_location_update,omitempty"`
	Notes               string              `json:"notes,omitempty"`
	AssignedAt          string              `json:"assigned_at"`
	StartedAt           *string             `json:"started_at,omitempty"`
	CompletedAt         *string             `json:"completed_at,omitempty"`
}

func NewCoordinatesPayload(c *entities.Coordinates) *CoordinatesPayload {
	if c == nil {
		return nil
	}
	return &CoordinatesPayload{Latitude: c.Latitude, Longitude: c.Longitude}
}

func NewAssignmentResponse(a *entities.DeliveryAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:                  a.ID,
		OrderID:             a.OrderID,
		OrderNumber:         a.OrderNumber,
		DriverID:            a.DriverID,
		Status:              a.Status.String(),
		Priority:            a.Priority.String(),
		CustomerName:        a.CustomerName,
		CustomerPhone:       a.CustomerPhone,
		DeliveryAddress:     a.DeliveryAddress,
		DeliveryCoordinates: NewCoordinatesPayload(a.DeliveryCoordinates),
		EstimatedArrival:    formatTimePtr(a.EstimatedArrival),
		EstimatedDuration:   a.EstimatedDuration,
		DistanceRemaining:   a.DistanceRemaining,
		LastLocationUpdate:  formatTimePtr(a.LastLocationUpdate),
		Notes:               a.Notes,
		AssignedAt:          formatTime(a.AssignedAt),
		StartedAt:           formatTimePtr(a.StartedAt),
		CompletedAt:         formatTimePtr(a.CompletedAt),
	}
}

func NewAssignmentResponseList(assignments []entities.DeliveryAssignment) []AssignmentResponse {
	result := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, NewAssignmentResponse(&assignments[i]))
	}
	return result
}

type DeliveryAssignRequest struct {
	OrderID           int64  `json:"order_id"`
	DriverID          int64  `json:"driver_id"`
	Priority          string `json:"priority,omitempty"`
	EstimatedDuration *int   `json:"estimated_duration,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

type DeliveryStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}
