package dto

import (
	"time"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

// Message types pushed over the realtime channels.
const (
	MessageTypeLocationUpdate = "location_update"
	MessageTypeDeliveryClosed = "delivery_closed"
	MessageTypeNotAssigned    = "not_assigned"
	MessageTypeError          = "error"
)

// TrackingMessage is one snapshot pushed to order observers.
type TrackingMessage struct {
	Type              string           `json:"type"`
	OrderNumber       string           `json:"order_number"`
	Status            string           `json:"status"`
	DriverID          int64            `json:"driver_id"`
	DriverName        string           `json:"driver_name"`
	DriverPhone       string           `json:"driver_phone,omitempty"`
	Vehicle           *VehiclePayload  `json:"vehicle,omitempty"`
	Location          *LocationPayload `json:"location,omitempty"`
	DistanceRemaining *float64         `json:"distance_remaining,omitempty"`
	EstimatedArrival  *string          `json:"estimated_arrival,omitempty"`
	Timestamp         string           `json:"timestamp"`
}

// ClosedMessage is the terminal push before the channel closes.
type ClosedMessage struct {
	Type        string `json:"type"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
}

type NotAssignedMessage struct {
	Type        string `json:"type"`
	OrderNumber string `json:"order_number"`
	Message     string `json:"message"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// LocationAck answers every inbound driver position report.
type LocationAck struct {
	Success           bool             `json:"success"`
	Message           string           `json:"message"`
	Timestamp         string           `json:"timestamp"`
	Location          *LocationPayload `json:"location,omitempty"`
	DistanceRemaining *float64         `json:"distance_remaining,omitempty"`
	EstimatedArrival  *string          `json:"estimated_arrival,omitempty"`
}

// DriverLocationFrame is the inbound payload on the driver channel.
type DriverLocationFrame struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
}

// TrackingOrderResponse is the non-streaming public tracking view.
type TrackingOrderResponse struct {
	OrderNumber       string           `json:"order_number"`
	Status            string           `json:"status"`
	DriverName        string           `json:"driver_name"`
	DriverPhone       string           `json:"driver_phone,omitempty"`
	Vehicle           *VehiclePayload  `json:"vehicle,omitempty"`
	CurrentLocation   *LocationPayload `json:"current_location,omitempty"`
	DeliveryAddress   string           `json:"delivery_address"`
	DistanceRemaining *float64         `json:"distance_remaining,omitempty"`
	EstimatedArrival  *string          `json:"estimated_arrival,omitempty"`
	AssignedAt        string           `json:"assigned_at"`
	StartedAt         *string          `json:"started_at,omitempty"`
	CompletedAt       *string          `json:"completed_at,omitempty"`
}

func NewTrackingMessage(s entities.TrackingSnapshot) TrackingMessage {
	return TrackingMessage{
		Type:              MessageTypeLocationUpdate,
		OrderNumber:       s.OrderNumber,
		Status:            s.DeliveryStatus.String(),
		DriverID:          s.DriverID,
		DriverName:        s.DriverName,
		DriverPhone:       s.DriverPhone,
		Vehicle:           NewVehiclePayload(s.Vehicle),
		Location:          NewLocationPayload(s.CurrentLocation),
		DistanceRemaining: s.DistanceRemaining,
		EstimatedArrival:  formatTimePtr(s.EstimatedArrival),
		Timestamp:         formatTime(s.GeneratedAt),
	}
}

func NewClosedMessage(orderNumber string, status entities.DeliveryStatusType) ClosedMessage {
	return ClosedMessage{
		Type:        MessageTypeDeliveryClosed,
		OrderNumber: orderNumber,
		Status:      status.String(),
		Timestamp:   formatTime(time.Now().UTC()),
	}
}

// OrderDriverLocationResponse is the public polling view of the courier
// position for one order.
type OrderDriverLocationResponse struct {
	OrderNumber       string           `json:"order_number"`
	Status            string           `json:"status"`
	DriverName        string           `json:"driver_name"`
	Location          *LocationPayload `json:"location,omitempty"`
	DistanceRemaining *float64         `json:"distance_remaining,omitempty"`
	EstimatedArrival  *string          `json:"estimated_arrival,omitempty"`
	UpdatedAt         *string          `json:"updated_at,omitempty"`
}

type HubStatusResponse struct {
	Orders    int `json:"orders"`
	Observers int `json:"observers"`
	Drivers   int `json:"drivers"`
}

func NewTrackingOrderResponse(a *entities.DeliveryAssignment, d *entities.Driver) TrackingOrderResponse {
	return TrackingOrderResponse{
		OrderNumber:       a.OrderNumber,
		Status:            a.Status.String(),
		DriverName:        d.Name,
		DriverPhone:       d.Phone,
		Vehicle:           NewVehiclePayload(d.Vehicle),
		CurrentLocation:   NewLocationPayload(d.CurrentLocation),
		DeliveryAddress:   a.DeliveryAddress,
		DistanceRemaining: a.DistanceRemaining,
		EstimatedArrival:  formatTimePtr(a.EstimatedArrival),
		AssignedAt:        formatTime(a.AssignedAt),
		StartedAt:         formatTimePtr(a.StartedAt),
		CompletedAt:       formatTimePtr(a.CompletedAt),
	}
}

func NewOrderDriverLocationResponse(a *entities.DeliveryAssignment, d *entities.Driver) OrderDriverLocationResponse {
	return OrderDriverLocationResponse{
		OrderNumber:       a.OrderNumber,
		Status:            a.Status.String(),
		DriverName:        d.Name,
		Location:          NewLocationPayload(d.CurrentLocation),
		DistanceRemaining: a.DistanceRemaining,
		EstimatedArrival:  formatTimePtr(a.EstimatedArrival),
		UpdatedAt:         formatTimePtr(a.LastLocationUpdate),
	}
}
