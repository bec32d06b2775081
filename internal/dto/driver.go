package dto

import (
	"time"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

type LocationPayload struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

type VehiclePayload struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Plate string `json:"plate"`
}

type DriverResponse struct {
	ID                     int64            `json:"id"`
	UserID                 int64            `json:"user_id"`
	Name                   string           `json:"name"`
	Phone                  string           `json:"phone"`
	State                  string           `json:"state"`
	IsOnline               bool             `json:"is_online"`
	IsAvailable            bool             `json:"is_available"`
	IsDelivering           bool             `json:"is_delivering"`
	CurrentLocation        *LocationPayload `json:"current_location,omitempty"`
	LastLocationUpdate     *string          `json:"last_location_update,omitempty"`
	LicenseNumber          string           `json:"license_number,omitempty"`
	Notes                  string           `json:"notes,omitempty"`
	LocationUpdateInterval int              `json:"location_update_interval"`
	AutoLocationSharing    bool             `json:"auto_location_sharing"`
	Vehicle                *VehiclePayload  `json:"vehicle,omitempty"`
	CreatedAt              string           `json:"created_at"`
}

type DriverStatsResponse struct {
	TotalDeliveries     int64   `json:"total_deliveries"`
	CompletedDeliveries int64   `json:"completed_deliveries"`
	FailedDeliveries    int64   `json:"failed_deliveries"`
	ActiveDeliveries    int64   `json:"active_deliveries"`
	SuccessRate         float64 `json:"success_rate"`
	DeliveriesLast30d   int64   `json:"deliveries_last_30_days"`
}

func NewLocationPayload(loc *entities.Location) *LocationPayload {
	if loc == nil {
		return nil
	}
	return &LocationPayload{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Accuracy:  loc.Accuracy,
		Speed:     loc.Speed,
		Heading:   loc.Heading,
		Timestamp: formatTime(loc.Timestamp),
	}
}

func NewVehiclePayload(v *entities.Vehicle) *VehiclePayload {
	if v == nil {
		return nil
	}
	return &VehiclePayload{Brand: v.Brand, Model: v.Model, Plate: v.Plate}
}

func NewDriverResponse(d *entities.Driver) DriverResponse {
	return DriverResponse{
		ID:                     d.ID,
		UserID:                 d.UserID,
		Name:                   d.Name,
		Phone:                  d.Phone,
		State:                  d.State.String(),
		IsOnline:               d.IsOnline(),
		IsAvailable:            d.IsAvailable(),
		IsDelivering:           d.IsDelivering(),
		CurrentLocation:        NewLocationPayload(d.CurrentLocation),
		LastLocationUpdate:     formatTimePtr(d.LastLocationUpdate),
		LicenseNumber:          d.LicenseNumber,
		Notes:                  d.Notes,
		LocationUpdateInterval: d.LocationUpdateInterval,
		AutoLocationSharing:    d.AutoLocationSharing,
		Vehicle:                NewVehiclePayload(d.Vehicle),
		CreatedAt:              formatTime(d.CreatedAt),
	}
}

func NewDriverStatsResponse(s *entities.DriverStats) DriverStatsResponse {
	return DriverStatsResponse{
		TotalDeliveries:     s.TotalDeliveries,
		CompletedDeliveries: s.CompletedDeliveries,
		FailedDeliveries:    s.FailedDeliveries,
		ActiveDeliveries:    s.ActiveDeliveries,
		SuccessRate:         s.SuccessRate,
		DeliveriesLast30d:   s.DeliveriesLast30d,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := formatTime(*t)
	return &formatted
}

type DriverActivateRequest struct {
	Phone                  *string         `json:"phone,omitempty"`
	LicenseNumber          *string         `json:"license_number,omitempty"`
	Vehicle                *VehiclePayload `json:"vehicle,omitempty"`
	LocationUpdateInterval *int            `json:"location_update_interval,omitempty"`
	AutoLocationSharing    *bool           `json:"auto_location_sharing,omitempty"`
}

type DriverProfileUpdateRequest struct {
	Name                   *string         `json:"name,omitempty"`
	Phone                  *string         `json:"phone,omitempty"`
	LicenseNumber          *string         `json:"license_number,omitempty"`
	Notes                  *string         `json:"notes,omitempty"`
	Vehicle                *VehiclePayload `json:"vehicle,omitempty"`
	LocationUpdateInterval *int            `json:"location_update_interval,omitempty"`
	AutoLocationSharing    *bool           `json:"auto_location_sharing,omitempty"`
}

type DriverStateRequest struct {
	State string `json:"state"`
}

func NewDriverResponseList(drivers []entities.Driver) []DriverResponse {
	result := make([]DriverResponse, 0, len(drivers))
	for i := range drivers {
		result = append(result, NewDriverResponse(&drivers[i]))
	}
	return result
}
