package dto

import (
	"github.com/Andresg1046/AppTracking/internal/entities"
)

type LocationSampleResponse struct {
	ID           int64    `json:"id"`
	DriverID     int64    `json:"driver_id"`
	AssignmentID *int64   `json:"assignment_id,omitempty"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Accuracy     *float64 `json:"accuracy,omitempty"`
	Speed        *float64 `json:"speed,omitempty"`
	Heading      *float64 `json:"heading,omitempty"`
	RecordedAt   string   `json:"recorded_at"`
}

func NewLocationSampleResponseList(samples []entities.LocationSample) []LocationSampleResponse {
	result := make([]LocationSampleResponse, 0, len(samples))
	for _, s := range samples {
		result = append(result, LocationSampleResponse{
			ID:           s.ID,
			DriverID:     s.DriverID,
			AssignmentID: s.AssignmentID,
			Latitude:     s.Latitude,
			Longitude:    s.Longitude,
			Accuracy:     s.Accuracy,
			Speed:        s.Speed,
			Heading:      s.Heading,
			RecordedAt:   formatTime(s.RecordedAt),
		})
	}
	return result
}

// LocationUpdateRequest is the body of a driver position report. Latitude
// and longitude are pointers so a missing field is distinguishable from 0.
type LocationUpdateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
}

type LocationHistoryResponse struct {
	DriverID int64                    `json:"driver_id"`
	Hours    int                      `json:"hours"`
	Count    int                      `json:"count"`
	Samples  []LocationSampleResponse `json:"samples"`
}

type DriverLocationResponse struct {
	DriverID           int64            `json:"driver_id"`
	State              string           `json:"state"`
	Location           *LocationPayload `json:"location,omitempty"`
	LastLocationUpdate *string          `json:"last_location_update,omitempty"`
}

func NewDriverLocationResponse(d *entities.Driver) DriverLocationResponse {
	return DriverLocationResponse{
		DriverID:           d.ID,
		State:              d.State.String(),
		Location:           NewLocationPayload(d.CurrentLocation),
		LastLocationUpdate: formatTimePtr(d.LastLocationUpdate),
	}
}
