package entities

import "time"

// Coordinates is a bare latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Location is a position report with optional motion attributes.
type Location struct {
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	Speed     *float64
	Heading   *float64
	Timestamp time.Time
}

func (l Location) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// LocationSample is one append-only row of a driver's breadcrumb trail.
type LocationSample struct {
	ID           int64
	DriverID     int64
	AssignmentID *int64
	Latitude     float64
	Longitude    float64
	Accuracy     *float64
	Speed        *float64
	Heading      *float64
	RecordedAt   time.Time
}
