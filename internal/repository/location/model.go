package location

import "time"

type SampleDB struct {
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
