package location

import (
	"github.com/Andresg1046/AppTracking/internal/entities"
)

func ToDomain(s *SampleDB) *entities.LocationSample {
	if s == nil {
		return nil
	}
	return &entities.LocationSample{
		ID:           s.ID,
		DriverID:     s.DriverID,
		AssignmentID: s.AssignmentID,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		Accuracy:     s.Accuracy,
		Speed:        s.Speed,
		Heading:      s.Heading,
		RecordedAt:   s.RecordedAt,
	}
}

func ToDomainList(samplesDB []SampleDB) []entities.LocationSample {
	if len(samplesDB) == 0 {
		return []entities.LocationSample{}
	}

	result := make([]entities.LocationSample, len(samplesDB))
	for i, sampleDB := range samplesDB {
		result[i] = *ToDomain(&sampleDB)
	}
	return result
}
