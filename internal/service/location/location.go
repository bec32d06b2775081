package location

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/geo"
	"github.com/Andresg1046/AppTracking/internal/service/delivery"
)

const (
	minHistoryHours = 1
	maxHistoryHours = 168
)

type Location struct {
	repository      Repository
	driverService   DriverService
	deliveryService DeliveryService
	publisher       SnapshotPublisher
	txManager       TxManager
}

func New(
	repository Repository,
	driverService DriverService,
	deliveryService DeliveryService,
	publisher SnapshotPublisher,
	txManager TxManager,
) *Location {
	return &Location{
		repository:      repository,
		driverService:   driverService,
		deliveryService: deliveryService,
		publisher:       publisher,
		txManager:       txManager,
	}
}

// RecordUpdate ingests one position report. The sample is appended, the
// driver's current location moves, and when the driver has an active
// assignment its remaining distance and arrival estimate are recomputed.
// Observers of that order get the fresh snapshot pushed after commit.
func (s *Location) RecordUpdate(ctx context.Context, driverID int64, loc entities.Location) (*entities.TrackingSnapshot, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if !geo.ValidCoordinates(loc.Latitude, loc.Longitude) {
		return nil, ErrInvalidCoordinates
	}

	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now().UTC()
	}

	snapshot := entities.TrackingSnapshot{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.driverService.GetDriver(ctx, driverID); err != nil {
			return fmt.Errorf("get driver: %w", err)
		}

		active, err := s.deliveryService.ActiveForDriver(ctx, driverID)
		if err != nil && !errors.Is(err, delivery.ErrAssignmentNotFound) {
			return fmt.Errorf("get active assignment: %w", err)
		}

		sample := entities.LocationSample{
			DriverID:   driverID,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			Accuracy:   loc.Accuracy,
			Speed:      loc.Speed,
			Heading:    loc.Heading,
			RecordedAt: loc.Timestamp,
		}
		if active != nil {
			sample.AssignmentID = &active.ID
		}

		if _, err := s.repository.Create(ctx, sample); err != nil {
			return fmt.Errorf("create location sample: %w", err)
		}

		updatedDriver, err := s.driverService.UpdateDriver(ctx, entities.DriverModify{
			ID:                 &driverID,
			CurrentLocation:    &loc,
			LastLocationUpdate: &loc.Timestamp,
		})
		if err != nil {
			return fmt.Errorf("update driver location: %w", err)
		}

		snapshot = entities.TrackingSnapshot{
			DriverID:        updatedDriver.ID,
			DriverName:      updatedDriver.Name,
			DriverPhone:     updatedDriver.Phone,
			DriverState:     updatedDriver.State,
			Vehicle:         updatedDriver.Vehicle,
			CurrentLocation: updatedDriver.CurrentLocation,
			GeneratedAt:     loc.Timestamp,
		}

		if active == nil {
			return nil
		}

		progress := entities.DeliveryAssignmentModify{
			ID:                 &active.ID,
			LastLocationUpdate: &loc.Timestamp,
		}
		if active.DeliveryCoordinates != nil {
			distance := geo.DistanceKm(
				loc.Latitude,
				loc.Longitude,
				active.DeliveryCoordinates.Latitude,
				active.DeliveryCoordinates.Longitude,
			)
			progress.DistanceRemaining = &distance

			if eta, ok := projectArrival(distance, loc.Speed, loc.Timestamp); ok {
				progress.EstimatedArrival = &eta
			}
		}

		updatedAssignment, err := s.deliveryService.UpdateProgress(ctx, progress)
		if err != nil {
			return fmt.Errorf("update assignment progress: %w", err)
		}

		snapshot.OrderNumber = updatedAssignment.OrderNumber
		snapshot.AssignmentID = updatedAssignment.ID
		snapshot.DeliveryStatus = updatedAssignment.Status
		snapshot.DistanceRemaining = updatedAssignment.DistanceRemaining
		snapshot.EstimatedArrival = updatedAssignment.EstimatedArrival
		return nil
	})
	if err != nil {
		return nil, err
	}

	if snapshot.OrderNumber != "" {
		s.publisher.Publish(snapshot)
	}
	return &snapshot, nil
}

// History returns the driver's breadcrumb trail for the last N hours,
// newest first. The window is capped at seven days.
func (s *Location) History(ctx context.Context, driverID int64, hours int) ([]entities.LocationSample, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if hours < minHistoryHours || hours > maxHistoryHours {
		return nil, ErrInvalidHistoryWindow
	}

	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	samples, err := s.repository.ListByDriverSince(ctx, driverID, since)
	if err != nil {
		return nil, fmt.Errorf("location history: %w", err)
	}
	return samples, nil
}

// projectArrival extrapolates arrival from distance and reported speed
// in km/h. No speed, no estimate.
func projectArrival(distanceKm float64, speed *float64, from time.Time) (time.Time, bool) {
	if speed == nil || *speed <= 0 {
		return time.Time{}, false
	}

	hours := distanceKm / *speed
	if math.IsInf(hours, 0) || math.IsNaN(hours) {
		return time.Time{}, false
	}
	return from.Add(time.Duration(hours * float64(time.Hour))), true
}
