package location

import (
	"context"
	"fmt"
	"time"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

const sampleColumns = `id, driver_id, assignment_id, latitude, longitude,
	accuracy, speed, heading, recorded_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, sample entities.LocationSample) (*entities.LocationSample, error) {
	query := `
		INSERT INTO location_samples (
			driver_id, assignment_id, latitude, longitude,
			accuracy, speed, heading, recorded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + sampleColumns

	var sampleModel SampleDB
	err := r.querier.QueryRow(
		ctx,
		query,
		sample.DriverID,
		sample.AssignmentID,
		sample.Latitude,
		sample.Longitude,
		sample.Accuracy,
		sample.Speed,
		sample.Heading,
		sample.RecordedAt,
	).Scan(
		&sampleModel.ID,
		&sampleModel.DriverID,
		&sampleModel.AssignmentID,
		&sampleModel.Latitude,
		&sampleModel.Longitude,
		&sampleModel.Accuracy,
		&sampleModel.Speed,
		&sampleModel.Heading,
		&sampleModel.RecordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository create error: %w", err)
	}

	return ToDomain(&sampleModel), nil
}

// ListByDriverSince returns the driver's trail newest first.
func (r *Repository) ListByDriverSince(ctx context.Context, driverID int64, since time.Time) ([]entities.LocationSample, error) {
	query := `
		SELECT ` + sampleColumns + `
		FROM location_samples
		WHERE driver_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at DESC`

	rows, err := r.querier.Query(ctx, query, driverID, since)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository list error: %w", err)
	}
	defer rows.Close()

	sampleModels := make([]SampleDB, 0, 32)
	for rows.Next() {
		var sampleModel SampleDB
		err = rows.Scan(
			&sampleModel.ID,
			&sampleModel.DriverID,
			&sampleModel.AssignmentID,
			&sampleModel.Latitude,
			&sampleModel.Longitude,
			&sampleModel.Accuracy,
			&sampleModel.Speed,
			&sampleModel.Heading,
			&sampleModel.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected location repository list error: %w", err)
		}
		sampleModels = append(sampleModels, sampleModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository list error: %w", err)
	}

	return ToDomainList(sampleModels), nil
}
