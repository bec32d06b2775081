package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/repository"
	"github.com/Andresg1046/AppTracking/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const assignmentColumns = `id, order_id, order_number, driver_id, status, priority,
	customer_name, customer_phone, delivery_address, delivery_latitude, delivery_longitude,
	estimated_arrival, estimated_duration, distance_remaining, last_location_update,
	notes, assigned_at, started_at, completed_at, created_at, updated_at`

const activeStatuses = `'assigned', 'started', 'in_progress'`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, assignment entities.DeliveryAssignment) (*entities.DeliveryAssignment, error) {
	query := `
		INSERT INTO delivery_assignments (
			order_id, order_number, driver_id, status, priority,
			customer_name, customer_phone, delivery_address,
			delivery_latitude, delivery_longitude,
			estimated_duration, distance_remaining, notes, assigned_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + assignmentColumns

	var deliveryLat, deliveryLng *float64
	if assignment.DeliveryCoordinates != nil {
		deliveryLat = &assignment.DeliveryCoordinates.Latitude
		deliveryLng = &assignment.DeliveryCoordinates.Longitude
	}

	assignmentModel, err := scanAssignment(r.querier.QueryRow(
		ctx,
		query,
		assignment.OrderID,
		assignment.OrderNumber,
		assignment.DriverID,
		assignment.Status.String(),
		assignment.Priority.String(),
		assignment.CustomerName,
		assignment.CustomerPhone,
		assignment.DeliveryAddress,
		deliveryLat,
		deliveryLng,
		assignment.EstimatedDuration,
		assignment.DistanceRemaining,
		nullableText(assignment.Notes),
		assignment.AssignedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) Update(ctx context.Context, assignmentModifyEntity entities.DeliveryAssignmentModify) (*entities.DeliveryAssignment, error) {
	assignmentModifyModel := FromDomainModify(&assignmentModifyEntity)

	builder := qb.
		Update("delivery_assignments")

	if assignmentModifyModel.Status != nil {
		builder = builder.Set("status", assignmentModifyModel.Status)
	}
	if assignmentModifyModel.Priority != nil {
		builder = builder.Set("priority", assignmentModifyModel.Priority)
	}
	if assignmentModifyModel.EstimatedArrival != nil {
		builder = builder.Set("estimated_arrival", assignmentModifyModel.EstimatedArrival)
	}
	if assignmentModifyModel.EstimatedDuration != nil {
		builder = builder.Set("estimated_duration", assignmentModifyModel.EstimatedDuration)
	}
	if assignmentModifyModel.DistanceRemaining != nil {
		builder = builder.Set("distance_remaining", assignmentModifyModel.DistanceRemaining)
	}
	if assignmentModifyModel.LastLocationUpdate != nil {
		builder = builder.Set("last_location_update", assignmentModifyModel.LastLocationUpdate)
	}
	if assignmentModifyModel.Notes != nil {
		builder = builder.Set("notes", assignmentModifyModel.Notes)
	}
	if assignmentModifyModel.StartedAt != nil {
		builder = builder.Set("started_at", assignmentModifyModel.StartedAt)
	}
	if assignmentModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", assignmentModifyModel.CompletedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": assignmentModifyModel.ID}).
		Suffix("RETURNING " + assignmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	assignmentModel, err := scanAssignment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM delivery_assignments
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetLatestByOrderNumber(ctx context.Context, orderNumber string) (*entities.DeliveryAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM delivery_assignments
		WHERE order_number = $1
		ORDER BY assigned_at DESC
		LIMIT 1`

	return r.getOne(ctx, query, orderNumber)
}

func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID int64) (*entities.DeliveryAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM delivery_assignments
		WHERE order_id = $1 AND status IN (` + activeStatuses + `)`

	return r.getOne(ctx, query, orderID)
}

func (r *Repository) GetActiveByDriverID(ctx context.Context, driverID int64) (*entities.DeliveryAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM delivery_assignments
		WHERE driver_id = $1 AND status IN (` + activeStatuses + `)`

	return r.getOne(ctx, query, driverID)
}

func (r *Repository) ListByDriver(ctx context.Context, driverID int64, status *entities.DeliveryStatusType) ([]entities.DeliveryAssignment, error) {
	builder := qb.
		Select(assignmentColumns).
		From("delivery_assignments").
		Where(sq.Eq{"driver_id": driverID}).
		OrderBy("assigned_at DESC")

	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
	}

	return r.list(ctx, query, args...)
}

func (r *Repository) ListActive(ctx context.Context) ([]entities.DeliveryAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM delivery_assignments
		WHERE status IN (` + activeStatuses + `)
		ORDER BY assigned_at DESC`

	return r.list(ctx, query)
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]entities.DeliveryAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM delivery_assignments
		ORDER BY assigned_at DESC
		LIMIT $1`

	return r.list(ctx, query, limit)
}

func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM delivery_assignments WHERE status IN (` + activeStatuses + `)`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository count active error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountCompletedSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM delivery_assignments WHERE status = 'completed' AND completed_at >= $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository count completed error: %w", err)
	}
	return count, nil
}

// StatsByDriver aggregates the delivery history of one driver. The
// success rate is computed by the service layer.
func (r *Repository) StatsByDriver(ctx context.Context, driverID int64) (*entities.DriverStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'failed'),
			COUNT(*) FILTER (WHERE status IN (` + activeStatuses + `)),
			COUNT(*) FILTER (WHERE assigned_at >= NOW() - INTERVAL '30 days')
		FROM delivery_assignments
		WHERE driver_id = $1`

	var stats entities.DriverStats
	err := r.querier.QueryRow(ctx, query, driverID).Scan(
		&stats.TotalDeliveries,
		&stats.CompletedDeliveries,
		&stats.FailedDeliveries,
		&stats.ActiveDeliveries,
		&stats.DeliveriesLast30d,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository stats error: %w", err)
	}

	return &stats, nil
}

// FailExpired closes assignments stuck non-terminal since before the
// cutoff and frees their drivers in the same statement. Returns the
// order numbers of the failed assignments so the caller can notify
// their observers.
func (r *Repository) FailExpired(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `
		WITH expired AS (
			UPDATE delivery_assignments
			SET status = 'failed',
			    notes = COALESCE(notes, '') || ' [expired]',
			    completed_at = NOW(),
			    updated_at = NOW()
			WHERE status IN (` + activeStatuses + `)
			  AND assigned_at < $1
			RETURNING driver_id, order_number
		), released AS (
			UPDATE drivers
			SET state = 'available',
			    updated_at = NOW()
			WHERE id IN (SELECT driver_id FROM expired)
			  AND state = 'delivering'
		)
		SELECT order_number FROM expired`

	rows, err := r.querier.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository fail expired error: %w", err)
	}
	defer rows.Close()

	orderNumbers := make([]string, 0)
	for rows.Next() {
		var orderNumber string
		if err := rows.Scan(&orderNumber); err != nil {
			return nil, fmt.Errorf("unexpected assignment repository fail expired error: %w", err)
		}
		orderNumbers = append(orderNumbers, orderNumber)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository fail expired error: %w", err)
	}

	return orderNumbers, nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.DeliveryAssignment, error) {
	assignmentModel, err := scanAssignment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.DeliveryAssignment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
	}
	defer rows.Close()

	assignmentModels := make([]AssignmentDB, 0, 8)
	for rows.Next() {
		assignmentModel, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
		}
		assignmentModels = append(assignmentModels, *assignmentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
	}

	return ToDomainList(assignmentModels), nil
}

func scanAssignment(row pgx.Row) (*AssignmentDB, error) {
	var assignmentModel AssignmentDB
	err := row.Scan(
		&assignmentModel.ID,
		&assignmentModel.OrderID,
		&assignmentModel.OrderNumber,
		&assignmentModel.DriverID,
		&assignmentModel.Status,
		&assignmentModel.Priority,
		&assignmentModel.CustomerName,
		&assignmentModel.CustomerPhone,
		&assignmentModel.DeliveryAddress,
		&assignmentModel.DeliveryLatitude,
		&assignmentModel.DeliveryLongitude,
		&assignmentModel.EstimatedArrival,
		&assignmentModel.EstimatedDuration,
		&assignmentModel.DistanceRemaining,
		&assignmentModel.LastLocationUpdate,
		&assignmentModel.Notes,
		&assignmentModel.AssignedAt,
		&assignmentModel.StartedAt,
		&assignmentModel.CompletedAt,
		&assignmentModel.CreatedAt,
		&assignmentModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &assignmentModel, nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
