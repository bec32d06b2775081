package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/repository"
	"github.com/Andresg1046/AppTracking/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, user_id, name, phone, state,
	vehicle_brand, vehicle_model, vehicle_plate,
	current_latitude, current_longitude, current_accuracy, current_speed, current_heading,
	last_location_update, license_number, notes,
	location_update_interval, auto_location_sharing, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO drivers (user_id, name, phone, state, location_update_interval, auto_location_sharing)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + driverColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.UserID,
		driverModifyModel.Name,
		driverModifyModel.Phone,
		driverModifyModel.State,
		driverModifyModel.LocationUpdateInterval,
		driverModifyModel.AutoLocationSharing,
	)

	driverModel, err := scanDriver(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrAlreadyActive
		}
		return nil, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.State != nil {
		builder = builder.Set("state", driverModifyModel.State)
	}
	if driverModifyModel.VehicleBrand != nil {
		builder = builder.
			Set("vehicle_brand", driverModifyModel.VehicleBrand).
			Set("vehicle_model", driverModifyModel.VehicleModel).
			Set("vehicle_plate", driverModifyModel.VehiclePlate)
	}
	if driverModifyModel.CurrentLatitude != nil {
		builder = builder.
			Set("current_latitude", driverModifyModel.CurrentLatitude).
			Set("current_longitude", driverModifyModel.CurrentLongitude).
			Set("current_accuracy", driverModifyModel.CurrentAccuracy).
			Set("current_speed", driverModifyModel.CurrentSpeed).
			Set("current_heading", driverModifyModel.CurrentHeading)
	}
	if driverModifyModel.LastLocationUpdate != nil {
		builder = builder.Set("last_location_update", driverModifyModel.LastLocationUpdate)
	}
	if driverModifyModel.LicenseNumber != nil {
		builder = builder.Set("license_number", driverModifyModel.LicenseNumber)
	}
	if driverModifyModel.Notes != nil {
		builder = builder.Set("notes", driverModifyModel.Notes)
	}
	if driverModifyModel.LocationUpdateInterval != nil {
		builder = builder.Set("location_update_interval", driverModifyModel.LocationUpdateInterval)
	}
	if driverModifyModel.AutoLocationSharing != nil {
		builder = builder.Set("auto_location_sharing", driverModifyModel.AutoLocationSharing)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE user_id = $1`

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyuserid error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.DriverListFilter) ([]entities.Driver, error) {
	builder := qb.
		Select(driverColumns).
		From("drivers").
		OrderBy("id")

	if len(filter.States) > 0 {
		states := make([]string, 0, len(filter.States))
		for _, s := range filter.States {
			states = append(states, s.String())
		}
		builder = builder.Where(sq.Eq{"state": states})
	}
	if filter.OnlineOnly {
		builder = builder.Where(sq.NotEq{"state": entities.DriverOffline.String()})
	}
	if filter.WithLocation {
		builder = builder.Where(sq.NotEq{"current_latitude": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		driverModel, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
		}
		driverModels = append(driverModels, *driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
	}

	return ToDomainList(driverModels), nil
}

func scanDriver(row pgx.Row) (*DriverDB, error) {
	var driverModel DriverDB
	err := row.Scan(
		&driverModel.ID,
		&driverModel.UserID,
		&driverModel.Name,
		&driverModel.Phone,
		&driverModel.State,
		&driverModel.VehicleBrand,
		&driverModel.VehicleModel,
		&driverModel.VehiclePlate,
		&driverModel.CurrentLatitude,
		&driverModel.CurrentLongitude,
		&driverModel.CurrentAccuracy,
		&driverModel.CurrentSpeed,
		&driverModel.CurrentHeading,
		&driverModel.LastLocationUpdate,
		&driverModel.LicenseNumber,
		&driverModel.Notes,
		&driverModel.LocationUpdateInterval,
		&driverModel.AutoLocationSharing,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &driverModel, nil
}
