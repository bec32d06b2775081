package driver

import (
	"context"
	"fmt"
	"math"

	"github.com/AlekSi/pointer"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

const eligibleRole = "driver"

type Driver struct {
	repository Repository
	stats      StatsRepository
	identity   IdentityGateway
	txManager  TxManager
}

func New(repository Repository, stats StatsRepository, identity IdentityGateway, txManager TxManager) *Driver {
	return &Driver{
		repository: repository,
		stats:      stats,
		identity:   identity,
		txManager:  txManager,
	}
}

// Activate creates the driver record for a user. The user identity is
// owned by the commerce platform; it supplies the name and default phone
// and must carry the driver role. A user can hold at most one driver
// record; a second activation fails with ErrAlreadyActive.
func (s *Driver) Activate(ctx context.Context, userID int64, activation entities.DriverActivation) (*entities.Driver, error) {
	if userID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if activation.LocationUpdateInterval != nil && !isValidInterval(*activation.LocationUpdateInterval) {
		return nil, ErrInvalidInterval
	}

	user, err := s.identity.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("activate driver: %w", err)
	}
	if user.Role != eligibleRole {
		return nil, fmt.Errorf("user %d has role %q: %w", userID, user.Role, ErrInvalidRole)
	}

	phone := user.Phone
	if activation.Phone != nil {
		phone = *activation.Phone
	}
	if !isValidName(user.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	interval := entities.DefaultLocationUpdateInterval
	if activation.LocationUpdateInterval != nil {
		interval = *activation.LocationUpdateInterval
	}
	autoShare := true
	if activation.AutoLocationSharing != nil {
		autoShare = *activation.AutoLocationSharing
	}

	driverModify := entities.DriverModify{
		UserID:                 &userID,
		Name:                   &user.Name,
		Phone:                  &phone,
		Vehicle:                activation.Vehicle,
		LicenseNumber:          activation.LicenseNumber,
		State:                  pointer.To(entities.DefaultDriverState),
		LocationUpdateInterval: &interval,
		AutoLocationSharing:    &autoShare,
	}

	created, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("activate driver: %w", err)
	}

	return created, nil
}

// UpdateDriver applies a partial update without transition checks. State
// changes made by the assignment flow go through here.
func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil {
		return nil, ErrInvalidDriverID
	}
	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.State != nil && !isValidState(*driverModify.State) {
		return nil, ErrInvalidState
	}
	if driverModify.LocationUpdateInterval != nil && !isValidInterval(*driverModify.LocationUpdateInterval) {
		return nil, ErrInvalidInterval
	}

	updated, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("update driver: %w", err)
	}
	return updated, nil
}

// UpdateProfile is the driver-facing partial update. State is not
// settable through the profile, SetState owns that.
func (s *Driver) UpdateProfile(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil {
		return nil, ErrInvalidDriverID
	}
	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.Vehicle == nil &&
		driverModify.LicenseNumber == nil &&
		driverModify.Notes == nil &&
		driverModify.LocationUpdateInterval == nil &&
		driverModify.AutoLocationSharing == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	driverModify.State = nil
	driverModify.CurrentLocation = nil
	driverModify.LastLocationUpdate = nil

	return s.UpdateDriver(ctx, driverModify)
}

// SetState applies a driver-requested state change. Leaving or entering
// the delivering state by hand is rejected.
func (s *Driver) SetState(ctx context.Context, driverID int64, state entities.DriverStateType) (*entities.Driver, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if !isValidState(state) {
		return nil, ErrInvalidState
	}

	var updated *entities.Driver
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, driverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}

		if !canTransition(current.State, state) {
			return ErrInvalidStateTransition
		}

		if current.State == state {
			updated = current
			return nil
		}

		updated, err = s.repository.Update(ctx, entities.DriverModify{
			ID:    &driverID,
			State: &state,
		})
		if err != nil {
			return fmt.Errorf("update driver state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return found, nil
}

func (s *Driver) GetDriverByUser(ctx context.Context, userID int64) (*entities.Driver, error) {
	if userID <= 0 {
		return nil, ErrInvalidDriverID
	}

	found, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get driver by user: %w", err)
	}
	return found, nil
}

func (s *Driver) GetDrivers(ctx context.Context, filter entities.DriverListFilter) ([]entities.Driver, error) {
	drivers, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return drivers, nil
}

// GetStats aggregates delivery history for one driver. SuccessRate is
// completed over total in percent, zero when the driver has no history.
func (s *Driver) GetStats(ctx context.Context, driverID int64) (*entities.DriverStats, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	if _, err := s.repository.GetByID(ctx, driverID); err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	stats, err := s.stats.StatsByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("driver stats: %w", err)
	}

	if stats.TotalDeliveries > 0 {
		rate := float64(stats.CompletedDeliveries) / float64(stats.TotalDeliveries) * 100
		stats.SuccessRate = math.Round(rate*100) / 100
	}

	return stats, nil
}
