package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/geo"
)

type Delivery struct {
	repository    Repository
	driverService DriverService
	orderGateway  OrderGateway
	notifier      ClosedNotifier
	txManager     TxManager
}

func New(
	repository Repository,
	driverService DriverService,
	orderGateway OrderGateway,
	notifier ClosedNotifier,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:    repository,
		driverService: driverService,
		orderGateway:  orderGateway,
		notifier:      notifier,
		txManager:     txManager,
	}
}

// Assign puts an available driver on an order. Customer name, phone and
// the delivery address are copied from the order so the assignment stays
// readable even if the order changes later.
func (d *Delivery) Assign(ctx context.Context, req entities.DeliveryAssignRequest) (*entities.DeliveryAssignment, error) {
	if req.OrderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if req.DriverID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if req.Priority == "" {
		req.Priority = entities.DefaultDeliveryPriority
	}
	if !isValidPriority(req.Priority) {
		return nil, ErrInvalidPriority
	}

	order, err := d.orderGateway.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	assignment := entities.DeliveryAssignment{}
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := d.driverService.GetDriver(ctx, req.DriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if !driver.IsAvailable() {
			return ErrDriverUnavailable
		}

		existing, err := d.repository.GetActiveByOrderID(ctx, order.ID)
		if err != nil && !errors.Is(err, ErrAssignmentNotFound) {
			return fmt.Errorf("check active assignment: %w", err)
		}
		if existing != nil {
			return ErrAlreadyAssigned
		}

		toCreate := entities.DeliveryAssignment{
			OrderID:             order.ID,
			OrderNumber:         order.Number,
			DriverID:            driver.ID,
			Status:              entities.DeliveryAssigned,
			Priority:            req.Priority,
			CustomerName:        order.CustomerName,
			CustomerPhone:       order.CustomerPhone,
			DeliveryAddress:     order.ShippingAddress,
			DeliveryCoordinates: order.DeliveryCoordinates,
			EstimatedDuration:   req.EstimatedDuration,
			Notes:               req.Notes,
			AssignedAt:          time.Now().UTC(),
		}

		if driver.CurrentLocation != nil && order.DeliveryCoordinates != nil {
			distance := geo.DistanceKm(
				driver.CurrentLocation.Latitude,
				driver.CurrentLocation.Longitude,
				order.DeliveryCoordinates.Latitude,
				order.DeliveryCoordinates.Longitude,
			)
			toCreate.DistanceRemaining = &distance
		}

		created, err := d.repository.Create(ctx, toCreate)
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		_, err = d.driverService.UpdateDriver(ctx, entities.DriverModify{
			ID:    &driver.ID,
			State: pointer.To(entities.DriverDelivering),
		})
		if err != nil {
			return fmt.Errorf("mark driver delivering: %w", err)
		}

		assignment = *created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateStatus moves an assignment through its lifecycle. actorDriverID
// guards driver requests, pass zero for admin and system callers.
// Re-entering the current status succeeds without touching the row.
func (d *Delivery) UpdateStatus(
	ctx context.Context,
	assignmentID int64,
	actorDriverID int64,
	status entities.DeliveryStatusType,
	notes *string,
) (*entities.DeliveryAssignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	updated := entities.DeliveryAssignment{}
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}
		if actorDriverID != 0 && current.DriverID != actorDriverID {
			return ErrNotAssignmentOwner
		}
		if !canTransition(current.Status, status) {
			return ErrInvalidStateTransition
		}
		if current.Status == status {
			updated = *current
			return nil
		}

		now := time.Now().UTC()
		modify := entities.DeliveryAssignmentModify{
			ID:     &assignmentID,
			Status: &status,
			Notes:  notes,
		}
		if status == entities.DeliveryStarted && current.StartedAt == nil {
			modify.StartedAt = &now
		}
		if status.IsTerminal() && current.CompletedAt == nil {
			modify.CompletedAt = &now
		}

		result, err := d.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update assignment: %w", err)
		}

		if status.IsTerminal() {
			_, err = d.driverService.UpdateDriver(ctx, entities.DriverModify{
				ID:    &current.DriverID,
				State: pointer.To(entities.DriverAvailable),
			})
			if err != nil {
				return fmt.Errorf("release driver: %w", err)
			}
		}

		updated = *result
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status.IsTerminal() {
		d.notifier.NotifyClosed(updated.OrderNumber, updated.Status)
	}
	return &updated, nil
}

// UpdateProgress writes location-derived fields on an assignment. It is
// the location ingest path, status never changes through here.
func (d *Delivery) UpdateProgress(ctx context.Context, assignmentModify entities.DeliveryAssignmentModify) (*entities.DeliveryAssignment, error) {
	if assignmentModify.ID == nil {
		return nil, ErrInvalidAssignmentID
	}

	assignmentModify.Status = nil
	assignmentModify.StartedAt = nil
	assignmentModify.CompletedAt = nil

	updated, err := d.repository.Update(ctx, assignmentModify)
	if err != nil {
		return nil, fmt.Errorf("update assignment progress: %w", err)
	}
	return updated, nil
}

func (d *Delivery) GetAssignment(ctx context.Context, id int64) (*entities.DeliveryAssignment, error) {
	if id <= 0 {
		return nil, ErrInvalidAssignmentID
	}

	assignment, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return assignment, nil
}

// GetByOrderNumber returns the latest assignment for an order, terminal
// or not. Customers track orders by number, not by assignment id.
func (d *Delivery) GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.DeliveryAssignment, error) {
	if orderNumber == "" {
		return nil, ErrInvalidOrderID
	}

	assignment, err := d.repository.GetLatestByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("get assignment by order number: %w", err)
	}
	return assignment, nil
}

func (d *Delivery) ActiveForDriver(ctx context.Context, driverID int64) (*entities.DeliveryAssignment, error) {
	if driverID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	assignment, err := d.repository.GetActiveByDriverID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get active assignment: %w", err)
	}
	return assignment, nil
}

func (d *Delivery) ListForDriver(ctx context.Context, driverID int64, status *entities.DeliveryStatusType) ([]entities.DeliveryAssignment, error) {
	if driverID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if status != nil && !isValidStatus(*status) {
		return nil, ErrInvalidStatus
	}

	assignments, err := d.repository.ListByDriver(ctx, driverID, status)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// FailForCancelledOrder closes the active assignment of a cancelled
// order. Missing assignment is not an error, most cancelled orders were
// never assigned.
func (d *Delivery) FailForCancelledOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return ErrInvalidOrderID
	}

	failed := entities.DeliveryAssignment{}
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		active, err := d.repository.GetActiveByOrderID(ctx, orderID)
		if err != nil {
			if errors.Is(err, ErrAssignmentNotFound) {
				return nil
			}
			return fmt.Errorf("get active assignment: %w", err)
		}

		now := time.Now().UTC()
		result, err := d.repository.Update(ctx, entities.DeliveryAssignmentModify{
			ID:          &active.ID,
			Status:      pointer.To(entities.DeliveryFailed),
			Notes:       pointer.To("order cancelled"),
			CompletedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("fail assignment: %w", err)
		}

		_, err = d.driverService.UpdateDriver(ctx, entities.DriverModify{
			ID:    &active.DriverID,
			State: pointer.To(entities.DriverAvailable),
		})
		if err != nil {
			return fmt.Errorf("release driver: %w", err)
		}

		failed = *result
		return nil
	})
	if err != nil {
		return err
	}

	if failed.ID != 0 {
		d.notifier.NotifyClosed(failed.OrderNumber, failed.Status)
	}
	return nil
}

// ReleaseExpired fails assignments that sat non-terminal for longer than
// maxAge and frees their drivers. Runs from a background task. Observers
// of every swept order get the terminal message, same as any other path
// into a terminal status.
func (d *Delivery) ReleaseExpired(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, ErrMissingRequiredFields
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	expired, err := d.repository.FailExpired(ctx, cutoff)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("release expired timed out: %w", err)
		}
		return 0, fmt.Errorf("release expired: %w", err)
	}

	for _, orderNumber := range expired {
		d.notifier.NotifyClosed(orderNumber, entities.DeliveryFailed)
	}
	return int64(len(expired)), nil
}
