package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Andresg1046/AppTracking/internal/entities"
)

const recentLimit = 10

type Dashboard struct {
	drivers    DriverRepository
	deliveries DeliveryRepository
}

func New(drivers DriverRepository, deliveries DeliveryRepository) *Dashboard {
	return &Dashboard{
		drivers:    drivers,
		deliveries: deliveries,
	}
}

// Summary builds the admin overview in one pass over the driver list
// plus three delivery aggregates.
func (s *Dashboard) Summary(ctx context.Context) (*entities.DashboardSummary, error) {
	drivers, err := s.drivers.List(ctx, entities.DriverListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	summary := entities.DashboardSummary{
		TotalDrivers: int64(len(drivers)),
	}
	for _, d := range drivers {
		if d.IsOnline() {
			summary.OnlineDrivers++
		}
		switch d.State {
		case entities.DriverAvailable:
			summary.AvailableDrivers++
		case entities.DriverDelivering:
			summary.DeliveringDrivers++
		}
	}

	summary.ActiveAssignments, err = s.deliveries.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active assignments: %w", err)
	}

	midnight := startOfDay(time.Now().UTC())
	summary.CompletedToday, err = s.deliveries.CountCompletedSince(ctx, midnight)
	if err != nil {
		return nil, fmt.Errorf("count completed today: %w", err)
	}

	summary.RecentAssignments, err = s.deliveries.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent assignments: %w", err)
	}

	summary.RecentDrivers = recentDrivers(drivers, recentLimit)
	return &summary, nil
}

// DriverLocations is the live map feed, every driver with a known
// position plus the order they are on, if any.
func (s *Dashboard) DriverLocations(ctx context.Context) ([]entities.DriverMapEntry, error) {
	drivers, err := s.drivers.List(ctx, entities.DriverListFilter{WithLocation: true})
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	active, err := s.deliveries.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active assignments: %w", err)
	}

	orderByDriver := make(map[int64]string, len(active))
	for _, a := range active {
		orderByDriver[a.DriverID] = a.OrderNumber
	}

	entries := make([]entities.DriverMapEntry, 0, len(drivers))
	for _, d := range drivers {
		entry := entities.DriverMapEntry{Driver: d}
		if number, ok := orderByDriver[d.ID]; ok {
			entry.ActiveOrderNumber = &number
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func recentDrivers(drivers []entities.Driver, limit int) []entities.Driver {
	sorted := make([]entities.Driver, len(drivers))
	copy(sorted, drivers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
