package entities

// DashboardSummary backs the admin overview screen.
type DashboardSummary struct {
	TotalDrivers      int64
	OnlineDrivers     int64
	AvailableDrivers  int64
	DeliveringDrivers int64
	ActiveAssignments int64
	CompletedToday    int64
	RecentDrivers     []Driver
	RecentAssignments []DeliveryAssignment
}

// DriverMapEntry is one pin on the admin live map.
type DriverMapEntry struct {
	Driver            Driver
	ActiveOrderNumber *string
}
