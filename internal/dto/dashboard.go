package dto

import (
	"github.com/Andresg1046/AppTracking/internal/entities"
)

type DashboardResponse struct {
	TotalDrivers      int64                `json:"total_drivers"`
	OnlineDrivers     int64                `json:"online_drivers"`
	AvailableDrivers  int64                `json:"available_drivers"`
	DeliveringDrivers int64                `json:"delivering_drivers"`
	ActiveAssignments int64                `json:"active_assignments"`
	CompletedToday    int64                `json:"completed_today"`
	RecentDrivers     []DriverResponse     `json:"recent_drivers"`
	RecentAssignments []AssignmentResponse `json:"recent_assignments"`
}

type DriverMapEntryResponse struct {
	Driver            DriverResponse `json:"driver"`
	ActiveOrderNumber *string        `json:"active_order_number,omitempty"`
}

func NewDashboardResponse(s *entities.DashboardSummary) DashboardResponse {
	recentDrivers := make([]DriverResponse, 0, len(s.RecentDrivers))
	for i := range s.RecentDrivers {
		recentDrivers = append(recentDrivers, NewDriverResponse(&s.RecentDrivers[i]))
	}

	return DashboardResponse{
		TotalDrivers:      s.TotalDrivers,
		OnlineDrivers:     s.OnlineDrivers,
		AvailableDrivers:  s.AvailableDrivers,
		DeliveringDrivers: s.DeliveringDrivers,
		ActiveAssignments: s.ActiveAssignments,
		CompletedToday:    s.CompletedToday,
		RecentDrivers:     recentDrivers,
		RecentAssignments: NewAssignmentResponseList(s.RecentAssignments),
	}
}

func NewDriverMapEntryResponseList(entries []entities.DriverMapEntry) []DriverMapEntryResponse {
	result := make([]DriverMapEntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, DriverMapEntryResponse{
			Driver:            NewDriverResponse(&entries[i].Driver),
			ActiveOrderNumber: entries[i].ActiveOrderNumber,
		})
	}
	return result
}
