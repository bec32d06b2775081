package delivery

import (
	"github.com/Andresg1046/AppTracking/internal/entities"
)

func ToDomain(a *AssignmentDB) *entities.DeliveryAssignment {
	if a == nil {
		return nil
	}

	assignment := &entities.DeliveryAssignment{
		ID:                 a.ID,
		OrderID:            a.OrderID,
		OrderNumber:        a.OrderNumber,
		DriverID:           a.DriverID,
		Status:             entities.DeliveryStatusType(a.Status),
		Priority:           entities.DeliveryPriorityType(a.Priority),
		CustomerName:       a.CustomerName,
		CustomerPhone:      a.CustomerPhone,
		DeliveryAddress:    a.DeliveryAddress,
		EstimatedArrival:   a.EstimatedArrival,
		EstimatedDuration:  a.EstimatedDuration,
		DistanceRemaining:  a.DistanceRemaining,
		LastLocationUpdate: a.LastLocationUpdate,
		AssignedAt:         a.AssignedAt,
		StartedAt:          a.StartedAt,
		CompletedAt:        a.CompletedAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.Notes != nil {
		assignment.Notes = *a.Notes
	}
	if a.DeliveryLatitude != nil && a.DeliveryLongitude != nil {
		assignment.DeliveryCoordinates = &entities.Coordinates{
			Latitude:  *a.DeliveryLatitude,
			Longitude: *a.DeliveryLongitude,
		}
	}

	return assignment
}

func FromDomainModify(assignmentModify *entities.DeliveryAssignmentModify) *AssignmentModifyDB {
	if assignmentModify == nil {
		return nil
	}
	assignmentDB := &AssignmentModifyDB{
		ID:                 assignmentModify.ID,
		EstimatedArrival:   assignmentModify.EstimatedArrival,
		EstimatedDuration:  assignmentModify.EstimatedDuration,
		DistanceRemaining:  assignmentModify.DistanceRemaining,
		LastLocationUpdate: assignmentModify.LastLocationUpdate,
		Notes:              assignmentModify.Notes,
		StartedAt:          assignmentModify.StartedAt,
		CompletedAt:        assignmentModify.CompletedAt,
	}

	if assignmentModify.Status != nil {
		status := assignmentModify.Status.String()
		assignmentDB.Status = &status
	}
	if assignmentModify.Priority != nil {
		priority := assignmentModify.Priority.String()
		assignmentDB.Priority = &priority
	}

	return assignmentDB
}

func ToDomainList(assignmentsDB []AssignmentDB) []entities.DeliveryAssignment {
	if len(assignmentsDB) == 0 {
		return []entities.DeliveryAssignment{}
	}

	result := make([]entities.DeliveryAssignment, len(assignmentsDB))
	for i, assignmentDB := range assignmentsDB {
		result[i] = *ToDomain(&assignmentDB)
	}
	return result
}
