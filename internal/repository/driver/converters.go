package driver

import (
	"github.com/Andresg1046/AppTracking/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	driver := &entities.Driver{
		ID:                     d.ID,
		UserID:                 d.UserID,
		Name:                   d.Name,
		Phone:                  d.Phone,
		State:                  entities.DriverStateType(d.State),
		LastLocationUpdate:     d.LastLocationUpdate,
		LocationUpdateInterval: d.LocationUpdateInterval,
		AutoLocationSharing:    d.AutoLocationSharing,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}

	if d.LicenseNumber != nil {
		driver.LicenseNumber = *d.LicenseNumber
	}
	if d.Notes != nil {
		driver.Notes = *d.Notes
	}

	if d.VehicleBrand != nil || d.VehicleModel != nil || d.VehiclePlate != nil {
		driver.Vehicle = &entities.Vehicle{}
		if d.VehicleBrand != nil {
			driver.Vehicle.Brand = *d.VehicleBrand
		}
		if d.VehicleModel != nil {
			driver.Vehicle.Model = *d.VehicleModel
		}
		if d.VehiclePlate != nil {
			driver.Vehicle.Plate = *d.VehiclePlate
		}
	}

	if d.CurrentLatitude != nil && d.CurrentLongitude != nil {
		location := &entities.Location{
			Latitude:  *d.CurrentLatitude,
			Longitude: *d.CurrentLongitude,
			Accuracy:  d.CurrentAccuracy,
			Speed:     d.CurrentSpeed,
			Heading:   d.CurrentHeading,
		}
		if d.LastLocationUpdate != nil {
			location.Timestamp = *d.LastLocationUpdate
		}
		driver.CurrentLocation = location
	}

	return driver
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{
		ID:                     driverModify.ID,
		UserID:                 driverModify.UserID,
		Name:                   driverModify.Name,
		Phone:                  driverModify.Phone,
		LastLocationUpdate:     driverModify.LastLocationUpdate,
		LicenseNumber:          driverModify.LicenseNumber,
		Notes:                  driverModify.Notes,
		LocationUpdateInterval: driverModify.LocationUpdateInterval,
		AutoLocationSharing:    driverModify.AutoLocationSharing,
	}

	if driverModify.State != nil {
		state := driverModify.State.String()
		driverDB.State = &state
	}
	if driverModify.Vehicle != nil {
		driverDB.VehicleBrand = &driverModify.Vehicle.Brand
		driverDB.VehicleModel = &driverModify.Vehicle.Model
		driverDB.VehiclePlate = &driverModify.Vehicle.Plate
	}
	if driverModify.CurrentLocation != nil {
		loc := driverModify.CurrentLocation
		driverDB.CurrentLatitude = &loc.Latitude
		driverDB.CurrentLongitude = &loc.Longitude
		driverDB.CurrentAccuracy = loc.Accuracy
		driverDB.CurrentSpeed = loc.Speed
		driverDB.CurrentHeading = loc.Heading
		if driverDB.LastLocationUpdate == nil && !loc.Timestamp.IsZero() {
			timestamp := loc.Timestamp
			driverDB.LastLocationUpdate = &timestamp
		}
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
