package driver_me_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/auth"
	"github.com/Andresg1046/AppTracking/internal/service/driver"
	"github.com/Andresg1046/AppTracking/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var profileDTO dto.DriverProfileUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&profileDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverEntity, err := h.service.GetDriverByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, driver.ErrDriverNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	driverModify := entities.DriverModify{
		ID:                     &driverEntity.ID,
		Name:                   profileDTO.Name,
		Phone:                  profileDTO.Phone,
		LicenseNumber:          profileDTO.LicenseNumber,
		Notes:                  profileDTO.Notes,
		LocationUpdateInterval: profileDTO.LocationUpdateInterval,
		AutoLocationSharing:    profileDTO.AutoLocationSharing,
	}
	if profileDTO.Vehicle != nil {
		driverModify.Vehicle = &entities.Vehicle{
			Brand: profileDTO.Vehicle.Brand,
			Model: profileDTO.Vehicle.Model,
			Plate: profileDTO.Vehicle.Plate,
		}
	}

	updatedEntity, err := h.service.UpdateProfile(r.Context(), driverModify)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidInterval):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewDriverResponse(updatedEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
