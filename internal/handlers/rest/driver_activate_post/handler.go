package driver_activate_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/service/driver"
	"github.com/Andresg1046/AppTracking/pkg/logger"
	"github.com/gorilla/mux"
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
	userIDStr := mux.Vars(r)["user_id"]
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var activateDTO dto.DriverActivateRequest
	err = json.NewDecoder(r.Body).Decode(&activateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	activation := entities.DriverActivation{
		Phone:                  activateDTO.Phone,
		LicenseNumber:          activateDTO.LicenseNumber,
		LocationUpdateInterval: activateDTO.LocationUpdateInterval,
		AutoLocationSharing:    activateDTO.AutoLocationSharing,
	}
	if activateDTO.Vehicle != nil {
		activation.Vehicle = &entities.Vehicle{
			Brand: activateDTO.Vehicle.Brand,
			Model: activateDTO.Vehicle.Model,
			Plate: activateDTO.Vehicle.Plate,
		}
	}

	driverEntity, err := h.service.Activate(r.Context(), userID, activation)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidInterval):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrInvalidRole):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, driver.ErrAlreadyActive):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewDriverResponse(driverEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
