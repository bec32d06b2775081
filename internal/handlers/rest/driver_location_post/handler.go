package driver_location_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/auth"
	"github.com/Andresg1046/AppTracking/internal/service/driver"
	"github.com/Andresg1046/AppTracking/internal/service/location"
	"github.com/Andresg1046/AppTracking/pkg/logger"
)

type Handler struct {
	log           handlerLogger
	driverService DriverService
	service       Service
}

func New(log handlerLogger, driverService DriverService, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:           handlerLog,
		driverService: driverService,
		service:       service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var locationDTO dto.LocationUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if locationDTO.Latitude == nil || locationDTO.Longitude == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverEntity, err := h.driverService.GetDriverByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, driver.ErrDriverNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	loc := entities.Location{
		Latitude:  *locationDTO.Latitude,
		Longitude: *locationDTO.Longitude,
		Accuracy:  locationDTO.Accuracy,
		Speed:     locationDTO.Speed,
		Heading:   locationDTO.Heading,
		Timestamp: time.Now().UTC(),
	}

	snapshot, err := h.service.RecordUpdate(r.Context(), driverEntity.ID, loc)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidCoordinates),
			errors.Is(err, location.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.LocationAck{
		Success:           true,
		Message:           "location recorded",
		Timestamp:         snapshot.GeneratedAt.UTC().Format(time.RFC3339),
		Location:          dto.NewLocationPayload(snapshot.CurrentLocation),
		DistanceRemaining: snapshot.DistanceRemaining,
	}
	if snapshot.EstimatedArrival != nil {
		arrival := snapshot.EstimatedArrival.UTC().Format(time.RFC3339)
		response.EstimatedArrival = &arrival
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
