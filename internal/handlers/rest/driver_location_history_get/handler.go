package driver_location_history_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/auth"
	"github.com/Andresg1046/AppTracking/internal/service/driver"
	"github.com/Andresg1046/AppTracking/internal/service/location"
	"github.com/Andresg1046/AppTracking/pkg/logger"
)

const defaultHistoryHours = 24

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

	hours := defaultHistoryHours
	if hoursStr := r.URL.Query().Get("hours"); hoursStr != "" {
		parsed, err := strconv.Atoi(hoursStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		hours = parsed
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

	samples, err := h.service.History(r.Context(), driverEntity.ID, hours)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidHistoryWindow),
			errors.Is(err, location.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.LocationHistoryResponse{
		DriverID: driverEntity.ID,
		Hours:    hours,
		Count:    len(samples),
		Samples:  dto.NewLocationSampleResponseList(samples),
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
