package driver_deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/auth"
	"github.com/Andresg1046/AppTracking/internal/service/delivery"
	"github.com/Andresg1046/AppTracking/internal/service/driver"
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

	var statusFilter *entities.DeliveryStatusType
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := entities.DeliveryStatusType(statusStr)
		statusFilter = &status
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

	assignments, err := h.service.ListForDriver(r.Context(), driverEntity.ID, statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidStatus),
			errors.Is(err, delivery.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewAssignmentResponseList(assignments)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
