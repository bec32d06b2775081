package order_driver_location_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/service/delivery"
	"github.com/Andresg1046/AppTracking/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log           handlerLogger
	service       Service
	driverService DriverService
}

func New(log handlerLogger, service Service, driverService DriverService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:           handlerLog,
		service:       service,
		driverService: driverService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["order_number"]

	assignment, err := h.service.GetByOrderNumber(r.Context(), orderNumber)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	driverEntity, err := h.driverService.GetDriver(r.Context(), assignment.DriverID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.NewOrderDriverLocationResponse(assignment, driverEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
