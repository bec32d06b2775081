package delivery_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/service/delivery"
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
	var assignDTO dto.DeliveryAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignRequest := entities.DeliveryAssignRequest{
		OrderID:           assignDTO.OrderID,
		DriverID:          assignDTO.DriverID,
		Priority:          entities.DeliveryPriorityType(assignDTO.Priority),
		EstimatedDuration: assignDTO.EstimatedDuration,
		Notes:             assignDTO.Notes,
	}

	assignment, err := h.service.Assign(r.Context(), assignRequest)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidOrderID),
			errors.Is(err, delivery.ErrInvalidPriority):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrOrderNotFound),
			errors.Is(err, delivery.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrDriverUnavailable),
			errors.Is(err, delivery.ErrAlreadyAssigned):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewAssignmentResponse(assignment)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
