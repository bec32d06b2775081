package delivery_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/auth"
	"github.com/Andresg1046/AppTracking/internal/service/delivery"
	"github.com/Andresg1046/AppTracking/internal/service/driver"
	"github.com/Andresg1046/AppTracking/pkg/logger"
	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	assignmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusDTO dto.DeliveryStatusRequest
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Admins may move any assignment, drivers only their own.
	var actorDriverID int64
	if role, _ := auth.Role(r.Context()); role != auth.RoleAdmin {
		userID, ok := auth.UserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
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
		actorDriverID = driverEntity.ID
	}

	status := entities.DeliveryStatusType(statusDTO.Status)
	assignment, err := h.service.UpdateStatus(r.Context(), assignmentID, actorDriverID, status, statusDTO.Notes)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidAssignmentID),
			errors.Is(err, delivery.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrNotAssignmentOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrInvalidStateTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewAssignmentResponse(assignment)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
