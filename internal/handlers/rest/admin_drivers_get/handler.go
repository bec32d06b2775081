package admin_drivers_get

import (
	"encoding/json"
	"net/http"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
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
	query := r.URL.Query()

	filter := entities.DriverListFilter{
		OnlineOnly:   query.Get("online_only") == "true",
		WithLocation: query.Get("with_location") == "true",
	}
	for _, state := range query["state"] {
		filter.States = append(filter.States, entities.DriverStateType(state))
	}

	driverEntities, err := h.service.GetDrivers(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.NewDriverResponseList(driverEntities)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
