package track_order

import (
	"errors"
	"net/http"
	"time"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/handlers/ws/wsconn"
	"github.com/Andresg1046/AppTracking/internal/service/delivery"
	"github.com/Andresg1046/AppTracking/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	log             handlerLogger
	deliveryService DeliveryService
	driverService   DriverService
	hub             Hub
}

func New(log handlerLogger, deliveryService DeliveryService, driverService DriverService, hub Hub) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:             handlerLog,
		deliveryService: deliveryService,
		driverService:   driverService,
		hub:             hub,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["order_number"]
	if orderNumber == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed",
			logger.NewField("order_number", orderNumber),
			logger.NewField("error", err),
		)
		return
	}
	observer := wsconn.NewObserver(conn)

	assignment, err := h.deliveryService.GetByOrderNumber(r.Context(), orderNumber)
	switch {
	case errors.Is(err, delivery.ErrAssignmentNotFound):
		_ = observer.Send(dto.NotAssignedMessage{
			Type:        dto.MessageTypeNotAssigned,
			OrderNumber: orderNumber,
			Message:     "no driver assigned yet",
		})
	case err != nil:
		_ = observer.Send(dto.ErrorMessage{
			Type:    dto.MessageTypeError,
			Message: "tracking temporarily unavailable",
		})
		_ = observer.Close()
		return
	case assignment.IsTerminal():
		_ = observer.Send(dto.NewClosedMessage(assignment.OrderNumber, assignment.Status))
		_ = observer.Close()
		return
	}

	// Subscribing first lets the hub replay its latest snapshot through
	// the ordering guard. The storage-built snapshot goes through the
	// same guard, so the client never sees it after a fresher replay.
	sub := h.hub.Subscribe(orderNumber, observer)
	defer func() {
		h.hub.Unsubscribe(sub)
		_ = observer.Close()
	}()

	if err == nil {
		if snapshot, ok := h.buildSnapshot(r, assignment); ok {
			h.hub.Deliver(sub, snapshot)
		}
	}

	// Outbound pushes come from the hub. Reading only detects the
	// client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) buildSnapshot(r *http.Request, assignment *entities.DeliveryAssignment) (entities.TrackingSnapshot, bool) {
	driverEntity, err := h.driverService.GetDriver(r.Context(), assignment.DriverID)
	if err != nil {
		h.log.Warn("initial snapshot unavailable",
			logger.NewField("order_number", assignment.OrderNumber),
			logger.NewField("error", err),
		)
		return entities.TrackingSnapshot{}, false
	}

	generatedAt := time.Now().UTC()
	if assignment.LastLocationUpdate != nil {
		generatedAt = *assignment.LastLocationUpdate
	}

	return entities.TrackingSnapshot{
		OrderNumber:       assignment.OrderNumber,
		AssignmentID:      assignment.ID,
		DeliveryStatus:    assignment.Status,
		DriverID:          driverEntity.ID,
		DriverName:        driverEntity.Name,
		DriverPhone:       driverEntity.Phone,
		DriverState:       driverEntity.State,
		Vehicle:           driverEntity.Vehicle,
		CurrentLocation:   driverEntity.CurrentLocation,
		DistanceRemaining: assignment.DistanceRemaining,
		EstimatedArrival:  assignment.EstimatedArrival,
		GeneratedAt:       generatedAt,
	}, true
}
