package driver_feed

import (
	"errors"
	"net/http"
	"time"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/handlers/ws/wsconn"
	"github.com/Andresg1046/AppTracking/internal/pkg/middlewares/auth"
	"github.com/Andresg1046/AppTracking/internal/service/driver"
	"github.com/Andresg1046/AppTracking/internal/service/location"
	"github.com/Andresg1046/AppTracking/pkg/logger"
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
	tokens          TokenParser
	driverService   DriverService
	locationService LocationService
	hub             Hub
}

func New(
	log handlerLogger,
	tokens TokenParser,
	driverService DriverService,
	locationService LocationService,
	hub Hub,
) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:             handlerLog,
		tokens:          tokens,
		driverService:   driverService,
		locationService: locationService,
		hub:             hub,
	}
}

// ServeHTTP authenticates via the token query parameter because browser
// websocket clients cannot set an Authorization header.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, role, err := h.tokens.ParseToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "invalid or expired token", http.StatusUnauthorized)
		return
	}
	if role != auth.RoleDriver && role != auth.RoleAdmin {
		http.Error(w, "insufficient permissions", http.StatusForbidden)
		return
	}

	driverEntity, err := h.driverService.GetDriverByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, driver.ErrDriverNotFound) {
			http.Error(w, "driver profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed",
			logger.NewField("driver_id", driverEntity.ID),
			logger.NewField("error", err),
		)
		return
	}
	observer := wsconn.NewObserver(conn)

	h.hub.AttachDriver(driverEntity.ID, observer)
	defer func() {
		h.hub.DetachDriver(driverEntity.ID, observer)
		_ = observer.Close()
	}()

	h.log.Info("driver channel opened",
		logger.NewField("driver_id", driverEntity.ID),
	)

	for {
		var frame dto.DriverLocationFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Warn("driver channel read failed",
					logger.NewField("driver_id", driverEntity.ID),
					logger.NewField("error", err),
				)
			}
			return
		}

		// Bad input answers in-band and keeps the channel open.
		if frame.Latitude == nil || frame.Longitude == nil {
			if err := observer.Send(dto.ErrorMessage{
				Type:    dto.MessageTypeError,
				Message: "latitude and longitude are required",
			}); err != nil {
				return
			}
			continue
		}

		loc := entities.Location{
			Latitude:  *frame.Latitude,
			Longitude: *frame.Longitude,
			Accuracy:  frame.Accuracy,
			Speed:     frame.Speed,
			Heading:   frame.Heading,
			Timestamp: time.Now().UTC(),
		}

		snapshot, err := h.locationService.RecordUpdate(r.Context(), driverEntity.ID, loc)
		if err != nil {
			message := "failed to record location"
			if errors.Is(err, location.ErrInvalidCoordinates) {
				message = "coordinates out of range"
			}
			if err := observer.Send(dto.ErrorMessage{
				Type:    dto.MessageTypeError,
				Message: message,
			}); err != nil {
				return
			}
			continue
		}

		ack := dto.LocationAck{
			Success:           true,
			Message:           "location recorded",
			Timestamp:         snapshot.GeneratedAt.UTC().Format(time.RFC3339),
			Location:          dto.NewLocationPayload(snapshot.CurrentLocation),
			DistanceRemaining: snapshot.DistanceRemaining,
		}
		if snapshot.EstimatedArrival != nil {
			arrival := snapshot.EstimatedArrival.UTC().Format(time.RFC3339)
			ack.EstimatedArrival = &arrival
		}
		if err := observer.Send(ack); err != nil {
			return
		}
	}
}
