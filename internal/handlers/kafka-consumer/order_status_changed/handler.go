package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/service/delivery"
	"github.com/Andresg1046/AppTracking/pkg/logger"
)

// statusEvent is the commerce platform's order status change payload.
type statusEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type Handler struct {
	deliveryService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, deliveryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		deliveryService:          deliveryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled, the message will be
// redelivered); false continues with the next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	// Only cancellations touch an assignment. Completed and refunded
	// orders finish through the driver status flow.
	if entities.OrderStatusType(event.Status) != entities.OrderCancelled {
		msgLog.Info("order.status.changed: skipped")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.status.changed processing")

	err = h.deliveryService.FailForCancelledOrder(ctx, event.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, delivery.ErrInvalidOrderID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler bad order id in event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to close assignment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
