package hub

import (
	"sync"
	"time"

	"github.com/Andresg1046/AppTracking/internal/dto"
	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/pkg/logger"
)

// Observer is one realtime consumer. The websocket adapter implements
// it in the transport layer, tests use in-memory fakes.
type Observer interface {
	Send(message any) error
	Close() error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}

// Subscription is one observer's membership on an order channel.
type Subscription struct {
	observer    Observer
	orderNumber string

	// sendMu serializes delivery so the ordering guard and the send it
	// protects happen atomically per subscription.
	sendMu     sync.Mutex
	lastPushed time.Time // guarded by sendMu

	// guarded by the hub mutex
	lastActive time.Time
}

// Hub owns every realtime registry. All registry mutation happens under
// one mutex; sends go out on a copied list so a slow observer never
// holds the lock.
type Hub struct {
	log     handlerLogger
	metrics *Metrics

	mu       sync.Mutex
	orders   map[string]map[*Subscription]struct{}
	drivers  map[int64]Observer
	lastSeen map[string]entities.TrackingSnapshot
}

func New(log handlerLogger, metrics *Metrics) *Hub {
	return &Hub{
		log:      log,
		metrics:  metrics,
		orders:   make(map[string]map[*Subscription]struct{}),
		drivers:  make(map[int64]Observer),
		lastSeen: make(map[string]entities.TrackingSnapshot),
	}
}

// Subscribe registers an observer for an order. The last known snapshot,
// if any, is delivered immediately so a late subscriber is not blind
// until the next driver report.
func (h *Hub) Subscribe(orderNumber string, observer Observer) *Subscription {
	sub := &Subscription{
		observer:    observer,
		orderNumber: orderNumber,
		lastActive:  time.Now(),
	}

	h.mu.Lock()
	if h.orders[orderNumber] == nil {
		h.orders[orderNumber] = make(map[*Subscription]struct{})
	}
	h.orders[orderNumber][sub] = struct{}{}
	last, hasLast := h.lastSeen[orderNumber]
	h.metrics.ObserverConnected()
	h.mu.Unlock()

	if hasLast {
		h.push(sub, last, false)
	}

	h.log.Debug("tracking observer subscribed",
		logger.NewField("order_number", orderNumber),
	)
	return sub
}

// Unsubscribe removes a subscription. Safe to call more than once.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	h.removeLocked(sub)
	h.mu.Unlock()
}

// AttachDriver registers the driver's inbound channel. A reconnect
// replaces the previous channel, which gets closed.
func (h *Hub) AttachDriver(driverID int64, observer Observer) {
	h.mu.Lock()
	previous := h.drivers[driverID]
	h.drivers[driverID] = observer
	if previous == nil {
		h.metrics.DriverConnected()
	}
	h.mu.Unlock()

	if previous != nil {
		_ = previous.Close()
		h.log.Info("driver channel replaced",
			logger.NewField("driver_id", driverID),
		)
	}
}

// DetachDriver drops the driver's channel, but only if it still is the
// one passed in. A reconnect that already replaced it stays attached.
func (h *Hub) DetachDriver(driverID int64, observer Observer) {
	h.mu.Lock()
	if current, ok := h.drivers[driverID]; ok && current == observer {
		delete(h.drivers, driverID)
		h.metrics.DriverDisconnected()
	}
	h.mu.Unlock()
}

// Publish fans a snapshot out to every observer of its order. Failed
// sends prune the subscription and never abort the rest of the fan-out.
func (h *Hub) Publish(snapshot entities.TrackingSnapshot) {
	h.mu.Lock()
	h.lastSeen[snapshot.OrderNumber] = snapshot
	subs := h.subscribersLocked(snapshot.OrderNumber)
	h.mu.Unlock()

	for _, sub := range subs {
		h.push(sub, snapshot, false)
	}
}

// Deliver pushes a snapshot to one subscription through the same
// ordering guard as Publish. The tracking handler uses it for the
// initial storage-built snapshot, which gets dropped when the hub
// already replayed a fresher one on Subscribe.
func (h *Hub) Deliver(sub *Subscription, snapshot entities.TrackingSnapshot) {
	if sub == nil {
		return
	}
	h.push(sub, snapshot, false)
}

// NotifyClosed sends the terminal message to every observer of the
// order, then closes them and drops the whole order entry.
func (h *Hub) NotifyClosed(orderNumber string, status entities.DeliveryStatusType) {
	h.mu.Lock()
	subs := h.subscribersLocked(orderNumber)
	for sub := range h.orders[orderNumber] {
		delete(h.orders[orderNumber], sub)
		h.metrics.ObserverDisconnected()
	}
	delete(h.orders, orderNumber)
	delete(h.lastSeen, orderNumber)
	h.mu.Unlock()

	message := dto.NewClosedMessage(orderNumber, status)
	for _, sub := range subs {
		_ = sub.observer.Send(message)
		_ = sub.observer.Close()
	}

	h.log.Info("tracking channel closed",
		logger.NewField("order_number", orderNumber),
		logger.NewField("status", status.String()),
		logger.NewField("observers", len(subs)),
	)
}

// staleSnapshotAge bounds how long an unobserved snapshot is retained.
// An order closed in another process never gets a NotifyClosed here, so
// its entry has to age out instead.
const staleSnapshotAge = time.Hour

// Heartbeat re-pushes the last snapshot of every order so observers see
// a bounded-lag signal even when the driver app goes quiet.
func (h *Hub) Heartbeat() {
	h.mu.Lock()
	type delivery struct {
		sub      *Subscription
		snapshot entities.TrackingSnapshot
	}
	deliveries := make([]delivery, 0)
	for orderNumber, snapshot := range h.lastSeen {
		if len(h.orders[orderNumber]) == 0 {
			if time.Since(snapshot.GeneratedAt) > staleSnapshotAge {
				delete(h.lastSeen, orderNumber)
			}
			continue
		}
		for sub := range h.orders[orderNumber] {
			deliveries = append(deliveries, delivery{sub: sub, snapshot: snapshot})
		}
	}
	h.mu.Unlock()

	for _, d := range deliveries {
		h.push(d.sub, d.snapshot, true)
	}
}

// SweepIdle prunes subscriptions with no successful send within maxIdle.
func (h *Hub) SweepIdle(maxIdle time.Duration) int {
	deadline := time.Now().Add(-maxIdle)

	h.mu.Lock()
	stale := make([]*Subscription, 0)
	for _, subs := range h.orders {
		for sub := range subs {
			if sub.lastActive.Before(deadline) {
				stale = append(stale, sub)
			}
		}
	}
	for _, sub := range stale {
		h.removeLocked(sub)
	}
	h.mu.Unlock()

	for _, sub := range stale {
		_ = sub.observer.Close()
	}
	return len(stale)
}

// Stats reports current registry sizes for the status endpoint.
func (h *Hub) Stats() (orders, observers, drivers int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	orders = len(h.orders)
	for _, subs := range h.orders {
		observers += len(subs)
	}
	drivers = len(h.drivers)
	return orders, observers, drivers
}

// push delivers one snapshot outside the hub lock. The timestamp guard
// and the send run under the subscription's sendMu, so concurrent
// publishes and the heartbeat cannot reorder deliveries on a single
// channel. resend lets the heartbeat repeat the latest snapshot, every
// other path drops anything not strictly newer than the last delivery.
func (h *Hub) push(sub *Subscription, snapshot entities.TrackingSnapshot, resend bool) {
	sub.sendMu.Lock()
	stale := snapshot.GeneratedAt.Before(sub.lastPushed)
	if !resend {
		stale = !snapshot.GeneratedAt.After(sub.lastPushed)
	}
	if stale {
		sub.sendMu.Unlock()
		return
	}

	err := sub.observer.Send(dto.NewTrackingMessage(snapshot))
	if err == nil && snapshot.GeneratedAt.After(sub.lastPushed) {
		sub.lastPushed = snapshot.GeneratedAt
	}
	sub.sendMu.Unlock()

	if err != nil {
		h.mu.Lock()
		h.removeLocked(sub)
		h.mu.Unlock()
		_ = sub.observer.Close()
		h.log.Warn("observer send failed, pruned",
			logger.NewField("order_number", sub.orderNumber),
			logger.NewField("error", err),
		)
		return
	}

	h.mu.Lock()
	sub.lastActive = time.Now()
	h.mu.Unlock()
}

func (h *Hub) subscribersLocked(orderNumber string) []*Subscription {
	subs := make([]*Subscription, 0, len(h.orders[orderNumber]))
	for sub := range h.orders[orderNumber] {
		subs = append(subs, sub)
	}
	return subs
}

func (h *Hub) removeLocked(sub *Subscription) {
	subs, ok := h.orders[sub.orderNumber]
	if !ok {
		return
	}
	if _, member := subs[sub]; !member {
		return
	}
	delete(subs, sub)
	h.metrics.ObserverDisconnected()
	// lastSeen stays until NotifyClosed so a late subscriber still
	// gets an initial snapshot.
	if len(subs) == 0 {
		delete(h.orders, sub.orderNumber)
	}
}
