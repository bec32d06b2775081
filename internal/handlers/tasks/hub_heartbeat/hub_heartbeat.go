package hub_heartbeat

import (
	"context"
	"time"
)

type Hub interface {
	Heartbeat()
}

// HubHeartbeat pings every connected observer so dead TCP peers
// surface as failed writes and get pruned.
type HubHeartbeat struct {
	hub      Hub
	interval time.Duration
}

func New(hub Hub, interval time.Duration) *HubHeartbeat {
	return &HubHeartbeat{
		hub:      hub,
		interval: interval,
	}
}

func (h *HubHeartbeat) TTL() time.Duration {
	return h.interval
}

func (h *HubHeartbeat) Do(context.Context) error {
	h.hub.Heartbeat()
	return nil
}

func (h *HubHeartbeat) Info() string {
	return "hub heartbeat"
}
