package hub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	observersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracking_observers_active",
			Help: "Currently connected order tracking observers",
		},
	)

	driverChannelsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracking_driver_channels_active",
			Help: "Currently connected driver location channels",
		},
	)
)

// Metrics wraps the hub gauges so tests can pass a nil-safe instance.
type Metrics struct {
	enabled bool
}

func NewMetrics() *Metrics {
	return &Metrics{enabled: true}
}

// NewNopMetrics keeps tests away from the global registry.
func NewNopMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) ObserverConnected() {
	if m.enabled {
		observersActive.Inc()
	}
}

func (m *Metrics) ObserverDisconnected() {
	if m.enabled {
		observersActive.Dec()
	}
}

func (m *Metrics) DriverConnected() {
	if m.enabled {
		driverChannelsActive.Inc()
	}
}

func (m *Metrics) DriverDisconnected() {
	if m.enabled {
		driverChannelsActive.Dec()
	}
}
