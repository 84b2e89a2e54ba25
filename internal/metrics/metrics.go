package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mafia"

// Metrics holds the game collectors
type Metrics struct {
	roomsCreated  prometheus.Counter
	roomsActive   prometheus.Gauge
	gamesStarted  prometheus.Counter
	gamesFinished *prometheus.CounterVec
	arrivals      *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, errors.New("registerer cannot be nil")
	}

	m := &Metrics{
		roomsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_created_total",
			Help:      "Rooms created since start.",
		}),
		roomsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms_active",
			Help:      "Rooms currently held in the registry.",
		}),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games whose roles were dealt.",
		}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Games finished, by outcome.",
		}, []string{"outcome"}),
		arrivals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_arrivals_total",
			Help:      "Barrier arrivals, by phase.",
		}, []string{"phase"}),
	}

	for _, c := range []prometheus.Collector{m.roomsCreated, m.roomsActive, m.gamesStarted, m.gamesFinished, m.arrivals} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RoomCreated counts a new room and adds it to the active gauge
func (m *Metrics) RoomCreated() {
	m.roomsCreated.Inc()
	m.roomsActive.Inc()
}

// RoomRemoved drops a room from the active gauge
func (m *Metrics) RoomRemoved() {
	m.roomsActive.Dec()
}

func (m *Metrics) GameStarted() {
	m.gamesStarted.Inc()
}

func (m *Metrics) GameFinished(outcome string) {
	m.gamesFinished.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PhaseArrival(phase string) {
	m.arrivals.WithLabelValues(phase).Inc()
}

// Handler exposes the metrics gathered by g at /metrics
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
