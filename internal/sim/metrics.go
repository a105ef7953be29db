package sim

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts finished runs for Prometheus.
type Metrics struct {
	games  *prometheus.CounterVec
	days   prometheus.Histogram
	deaths *prometheus.CounterVec
}

// NewMetrics creates the batch metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wolfsim_games_total",
			Help: "Finished games by winning faction (none for a draw).",
		}, []string{"winner"}),
		days: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wolfsim_game_days",
			Help:    "Length of finished games in days.",
			Buckets: prometheus.LinearBuckets(1, 1, 12),
		}),
		deaths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wolfsim_deaths_total",
			Help: "Agent deaths by cause.",
		}, []string{"cause"}),
	}
	for _, c := range []prometheus.Collector{m.games, m.days, m.deaths} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// Observe records one outcome.
func (m *Metrics) Observe(o Outcome) {
	m.games.WithLabelValues(o.Result.Winner.String()).Inc()
	m.days.Observe(float64(o.Result.Days))
	for _, d := range o.Result.Deaths {
		m.deaths.WithLabelValues(d.Cause.String()).Inc()
	}
}

// WriteTextfile writes everything g gathers to path in the node-exporter
// textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
