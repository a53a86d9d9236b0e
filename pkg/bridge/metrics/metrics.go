// Package metrics exports servo controller metrics to Prometheus.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

// NewRegistry creates a Registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the metrics of reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Metrics records controller transactions and polled status.
// It implements maestro.Observer.
type Metrics struct {
	Transactions *prometheus.CounterVec   // labels: op, result
	Latency      *prometheus.HistogramVec // labels: op
	Positions    *prometheus.GaugeVec     // labels: channel
	Moving       prometheus.Gauge
	ErrorBits    *prometheus.CounterVec // labels: error
	PollErrors   prometheus.Counter
}

// New creates Metrics registered to reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "maestro_transactions_total",
			Help: "Commands sent to the controller.",
		}, []string{"op", "result"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "maestro_transaction_seconds",
			Help:    "Duration of controller transactions.",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"op"}),
		Positions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "maestro_channel_position",
			Help: "Last polled position of a channel in quarter-microseconds.",
		}, []string{"channel"}),
		Moving: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "maestro_moving",
			Help: "1 if any servo was moving at the last poll.",
		}),
		ErrorBits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "maestro_device_errors_total",
			Help: "Error conditions reported by the controller.",
		}, []string{"error"}),
		PollErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "maestro_poll_errors_total",
			Help: "Status polls which failed.",
		}),
	}
	reg.MustRegister(m.Transactions, m.Latency, m.Positions, m.Moving, m.ErrorBits, m.PollErrors)
	return m
}

// ObserveTransaction implements maestro.Observer.
func (m *Metrics) ObserveTransaction(op maestro.Opcode, d time.Duration, err error) {
	name := op.String()
	m.Transactions.WithLabelValues(name, Result(err)).Inc()
	m.Latency.WithLabelValues(name).Observe(d.Seconds())
}

// ObserveStatus records a polled status.
// Positions read before a failure are kept, the rest of a failed poll is
// ignored.
func (m *Metrics) ObserveStatus(status *msgs.Status) {
	for n, ch := range status.Channels {
		m.Positions.WithLabelValues(strconv.Itoa(int(ch))).Set(float64(status.Positions[n]))
	}
	if status.Error != "" {
		m.PollErrors.Inc()
		return
	}
	if status.Moving {
		m.Moving.Set(1)
	} else {
		m.Moving.Set(0)
	}
	for _, name := range status.ErrorNames {
		m.ErrorBits.WithLabelValues(name).Inc()
	}
}

// Result classifies a transaction error for the result label.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, maestro.ErrProtocol):
		return "protocol"
	case errors.Is(err, maestro.ErrResponseTimeout):
		return "timeout"
	}
	return "io"
}
