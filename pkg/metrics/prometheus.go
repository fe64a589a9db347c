package metrics

import (
	drepo "TradingHours/internal/domain/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	emailsTotal *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	marketOpen  *prometheus.GaugeVec
	latency     *prometheus.HistogramVec
}

var _ drepo.Metrics = (*Recorder)(nil)

// New creates a recorder registered on reg; nil means the default registry.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		emailsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trading_hours_emails_total",
				Help: "Delivery outcomes per subscriber",
			},
			[]string{"status"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trading_hours_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		marketOpen: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trading_hours_market_open",
				Help: "1 if the exchange session was open at the last evaluation",
			},
			[]string{"exchange"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trading_hours_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordEmail records one delivery outcome (sent, skipped, failed).
func (r *Recorder) RecordEmail(status string) {
	r.emailsTotal.WithLabelValues(status).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

func (r *Recorder) RecordMarketState(exchange string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	r.marketOpen.WithLabelValues(exchange).Set(v)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// Nop discards everything. Used where no registry is exposed.
type Nop struct{}

var _ drepo.Metrics = Nop{}

func (Nop) RecordEmail(string)             {}
func (Nop) RecordError(string)             {}
func (Nop) RecordMarketState(string, bool) {}
func (Nop) RecordLatency(string, float64)  {}
