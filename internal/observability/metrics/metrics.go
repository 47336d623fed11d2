package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics counts booking engine and ledger outcomes.
type BookingMetrics struct {
	reservations *prometheus.CounterVec
	cancels      *prometheus.CounterVec
	ledgerOps    *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	viewCache    *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slotbook",
			Subsystem: "booking",
			Name:      "reservations_total",
			Help:      "Reserve attempts by outcome",
		}, []string{"outcome"}),
		cancels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slotbook",
			Subsystem: "booking",
			Name:      "cancellations_total",
			Help:      "Cancel attempts by outcome",
		}, []string{"outcome"}),
		ledgerOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slotbook",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Availability ledger writes by operation and outcome",
		}, []string{"op", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "slotbook",
			Subsystem: "booking",
			Name:      "operation_duration_seconds",
			Help:      "Latency of booking operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		viewCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slotbook",
			Subsystem: "views",
			Name:      "cache_lookups_total",
			Help:      "Appointment view cache lookups by result",
		}, []string{"result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.reservations, m.cancels, m.ledgerOps, m.latency, m.viewCache)
	return m
}

func (m *BookingMetrics) ObserveReserve(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.reservations.WithLabelValues(outcome).Inc()
	m.latency.WithLabelValues("reserve").Observe(d.Seconds())
}

func (m *BookingMetrics) ObserveCancel(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.cancels.WithLabelValues(outcome).Inc()
	m.latency.WithLabelValues("cancel").Observe(d.Seconds())
}

func (m *BookingMetrics) ObserveLedger(op, outcome string) {
	if m == nil {
		return
	}
	m.ledgerOps.WithLabelValues(op, outcome).Inc()
}

func (m *BookingMetrics) ObserveViewCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.viewCache.WithLabelValues(result).Inc()
}
