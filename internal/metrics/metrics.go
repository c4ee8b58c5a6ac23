// Package metrics exposes Prometheus collectors for reminder activity.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mystreak"

// Scan outcomes recorded by ObserveScan.
const (
	ScanSkipped = "skipped"
	ScanIdle    = "idle"
	ScanAlert   = "alert"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	reminders       prometheus.Gauge
	created         prometheus.Counter
	deleted         prometheus.Counter
	completed       prometheus.Counter
	scans           *prometheus.CounterVec
	alertsPublished *prometheus.CounterVec
}

// New registers the collectors with reg, reusing collectors that are already
// registered under the same names.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		reminders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reminders",
			Help:      "Number of reminders currently stored.",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_created_total",
			Help:      "Reminders added.",
		}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_deleted_total",
			Help:      "Reminders removed.",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_completions_total",
			Help:      "Reminder completions recorded.",
		}),
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "ticks_total",
			Help:      "Due-check ticks by outcome.",
		}, []string{"outcome"}),
		alertsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_published_total",
			Help:      "Alerts placed in the current alert slot, by source.",
		}, []string{"source"}),
	}

	if err := register(reg, &m.reminders); err != nil {
		return nil, err
	}
	if err := register(reg, &m.created); err != nil {
		return nil, err
	}
	if err := register(reg, &m.deleted); err != nil {
		return nil, err
	}
	if err := register(reg, &m.completed); err != nil {
		return nil, err
	}
	if err := register(reg, &m.scans); err != nil {
		return nil, err
	}
	if err := register(reg, &m.alertsPublished); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector *C) error {
	err := reg.Register(*collector)
	if err == nil {
		return nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			*collector = existing
			return nil
		}
	}
	return err
}

// SetReminders records the current collection size.
func (m *Metrics) SetReminders(n int) {
	if m == nil {
		return
	}
	m.reminders.Set(float64(n))
}

// ReminderCreated counts an add.
func (m *Metrics) ReminderCreated() {
	if m == nil {
		return
	}
	m.created.Inc()
}

// ReminderDeleted counts a delete.
func (m *Metrics) ReminderDeleted() {
	if m == nil {
		return
	}
	m.deleted.Inc()
}

// ReminderCompleted counts a completion.
func (m *Metrics) ReminderCompleted() {
	if m == nil {
		return
	}
	m.completed.Inc()
}

// ObserveScan counts a scheduler tick with the given outcome.
func (m *Metrics) ObserveScan(outcome string) {
	if m == nil {
		return
	}
	m.scans.WithLabelValues(outcome).Inc()
}

// AlertPublished counts an alert from source ("scheduler" or "random").
func (m *Metrics) AlertPublished(source string) {
	if m == nil {
		return
	}
	m.alertsPublished.WithLabelValues(source).Inc()
}
