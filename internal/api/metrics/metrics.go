// Package metrics defines and registers all custom Prometheus metrics for
// the clinic API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// AppointmentsSavedTotal counts persisted bookings.
// Label:
//   - action: "created" (new booking) or "updated" (edit of an existing one)
var AppointmentsSavedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_saved_total",
		Help:      "Total number of appointments persisted, by action.",
	},
	[]string{"action"},
)

// BookingRejectionsTotal counts bookings refused before persistence.
// Label:
//   - reason: "conflict" (overlapping slot) or "slot_locked" (concurrent attempt)
var BookingRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_rejections_total",
		Help:      "Total number of bookings rejected, by reason.",
	},
	[]string{"reason"},
)

// AppointmentsToggledTotal counts soft-delete flips.
// Label:
//   - state: "activated" or "deactivated"
var AppointmentsToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_toggled_total",
		Help:      "Total number of appointment activation toggles, by resulting state.",
	},
	[]string{"state"},
)

// AuditQueueDepth tracks the events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditRecordDuration measures how long recording a single audit event takes.
// Label:
//   - kind: the event kind ("created", "updated", "activated", "deactivated"), or "error"
var AuditRecordDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_record_duration_seconds",
		Help:      "Duration of audit event persistence from dequeue to write.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)
