package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	MediaUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "petstar",
			Subsystem: "media",
			Name:      "uploads_total",
			Help:      "Media files uploaded while creating or updating records",
		},
		[]string{"kind", "slot", "status"},
	)

	MediaCompensationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "petstar",
			Subsystem: "media",
			Name:      "compensations_total",
			Help:      "Compensating deletes issued after a failed creation",
		},
		[]string{"kind", "status"},
	)

	ObjectOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "petstar",
			Subsystem: "object_store",
			Name:      "operations_total",
			Help:      "Object storage operations",
		},
		[]string{"operation", "status"},
	)

	ObjectOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "petstar",
			Subsystem: "object_store",
			Name:      "operation_duration_seconds",
			Help:      "Object storage operation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 15},
		},
		[]string{"operation"},
	)
)

func RecordUpload(kind, slot string, err error) {
	MediaUploadsTotal.WithLabelValues(kind, slot, status(err)).Inc()
}

func RecordCompensation(kind string, err error) {
	MediaCompensationsTotal.WithLabelValues(kind, status(err)).Inc()
}

func RecordObjectOperation(operation string, err error, durationSec float64) {
	ObjectOperationsTotal.WithLabelValues(operation, status(err)).Inc()
	ObjectOperationDuration.WithLabelValues(operation).Observe(durationSec)
}

func status(err error) string {
	if err != nil {
		return StatusFailure
	}

	return StatusSuccess
}
