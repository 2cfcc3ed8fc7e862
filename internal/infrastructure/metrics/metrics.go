package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"

	ProvisioningSucceeded = "succeeded"
	ProvisioningFailed    = "failed"
)

// ApplicationMetrics covers the application lifecycle and store provisioning.
type ApplicationMetrics struct {
	ApplicationsSubmittedTotal *prometheus.CounterVec
	ApplicationDecisionsTotal  *prometheus.CounterVec
	ApplicationConflictsTotal  *prometheus.CounterVec

	StoresProvisionedTotal *prometheus.CounterVec
	ProvisioningDuration   prometheus.Histogram
	SlugCollisionsTotal    prometheus.Counter

	SampleItemsSeededTotal *prometheus.CounterVec
}

func NewApplicationMetrics(reg prometheus.Registerer) *ApplicationMetrics {
	factory := promauto.With(reg)
	return &ApplicationMetrics{
		ApplicationsSubmittedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_applications_submitted_total",
				Help: "Store applications accepted for review",
			},
			[]string{"template_id", "business_type"},
		),
		ApplicationDecisionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_application_decisions_total",
				Help: "Applied reviewer decisions",
			},
			[]string{"decision"},
		),
		ApplicationConflictsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_application_conflicts_total",
				Help: "Decisions that lost an optimistic concurrency race",
			},
			[]string{"operation"},
		),
		StoresProvisionedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stores_provisioned_total",
				Help: "Store provisioning attempts by result",
			},
			[]string{"result"},
		),
		ProvisioningDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "store_provisioning_duration_seconds",
				Help:    "Time spent creating and seeding a store",
				Buckets: prometheus.DefBuckets,
			},
		),
		SlugCollisionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "store_slug_collisions_total",
				Help: "Slug conflicts resolved by suffixing",
			},
		),
		SampleItemsSeededTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_sample_items_seeded_total",
				Help: "Sample catalog rows inserted",
			},
			[]string{"template_id"},
		),
	}
}

func (m *ApplicationMetrics) RecordSubmitted(templateID, businessType string) {
	if m == nil {
		return
	}
	m.ApplicationsSubmittedTotal.WithLabelValues(templateID, businessType).Inc()
}

func (m *ApplicationMetrics) RecordDecision(decision string) {
	if m == nil {
		return
	}
	m.ApplicationDecisionsTotal.WithLabelValues(decision).Inc()
}

func (m *ApplicationMetrics) RecordConflict(operation string) {
	if m == nil {
		return
	}
	m.ApplicationConflictsTotal.WithLabelValues(operation).Inc()
}

func (m *ApplicationMetrics) RecordProvisioning(result string, started time.Time) {
	if m == nil {
		return
	}
	m.StoresProvisionedTotal.WithLabelValues(result).Inc()
	m.ProvisioningDuration.Observe(time.Since(started).Seconds())
}

func (m *ApplicationMetrics) RecordSlugCollision() {
	if m == nil {
		return
	}
	m.SlugCollisionsTotal.Inc()
}

func (m *ApplicationMetrics) RecordSeeded(templateID string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SampleItemsSeededTotal.WithLabelValues(templateID).Add(float64(n))
}
