package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestApplicationMetrics_Counters(t *testing.T) {
	m := NewApplicationMetrics(prometheus.NewRegistry())

	m.RecordSubmitted("fashion-elegance", "fashion")
	m.RecordSubmitted("fashion-elegance", "fashion")
	m.RecordDecision(DecisionApproved)
	m.RecordProvisioning(ProvisioningFailed, time.Now())
	m.RecordSlugCollision()
	m.RecordSeeded("tech-modern", 6)
	m.RecordSeeded("tech-modern", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ApplicationsSubmittedTotal.WithLabelValues("fashion-elegance", "fashion")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ApplicationDecisionsTotal.WithLabelValues(DecisionApproved)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ApplicationDecisionsTotal.WithLabelValues(DecisionRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoresProvisionedTotal.WithLabelValues(ProvisioningFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlugCollisionsTotal))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.SampleItemsSeededTotal.WithLabelValues("tech-modern")))
}

func TestApplicationMetrics_NilSafe(t *testing.T) {
	var m *ApplicationMetrics
	assert.NotPanics(t, func() {
		m.RecordSubmitted("t", "b")
		m.RecordDecision(DecisionRejected)
		m.RecordConflict("approve")
		m.RecordProvisioning(ProvisioningSucceeded, time.Now())
		m.RecordSlugCollision()
		m.RecordSeeded("tech-modern", 1)
	})
}

func TestNewApplicationMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewApplicationMetrics(prometheus.NewRegistry())
		NewApplicationMetrics(prometheus.NewRegistry())
	})
}
