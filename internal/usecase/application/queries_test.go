package application

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetApplicationStats(t *testing.T) {
	now := time.Now().UTC()
	f := newFixture(t,
		pendingApp("p1", "m-1", now),
		pendingApp("p2", "m-2", now),
		reviewed(pendingApp("a1", "m-3", now), domain.ApplicationApproved, now),
		reviewed(pendingApp("r1", "m-4", now), domain.ApplicationRejected, now),
	)

	stats, err := f.uc.GetApplicationStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.ApplicationStats{Total: 4, Pending: 2, Approved: 1, Rejected: 1}, stats)
}

func TestGetApplicationStats_Empty(t *testing.T) {
	f := newFixture(t)

	stats, err := f.uc.GetApplicationStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.ApplicationStats{}, stats)
}

func TestGetApplicationByMerchantID_ReturnsLatest(t *testing.T) {
	older := reviewed(pendingApp("old", "m-1", time.Now().Add(-48*time.Hour)), domain.ApplicationRejected, time.Now().Add(-24*time.Hour))
	newer := pendingApp("new", "m-1", time.Now())
	f := newFixture(t, older, newer)

	app, err := f.uc.GetApplicationByMerchantID(context.Background(), "m-1")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "new", app.ID)

	none, err := f.uc.GetApplicationByMerchantID(context.Background(), "m-unknown")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestGetApplicationByID_Missing(t *testing.T) {
	f := newFixture(t)

	app, err := f.uc.GetApplicationByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestListApplications_ByStatus(t *testing.T) {
	now := time.Now().UTC()
	f := newFixture(t,
		pendingApp("p1", "m-1", now),
		reviewed(pendingApp("a1", "m-2", now), domain.ApplicationApproved, now),
	)

	pending := domain.ApplicationPending
	apps, err := f.uc.ListApplications(context.Background(), &pending)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "p1", apps[0].ID)

	all, err := f.uc.ListApplications(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	rejected := domain.ApplicationRejected
	none, err := f.uc.ListApplications(context.Background(), &rejected)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
