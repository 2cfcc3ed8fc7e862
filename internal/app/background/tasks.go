package background

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
)

// ProvisioningRetrier is the slice of the application usecase the retry loop needs.
type ProvisioningRetrier interface {
	RetryFailedProvisioning(ctx context.Context) (int, error)
}

type BackgroundTasks struct {
	Applications  ProvisioningRetrier
	RetryInterval time.Duration
	Log           logger.Logger
}

func NewBackgroundTasks(apps ProvisioningRetrier, retryInterval time.Duration, log logger.Logger) *BackgroundTasks {
	return &BackgroundTasks{
		Applications:  apps,
		RetryInterval: retryInterval,
		Log:           log,
	}
}

// StartAll launches every enabled task. A zero interval disables the task.
func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	if bt.RetryInterval > 0 {
		go bt.startProvisioningRetry(ctx)
	} else {
		bt.Log.Info("provisioning retry disabled", nil)
	}
}

func (bt *BackgroundTasks) startProvisioningRetry(ctx context.Context) {
	ticker := time.NewTicker(bt.RetryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.retryProvisioning(ctx)
		}
	}
}

func (bt *BackgroundTasks) retryProvisioning(ctx context.Context) {
	recovered, err := bt.Applications.RetryFailedProvisioning(ctx)
	if err != nil {
		bt.Log.WithError(err).Error("provisioning retry sweep failed", nil)
		return
	}
	if recovered > 0 {
		bt.Log.Info("stores recovered by provisioning retry", map[string]interface{}{"count": recovered})
	}
}
