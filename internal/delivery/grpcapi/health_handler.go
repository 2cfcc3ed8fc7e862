package grpcapi

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported alongside the overall ("") status.
const ServiceName = "storefront.StorefrontService"

type HealthHandler struct {
	*health.Server
	ping    func(ctx context.Context) error
	timeout time.Duration
	log     logger.Logger
	serving bool
}

func NewHealthHandler(ping func(ctx context.Context) error, log logger.Logger) *HealthHandler {
	h := &HealthHandler{
		Server:  health.NewServer(),
		ping:    ping,
		timeout: 2 * time.Second,
		log:     log,
	}
	h.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

func (h *HealthHandler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.Server)
}

// Probe pings storage once and updates the reported status.
func (h *HealthHandler) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		if h.serving {
			h.log.WithError(err).Warn("storage ping failed, reporting NOT_SERVING", nil)
		}
		h.serving = false
		h.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	if !h.serving {
		h.log.Info("storage reachable, reporting SERVING", nil)
	}
	h.serving = true
	h.set(healthpb.HealthCheckResponse_SERVING)
}

// Run probes every interval until ctx is done, then marks everything NOT_SERVING.
func (h *HealthHandler) Run(ctx context.Context, interval time.Duration) {
	h.Probe(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.Shutdown()
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

func (h *HealthHandler) set(status healthpb.HealthCheckResponse_ServingStatus) {
	h.SetServingStatus("", status)
	h.SetServingStatus(ServiceName, status)
}
