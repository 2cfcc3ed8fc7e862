package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/resp"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether the backing storage is reachable.
type Pinger func(ctx context.Context) error

type RouterConfig struct {
	Applications *ApplicationHandler
	Stores       *StoreHandler
	Gatherer     prometheus.Gatherer
	Ping         Pinger
	Log          logger.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(cfg.Log))

	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	r.GET("/healthz", healthz(cfg.Ping))

	api := r.Group("/api/v1")
	api.GET("/templates", cfg.Stores.ListTemplates)
	api.GET("/templates/:id", cfg.Stores.GetTemplate)
	api.GET("/stores/:slug", cfg.Stores.GetBySlug)
	api.GET("/merchants/:merchantId/stores", cfg.Stores.ListByMerchant)

	authed := api.Group("", middleware.Identity())
	authed.POST("/applications", cfg.Applications.Submit)
	authed.GET("/applications/:id", cfg.Applications.GetByID)
	authed.GET("/merchants/:merchantId/application", cfg.Applications.GetByMerchant)

	admin := authed.Group("", middleware.RequireRole(middleware.RoleAdmin))
	admin.GET("/applications", cfg.Applications.List)
	admin.GET("/applications/stats", cfg.Applications.Stats)
	admin.POST("/applications/:id/approve", cfg.Applications.Approve)
	admin.POST("/applications/:id/reject", cfg.Applications.Reject)
	admin.POST("/applications/:id/provisioning/retry", cfg.Applications.RetryProvisioning)

	return r
}

func healthz(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				resp.Unavailable(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "status": "serving"})
	}
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		log.Debug("http request", map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(started).Milliseconds(),
		})
	}
}
