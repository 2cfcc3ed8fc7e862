package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-storefront-service/internal/app/background"
	"github.com/LavaJover/shvark-storefront-service/internal/app/setup"
	"github.com/LavaJover/shvark-storefront-service/internal/config"
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zl, err := logger.New(cfg.LogConfig.LogLevel, cfg.LogConfig.LogFormat)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()
	appLog := logger.NewZapAdapter(zl).With(map[string]interface{}{"service": "store-service", "env": cfg.Env})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.InitializeDependencies(ctx, cfg, appLog)
	if err != nil {
		appLog.WithError(err).Error("failed to init dependencies", nil)
		return
	}
	defer deps.Close()

	uc, err := setup.InitializeUseCases(deps)
	if err != nil {
		appLog.WithError(err).Error("failed to init usecases", nil)
		return
	}

	// Background retry of failed store setups
	background.NewBackgroundTasks(uc.ApplicationUsecase, cfg.Provisioning.RetryInterval, appLog).StartAll(ctx)

	// gRPC health
	grpcServer := grpc.NewServer()
	healthHandler := grpcapi.NewHealthHandler(deps.Ping, appLog)
	healthHandler.Register(grpcServer)
	go healthHandler.Run(ctx, 10*time.Second)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		appLog.WithError(err).Error("failed to listen", nil)
		return
	}
	go func() {
		appLog.Info("gRPC server started", map[string]interface{}{"addr": lis.Addr().String()})
		if err := grpcServer.Serve(lis); err != nil {
			appLog.WithError(err).Error("gRPC server stopped", nil)
		}
	}()

	// HTTP API
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(handlers.RouterConfig{
		Applications: handlers.NewApplicationHandler(uc.ApplicationUsecase, uc.Templates, appLog),
		Stores:       handlers.NewStoreHandler(uc.StoreUsecase, appLog),
		Gatherer:     deps.Registry,
		Ping:         deps.Ping,
		Log:          appLog,
	})
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}
	go func() {
		appLog.Info("HTTP server started", map[string]interface{}{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.WithError(err).Error("HTTP server stopped", nil)
			stop()
		}
	}()

	<-ctx.Done()
	appLog.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("HTTP shutdown failed", nil)
	}
	grpcServer.GracefulStop()
	uc.ApplicationUsecase.Wait()
}
