package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/linskybing/storeops-go/internal/api/handlers"
	"github.com/linskybing/storeops-go/internal/api/middleware"
	"github.com/linskybing/storeops-go/internal/api/routes"
	"github.com/linskybing/storeops-go/internal/bootstrap"
	"github.com/linskybing/storeops-go/internal/config"
	"github.com/linskybing/storeops-go/internal/cron"
)

var logger = loggo.GetLogger("storeops.api")

// @title StoreOps API
// @version 1.0
// @description Store operations forms, alerts and reference data.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := bootstrap.Start(ctx, true)
	if err != nil {
		logger.Criticalf("startup failed: %s", errors.ErrorStack(err))
		os.Exit(1)
	}
	defer rt.Hub.Close()

	if err := rt.Prime(); err != nil {
		logger.Criticalf("priming data failed: %s", errors.ErrorStack(err))
		os.Exit(1)
	}

	if config.EmbeddedJobs {
		cron.StartFollowUpTask(ctx, clock.WallClock, rt.Services.Form, config.FollowUpInterval, config.FollowUpAfter)
		cron.StartCleanupTask(ctx, clock.WallClock, rt.Services.Audit, config.AuditRetentionDays)
	}

	gin.SetMode(config.GinMode)
	router := routes.NewRouter(handlers.New(rt.Services, rt.Repos, rt.Hub))

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Criticalf("failed to start: %v", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.Infof("shutdown signal")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
}
