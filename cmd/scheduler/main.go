package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/linskybing/storeops-go/internal/bootstrap"
	"github.com/linskybing/storeops-go/internal/config"
	"github.com/linskybing/storeops-go/internal/cron"
)

var logger = loggo.GetLogger("storeops.scheduler")

// The scheduler runs the follow-up and audit retention jobs on their own,
// for deployments that start the API with EMBEDDED_JOBS=false.
func main() {
	config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// No hub here: follow-up alerts are stored and mailed but not pushed.
	rt, err := bootstrap.Start(ctx, false)
	if err != nil {
		logger.Criticalf("startup failed: %s", errors.ErrorStack(err))
		os.Exit(1)
	}

	cron.StartFollowUpTask(ctx, clock.WallClock, rt.Services.Form, config.FollowUpInterval, config.FollowUpAfter)
	cron.StartCleanupTask(ctx, clock.WallClock, rt.Services.Audit, config.AuditRetentionDays)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.Infof("shutdown signal")
}
