package cron

import (
	"context"
	"time"

	"github.com/juju/clock"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("storeops.cron")

// FollowUpper re-alerts recipients of forms left pending too long.
type FollowUpper interface {
	FollowUpStale(ctx context.Context, after time.Duration) (int, error)
}

// AuditCleaner prunes the audit trail.
type AuditCleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

// every runs fn once right away and then after each interval until ctx is done.
func every(ctx context.Context, clk clock.Clock, interval time.Duration, fn func(context.Context)) {
	go func() {
		fn(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-clk.After(interval):
				fn(ctx)
			}
		}
	}()
}

// StartFollowUpTask sends a follow_up alert for every form still pending
// after the given age, once per interval.
func StartFollowUpTask(ctx context.Context, clk clock.Clock, forms FollowUpper, interval, after time.Duration) {
	if interval <= 0 {
		logger.Infof("follow-up task disabled")
		return
	}
	logger.Infof("starting follow-up task (every %s, pending longer than %s)", interval, after)
	every(ctx, clk, interval, func(ctx context.Context) {
		n, err := forms.FollowUpStale(ctx, after)
		if err != nil {
			logger.Errorf("follow-up run failed: %v", err)
			return
		}
		if n > 0 {
			logger.Infof("sent %d follow-up alerts", n)
		}
	})
}

// StartCleanupTask deletes audit logs older than retentionDays, daily.
func StartCleanupTask(ctx context.Context, clk clock.Clock, audit AuditCleaner, retentionDays int) {
	if retentionDays <= 0 {
		logger.Infof("audit log cleanup disabled")
		return
	}
	logger.Infof("starting audit log cleanup task (retention: %d days)", retentionDays)
	every(ctx, clk, 24*time.Hour, func(context.Context) {
		n, err := audit.CleanupOldLogs(retentionDays)
		if err != nil {
			logger.Errorf("failed to cleanup old audit logs: %v", err)
			return
		}
		logger.Debugf("audit log cleanup removed %d rows", n)
	})
}
