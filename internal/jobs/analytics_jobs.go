package jobs

import (
	"context"
	"time"

	"joke-api/internal/domain"
	"joke-api/internal/logger"
)

// RollupAnalytics aggregates the last hour of access logs into one analytics
// row per endpoint. The reporting endpoints only ever read these rows, so a
// missed run means stale reports, not wrong ones.
func (jr *JobRunner) RollupAnalytics() {
	jr.runWithRecovery("RollupAnalytics", func() {
		ctx := context.Background()
		since := time.Now().Add(-time.Hour)

		usage, err := jr.accessLogs.EndpointUsageSince(ctx, since)
		if err != nil {
			logger.Error("Failed to aggregate access logs", "error", err)
			return
		}

		for _, u := range usage {
			lastAccess := u.LastAccess
			rec := &domain.AnalyticsRecord{
				Endpoint:     u.Endpoint,
				RequestCount: int32(u.Count),
				LastAccess:   &lastAccess,
			}
			if err := jr.analytics.Create(ctx, rec); err != nil {
				logger.Error("Failed to write analytics record", "endpoint", u.Endpoint, "error", err)
			}
		}

		logger.Info("Analytics rollup finished", "endpoints", len(usage))
	})
}

// PruneAccessLogs deletes access log rows older than the retention horizon.
func (jr *JobRunner) PruneAccessLogs() {
	jr.runWithRecovery("PruneAccessLogs", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.config.Scheduler.AccessLogRetentionDays)

		deleted, err := jr.accessLogs.DeleteBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to prune access logs", "error", err)
			return
		}

		logger.Info("Access log pruning finished", "deleted", deleted, "cutoff", cutoff)
	})
}
