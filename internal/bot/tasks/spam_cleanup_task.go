package tasks

import (
	"context"
	"fmt"
)

// newSpamReportCleanupTask deletes spam reports older than the configured retention.
func newSpamReportCleanupTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "spam_report_cleanup")

	return func(ctx context.Context) error {
		cutoff := deps.now().Add(-deps.Config.Moderation.Spam.ReportRetention)

		deleted, err := deps.Store.DeleteSpamReportsBefore(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("spam report cleanup failed: %w", err)
		}

		log.InfoContext(ctx, "Old spam reports removed", "deleted", deleted, "cutoff", cutoff)
		return nil
	}
}
