package jobs

import (
	"context"

	"odms-backend/internal/logger"
)

// SendDailyOdDigest emails each class faculty the students approved for
// on-duty leave today. Runs once per day on the configured schedule.
func (jr *JobRunner) SendDailyOdDigest() {
	jr.runWithRecovery("SendDailyOdDigest", func() {
		ctx := context.Background()

		report, err := jr.digest.SendDailyDigest(ctx, jr.now())
		if err != nil {
			logger.Error("Daily OD digest failed", "error", err)
			return
		}

		logger.Info("Daily OD digest finished",
			"approved_requests", report.Requests,
			"digests_sent", report.Sent,
			"digests_failed", report.Failed,
			"unmapped_participants", report.Unmapped)
	})
}
