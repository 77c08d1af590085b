// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The single job here, TotalsReconciliationJob, periodically finds orders
// whose stored total_amount or items_count no longer matches their line items
// and repairs them through the standard recalculation path. On a healthy
// database every sweep is a no-op; repairs indicate writes that bypassed the
// application.
//
// Usage:
//
//	job := jobs.NewTotalsReconciliationJob(handler, "0 */5 * * * *", logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start job:", err)
//	}
//	defer job.Stop()
//
// The schedule uses six-field cron expressions (with a seconds field).
package jobs
