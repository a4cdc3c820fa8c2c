// File: internal/jobs/lead_retention.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"dealership_backend/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// LeadPurger is the slice of lead.Service the retention job needs.
type LeadPurger interface {
	PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

// LeadRetentionJob periodically deletes leads older than the retention period.
type LeadRetentionJob struct {
	leads         LeadPurger
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewLeadRetentionJob creates a new LeadRetentionJob.
func NewLeadRetentionJob(leads LeadPurger, logger *zap.Logger, cfg *config.Config) *LeadRetentionJob {
	scheduler := cron.New(
		cron.WithLogger(NewCronLogger(logger.Named("cron"))),
		cron.WithChain(cron.SkipIfStillRunning(NewCronLogger(logger.Named("cron")))),
	)

	return &LeadRetentionJob{
		leads:         leads,
		logger:        logger.Named("LeadRetentionJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *LeadRetentionJob) SetupAndStart() error {
	if j.cfg.LeadRetentionDays <= 0 {
		j.logger.Info("Lead retention disabled (LEAD_RETENTION_DAYS <= 0). Job will not run.")
		return nil
	}
	jobSpec := j.cfg.LeadRetentionJobSchedule
	if jobSpec == "" {
		j.logger.Warn("Lead retention job schedule not defined (LEAD_RETENTION_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule lead retention job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Lead retention job scheduled",
		zap.String("spec", jobSpec),
		zap.Int("retention_days", j.cfg.LeadRetentionDays),
		zap.Any("jobID", jobID),
	)
	j.cronScheduler.Start()
	return nil
}

func (j *LeadRetentionJob) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	_, _ = j.RunOnce(ctx)
}

// RunOnce performs a single purge.
func (j *LeadRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	j.logger.Info("Starting lead retention run...")
	age := time.Duration(j.cfg.LeadRetentionDays) * 24 * time.Hour

	removed, err := j.leads.PurgeOlderThan(ctx, age)
	if err != nil {
		j.logger.Error("Lead retention run failed", zap.Error(err))
		return 0, err
	}
	j.logger.Info("Lead retention run completed", zap.Int64("leads_deleted", removed))
	return removed, nil
}

// Stop gracefully stops the cron scheduler.
func (j *LeadRetentionJob) Stop() {
	if j.cronScheduler == nil {
		return
	}
	j.logger.Info("Stopping lead retention job scheduler...")
	stopCtx := j.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		j.logger.Info("Lead retention job scheduler stopped gracefully.")
	case <-time.After(10 * time.Second):
		j.logger.Warn("Lead retention job scheduler stop timed out.")
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

// Info logs routine messages from cron at debug level; cron is chatty.
func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Debug(msg, toFields(keysAndValues)...)
}

// Error logs error messages from cron.
func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	cl.zl.Error(msg, append(toFields(keysAndValues), zap.Error(err))...)
}

func toFields(keysAndValues []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprintf("%v", keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(key, keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(key, "MISSING_VALUE"))
		}
	}
	return fields
}
