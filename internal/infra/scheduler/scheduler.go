package scheduler

import (
	"context"
	"fmt"
	"time"

	"minibot/internal/app" // For ReportRunner interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// defaultJobTimeout bounds one run of the standard flow.
const defaultJobTimeout = 1 * time.Minute

type ReportScheduler struct {
	cronEngine *cron.Cron
	runner     app.ReportRunner
	logger     logrus.FieldLogger
	cronSpec   string
	jobTimeout time.Duration
}

func NewReportScheduler(
	runner app.ReportRunner,
	logger logrus.FieldLogger,
	cronSpec string, // e.g., "0 9 * * *" (9 AM daily)
) *ReportScheduler {
	return &ReportScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		runner:     runner,
		logger:     logger,
		cronSpec:   cronSpec,
		jobTimeout: defaultJobTimeout,
	}
}

// Start registers the report job and starts the cron engine.
func (s *ReportScheduler) Start() error {
	s.logger.WithField("cron_spec", s.cronSpec).Info("Starting report scheduler")

	if _, err := s.cronEngine.AddFunc(s.cronSpec, s.runOnce); err != nil {
		return fmt.Errorf("could not add report cron job %q: %w", s.cronSpec, err)
	}

	s.cronEngine.Start()
	s.logger.Info("Report scheduler started")
	return nil
}

func (s *ReportScheduler) runOnce() {
	s.logger.Debug("Cron job triggered for standard report")
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	if err := s.runner.RunStandard(ctx); err != nil {
		s.logger.WithError(err).Error("Report run failed")
		return
	}
	s.logger.Info("Report sent")
}

func (s *ReportScheduler) Stop() {
	s.logger.Info("Stopping report scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Report scheduler stopped")
}
