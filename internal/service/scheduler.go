package service

import (
	"context"
	"market-marts/config"
	"market-marts/pkg/logger"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// SchedulerService runs the pipeline at the configured cron schedule. A run
// still in flight is never overlapped; the tick is skipped instead.
type SchedulerService interface {
	Start(ctx context.Context) error
	Stop()
}

type schedulerService struct {
	cfg      *config.Config
	log      *logger.Logger
	pipeline PipelineService
	cron     *cron.Cron
	running  atomic.Bool
}

func NewSchedulerService(cfg *config.Config, log *logger.Logger, pipeline PipelineService) SchedulerService {
	return &schedulerService{
		cfg:      cfg,
		log:      log,
		pipeline: pipeline,
		cron:     cron.New(),
	}
}

func (s *schedulerService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Pipeline.Schedule, func() {
		if !s.running.CompareAndSwap(false, true) {
			s.log.Warn("Previous pipeline run still in flight, skipping tick")
			return
		}
		defer s.running.Store(false)

		runCtx, cancel := context.WithTimeout(ctx, s.cfg.Pipeline.RunTimeout)
		defer cancel()

		if _, err := s.pipeline.Run(runCtx); err != nil {
			s.log.ErrorContext(runCtx, "Scheduled pipeline run failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	s.log.Info("Starting pipeline scheduler",
		logger.StringField("schedule", s.cfg.Pipeline.Schedule),
	)
	s.cron.Start()
	return nil
}

func (s *schedulerService) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.log.Info("Pipeline scheduler stopped")
}
