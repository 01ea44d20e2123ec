package service

import (
	"market-marts/config"
	"market-marts/internal/repository"
	"market-marts/pkg/logger"
)

type Service struct {
	PipelineService  PipelineService
	SchedulerService SchedulerService
	MartQueryService MartQueryService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
) *Service {
	pipelineService := NewPipelineService(cfg, log, repo)
	schedulerService := NewSchedulerService(cfg, log, pipelineService)
	martQueryService := NewMartQueryService(cfg, log, repo)

	return &Service{
		PipelineService:  pipelineService,
		SchedulerService: schedulerService,
		MartQueryService: martQueryService,
	}
}
