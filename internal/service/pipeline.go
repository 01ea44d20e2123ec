package service

import (
	"context"
	"fmt"
	"market-marts/config"
	"market-marts/internal/mart"
	"market-marts/internal/model"
	"market-marts/internal/repository"
	"market-marts/internal/staging"
	"market-marts/pkg/logger"
	"market-marts/pkg/utils"
	"time"

	"golang.org/x/sync/errgroup"
)

// RunResult summarizes one pipeline run for logging and the API trigger
// response.
type RunResult struct {
	SignalsAppended int           `json:"signals_appended"`
	StocksRefreshed int           `json:"stocks_refreshed"`
	BreadthDays     int           `json:"breadth_days"`
	Duration        time.Duration `json:"duration_ms"`
}

// PipelineService runs the staging->mart refresh: sources are loaded, the
// two staging views are recomputed in memory, then the three marts are
// materialized. Re-running with unchanged sources leaves the warehouse
// unchanged: fact_signals filters on its watermark, the other two marts are
// rebuilt deterministically.
type PipelineService interface {
	Run(ctx context.Context) (*RunResult, error)
}

type pipelineService struct {
	cfg  *config.Config
	log  *logger.Logger
	repo *repository.Repository
}

func NewPipelineService(cfg *config.Config, log *logger.Logger, repo *repository.Repository) PipelineService {
	return &pipelineService{cfg: cfg, log: log, repo: repo}
}

func (s *pipelineService) Run(ctx context.Context) (*RunResult, error) {
	started := time.Now()
	s.log.InfoContext(ctx, "Starting mart refresh",
		logger.IntField("lookback_days", s.cfg.Pipeline.LookbackDays),
	)

	bars, indicatorRows, signals, fundamentals, err := s.loadSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load source tables: %w", err)
	}

	if !utils.ShouldContinue(ctx, s.log) {
		return nil, ctx.Err()
	}

	// Staging views, recomputed on every run.
	cleaned := staging.CleanOHLCV(bars)
	classified := staging.ClassifyIndicators(indicatorRows)
	s.log.InfoContext(ctx, "Staging transforms done",
		logger.IntField("ohlcv_in", len(bars)),
		logger.IntField("ohlcv_clean", len(cleaned)),
		logger.IntField("indicators_classified", len(classified)),
	)

	result := &RunResult{}

	appended, err := s.refreshFactSignals(ctx, signals, classified)
	if err != nil {
		return nil, err
	}
	result.SignalsAppended = appended

	now := time.Now()
	dims := mart.BuildDimStocks(cleaned, classified, fundamentals, now)
	if err := s.repo.DimStockRepo.ReplaceAll(ctx, dims); err != nil {
		return nil, fmt.Errorf("failed to refresh dim_stocks: %w", err)
	}
	result.StocksRefreshed = len(dims)

	breadth := mart.BuildMarketBreadth(classified, cleaned, now)
	if err := s.repo.MarketBreadthRepo.ReplaceAll(ctx, breadth); err != nil {
		return nil, fmt.Errorf("failed to refresh fact_market_breadth: %w", err)
	}
	result.BreadthDays = len(breadth)

	result.Duration = time.Since(started)
	s.log.InfoContext(ctx, "Mart refresh completed",
		logger.IntField("signals_appended", result.SignalsAppended),
		logger.IntField("stocks_refreshed", result.StocksRefreshed),
		logger.IntField("breadth_days", result.BreadthDays),
		logger.DurationField("duration", result.Duration),
	)
	return result, nil
}

// loadSources reads the four source tables concurrently. They live in
// independent zones, so there is no ordering constraint between the reads.
func (s *pipelineService) loadSources(ctx context.Context) (
	bars []model.OHLCVBar,
	indicatorRows []model.IndicatorRow,
	signals []model.Signal,
	fundamentals []model.Fundamental,
	err error,
) {
	var since *time.Time
	if s.cfg.Pipeline.LookbackDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -s.cfg.Pipeline.LookbackDays)
		since = &cutoff
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var loadErr error
		bars, loadErr = s.repo.OHLCVRepo.GetBars(gctx)
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		indicatorRows, loadErr = s.repo.IndicatorRepo.GetRows(gctx, since)
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		signals, loadErr = s.repo.SignalRepo.GetAll(gctx)
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		fundamentals, loadErr = s.repo.FundamentalRepo.GetAll(gctx)
		return loadErr
	})

	err = g.Wait()
	return
}

func (s *pipelineService) refreshFactSignals(ctx context.Context, signals []model.Signal, classified []model.ClassifiedIndicator) (int, error) {
	watermark, err := s.repo.FactSignalRepo.MaxDate(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read fact_signals watermark: %w", err)
	}
	if watermark != nil {
		s.log.DebugContext(ctx, "Incremental fact_signals run",
			logger.StringField("watermark", watermark.Format("2006-01-02")),
		)
	}

	facts := mart.BuildFactSignals(signals, classified, watermark)
	if err := s.repo.FactSignalRepo.AppendBatch(ctx, facts); err != nil {
		return 0, fmt.Errorf("failed to append fact_signals: %w", err)
	}
	return len(facts), nil
}
