package service

import (
	"context"
	"fmt"
	"market-marts/config"
	"market-marts/internal/model"
	"market-marts/internal/repository"
	"market-marts/pkg/cache"
	"market-marts/pkg/logger"
	"time"
)

const martReadCacheTTL = 1 * time.Minute

// MartQueryService serves the produced mart tables to API consumers, with a
// short read-through cache in front of the warehouse.
type MartQueryService interface {
	LatestSignals(ctx context.Context, limit, minQuality int) ([]model.FactSignal, error)
	Stocks(ctx context.Context, minVolumeMillions *float64) ([]model.DimStock, error)
	Breadth(ctx context.Context, days int) ([]model.MarketBreadth, error)
}

type martQueryService struct {
	cfg  *config.Config
	log  *logger.Logger
	repo *repository.Repository
}

func NewMartQueryService(cfg *config.Config, log *logger.Logger, repo *repository.Repository) MartQueryService {
	return &martQueryService{cfg: cfg, log: log, repo: repo}
}

func (s *martQueryService) LatestSignals(ctx context.Context, limit, minQuality int) ([]model.FactSignal, error) {
	key := fmt.Sprintf("mart:signals:%d:%d", limit, minQuality)
	if cached, ok := cache.GetFromCache[[]model.FactSignal](key); ok {
		return cached, nil
	}

	signals, err := s.repo.FactSignalRepo.List(ctx, limit, minQuality)
	if err != nil {
		return nil, err
	}
	cache.GetInMemoryCache().Set(key, signals, martReadCacheTTL)
	return signals, nil
}

// Stocks applies the configured liquidity floor when the caller does not
// supply one. The threshold is configured in shares and the dimension stores
// volume in millions.
func (s *martQueryService) Stocks(ctx context.Context, minVolumeMillions *float64) ([]model.DimStock, error) {
	floor := float64(s.cfg.Pipeline.MinVolumeThreshold) / 1_000_000
	if minVolumeMillions != nil {
		floor = *minVolumeMillions
	}

	key := fmt.Sprintf("mart:stocks:%.2f", floor)
	if cached, ok := cache.GetFromCache[[]model.DimStock](key); ok {
		return cached, nil
	}

	stocks, err := s.repo.DimStockRepo.List(ctx, floor)
	if err != nil {
		return nil, err
	}
	cache.GetInMemoryCache().Set(key, stocks, martReadCacheTTL)
	return stocks, nil
}

func (s *martQueryService) Breadth(ctx context.Context, days int) ([]model.MarketBreadth, error) {
	key := fmt.Sprintf("mart:breadth:%d", days)
	if cached, ok := cache.GetFromCache[[]model.MarketBreadth](key); ok {
		return cached, nil
	}

	breadth, err := s.repo.MarketBreadthRepo.List(ctx, days)
	if err != nil {
		return nil, err
	}
	cache.GetInMemoryCache().Set(key, breadth, martReadCacheTTL)
	return breadth, nil
}
