package repository

import (
	"market-marts/config"
	"market-marts/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	OHLCVRepo         OHLCVRepository
	FundamentalRepo   FundamentalRepository
	IndicatorRepo     IndicatorRepository
	SignalRepo        SignalRepository
	FactSignalRepo    FactSignalRepository
	DimStockRepo      DimStockRepository
	MarketBreadthRepo MarketBreadthRepository
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	return &Repository{
		OHLCVRepo:         NewOHLCVRepository(db),
		FundamentalRepo:   NewFundamentalRepository(db),
		IndicatorRepo:     NewIndicatorRepository(db),
		SignalRepo:        NewSignalRepository(db),
		FactSignalRepo:    NewFactSignalRepository(db, log),
		DimStockRepo:      NewDimStockRepository(db),
		MarketBreadthRepo: NewMarketBreadthRepository(db),
	}, nil
}
