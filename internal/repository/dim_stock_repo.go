package repository

import (
	"context"
	"market-marts/internal/model"

	"gorm.io/gorm"
)

// DimStockRepository owns the full-refresh dim_stocks mart.
type DimStockRepository interface {
	// ReplaceAll swaps the whole dimension in one transaction so readers
	// never observe a half-built table.
	ReplaceAll(ctx context.Context, stocks []model.DimStock) error
	List(ctx context.Context, minVolumeMillions float64) ([]model.DimStock, error)
}

type dimStockRepository struct {
	db *gorm.DB
}

func NewDimStockRepository(db *gorm.DB) DimStockRepository {
	return &dimStockRepository{db: db}
}

func (r *dimStockRepository) ReplaceAll(ctx context.Context, stocks []model.DimStock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM dim_stocks").Error; err != nil {
			return err
		}
		if len(stocks) == 0 {
			return nil
		}
		return tx.CreateInBatches(stocks, 100).Error
	})
}

func (r *dimStockRepository) List(ctx context.Context, minVolumeMillions float64) ([]model.DimStock, error) {
	query := r.db.WithContext(ctx).
		Order("fundamental_health_score DESC").
		Order("market_cap DESC NULLS LAST").
		Order("symbol ASC")
	if minVolumeMillions > 0 {
		query = query.Where("volume_millions >= ?", minVolumeMillions)
	}

	var stocks []model.DimStock
	if err := query.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}
