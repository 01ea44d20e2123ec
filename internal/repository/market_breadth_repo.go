package repository

import (
	"context"
	"market-marts/internal/model"

	"gorm.io/gorm"
)

// MarketBreadthRepository owns the full-refresh fact_market_breadth mart.
type MarketBreadthRepository interface {
	ReplaceAll(ctx context.Context, breadth []model.MarketBreadth) error
	List(ctx context.Context, days int) ([]model.MarketBreadth, error)
}

type marketBreadthRepository struct {
	db *gorm.DB
}

func NewMarketBreadthRepository(db *gorm.DB) MarketBreadthRepository {
	return &marketBreadthRepository{db: db}
}

func (r *marketBreadthRepository) ReplaceAll(ctx context.Context, breadth []model.MarketBreadth) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM fact_market_breadth").Error; err != nil {
			return err
		}
		if len(breadth) == 0 {
			return nil
		}
		return tx.CreateInBatches(breadth, 100).Error
	})
}

func (r *marketBreadthRepository) List(ctx context.Context, days int) ([]model.MarketBreadth, error) {
	query := r.db.WithContext(ctx).Order("date DESC")
	if days > 0 {
		query = query.Limit(days)
	}

	var breadth []model.MarketBreadth
	if err := query.Find(&breadth).Error; err != nil {
		return nil, err
	}
	return breadth, nil
}
