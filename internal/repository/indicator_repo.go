package repository

import (
	"context"
	"errors"
	"market-marts/internal/model"
	"time"

	"gorm.io/gorm"
)

// IndicatorRepository reads the silver indicators zone. since bounds the read
// window; the pipeline derives it from the configured lookback_days.
type IndicatorRepository interface {
	GetRows(ctx context.Context, since *time.Time) ([]model.IndicatorRow, error)
}

type indicatorRepository struct {
	db *gorm.DB
}

func NewIndicatorRepository(db *gorm.DB) IndicatorRepository {
	return &indicatorRepository{db: db}
}

func (r *indicatorRepository) GetRows(ctx context.Context, since *time.Time) ([]model.IndicatorRow, error) {
	query := r.db.WithContext(ctx).Order("symbol ASC, date ASC")
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	var rows []model.IndicatorRow
	if err := query.Find(&rows).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rows, nil
}
