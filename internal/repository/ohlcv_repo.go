package repository

import (
	"context"
	"errors"
	"market-marts/internal/model"

	"gorm.io/gorm"
)

// OHLCVRepository reads the bronze OHLCV zone. The zone is populated by the
// external ingestion pipeline; this side never writes to it.
type OHLCVRepository interface {
	GetBars(ctx context.Context) ([]model.OHLCVBar, error)
}

type ohlcvRepository struct {
	db *gorm.DB
}

func NewOHLCVRepository(db *gorm.DB) OHLCVRepository {
	return &ohlcvRepository{db: db}
}

func (r *ohlcvRepository) GetBars(ctx context.Context) ([]model.OHLCVBar, error) {
	var bars []model.OHLCVBar
	err := r.db.WithContext(ctx).
		Order("symbol ASC, date ASC").
		Find(&bars).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return bars, nil
}
