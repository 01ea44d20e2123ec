package repository

import (
	"context"
	"errors"
	"market-marts/internal/model"

	"gorm.io/gorm"
)

// SignalRepository reads the gold scanner signals.
type SignalRepository interface {
	GetAll(ctx context.Context) ([]model.Signal, error)
}

type signalRepository struct {
	db *gorm.DB
}

func NewSignalRepository(db *gorm.DB) SignalRepository {
	return &signalRepository{db: db}
}

func (r *signalRepository) GetAll(ctx context.Context) ([]model.Signal, error) {
	var signals []model.Signal
	err := r.db.WithContext(ctx).
		Order("symbol ASC, date ASC").
		Find(&signals).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return signals, nil
}
