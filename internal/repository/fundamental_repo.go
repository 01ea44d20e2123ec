package repository

import (
	"context"
	"errors"
	"market-marts/internal/model"

	"gorm.io/gorm"
)

// FundamentalRepository reads the bronze fundamentals zone.
type FundamentalRepository interface {
	GetAll(ctx context.Context) ([]model.Fundamental, error)
}

type fundamentalRepository struct {
	db *gorm.DB
}

func NewFundamentalRepository(db *gorm.DB) FundamentalRepository {
	return &fundamentalRepository{db: db}
}

func (r *fundamentalRepository) GetAll(ctx context.Context) ([]model.Fundamental, error) {
	var rows []model.Fundamental
	err := r.db.WithContext(ctx).
		Order("symbol ASC, date ASC").
		Find(&rows).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rows, nil
}
