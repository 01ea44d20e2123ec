package repository

import (
	"context"
	"database/sql"
	"market-marts/internal/model"
	"market-marts/pkg/logger"
	"market-marts/pkg/utils"
	"time"

	"gorm.io/gorm"
)

// FactSignalRepository owns the incremental fact_signals mart.
type FactSignalRepository interface {
	// MaxDate returns the incremental watermark: the newest persisted signal
	// date. A missing or unreadable table is not fatal, it means "no prior
	// state" and triggers a full-history backfill.
	MaxDate(ctx context.Context) (*time.Time, error)
	AppendBatch(ctx context.Context, facts []model.FactSignal) error
	List(ctx context.Context, limit, minQuality int) ([]model.FactSignal, error)
}

type factSignalRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFactSignalRepository(db *gorm.DB, log *logger.Logger) FactSignalRepository {
	return &factSignalRepository{db: db, log: log}
}

func (r *factSignalRepository) MaxDate(ctx context.Context) (*time.Time, error) {
	var maxDate sql.NullTime
	err := r.db.WithContext(ctx).
		Raw("SELECT MAX(date) FROM fact_signals").
		Scan(&maxDate).Error
	if err != nil {
		r.log.WarnContext(ctx, "Could not read fact_signals watermark, assuming no prior state",
			logger.ErrorField(err),
		)
		return nil, nil
	}
	if !maxDate.Valid {
		return nil, nil
	}
	return &maxDate.Time, nil
}

func (r *factSignalRepository) AppendBatch(ctx context.Context, facts []model.FactSignal) error {
	if len(facts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(facts, 100).Error
}

func (r *factSignalRepository) List(ctx context.Context, limit, minQuality int) ([]model.FactSignal, error) {
	opts := []utils.DBOption{}
	if minQuality > 0 {
		opts = append(opts, utils.WithWhere("quality_score >= ?", minQuality))
	}
	if limit > 0 {
		opts = append(opts, utils.WithLimit(limit))
	}

	query := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Order("date DESC, quality_score DESC, symbol ASC")

	var facts []model.FactSignal
	if err := query.Find(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}
