package model

import "time"

// DimStock is the one-row-per-symbol dimension: the latest price, indicator
// and fundamental snapshots joined on symbol. The three "latest" dates are
// picked independently, so they can differ when feeds are out of sync.
// Fully rebuilt on every run.
type DimStock struct {
	Symbol string `gorm:"column:symbol;primarykey"`

	PriceDate      time.Time `gorm:"column:price_date"`
	Close          float64   `gorm:"column:close"`
	VolumeMillions float64   `gorm:"column:volume_millions"`
	DailyReturnPct float64   `gorm:"column:daily_return_pct"`

	IndicatorDate *time.Time `gorm:"column:indicator_date"`
	SMA50         *float64   `gorm:"column:sma_50"`
	SMA200        *float64   `gorm:"column:sma_200"`
	RSI14         *float64   `gorm:"column:rsi_14"`
	RSISignal     *string    `gorm:"column:rsi_signal"`
	TrendRegime   *string    `gorm:"column:trend_regime"`

	FundamentalDate *time.Time `gorm:"column:fundamental_date"`
	MarketCap       *float64   `gorm:"column:market_cap"`
	PERatio         *float64   `gorm:"column:pe_ratio"`
	PBRatio         *float64   `gorm:"column:pb_ratio"`
	ROE             *float64   `gorm:"column:roe"`
	DebtEquity      *float64   `gorm:"column:debt_equity"`
	RevenueGrowth   *float64   `gorm:"column:revenue_growth"`
	ProfitGrowth    *float64   `gorm:"column:profit_growth"`

	PctFromSMA50           *float64 `gorm:"column:pct_from_sma_50"`
	PctFromSMA200          *float64 `gorm:"column:pct_from_sma_200"`
	StyleCategory          string   `gorm:"column:style_category;not null"`
	FundamentalHealthScore int      `gorm:"column:fundamental_health_score;not null"`

	RefreshedAt time.Time `gorm:"column:refreshed_at"`
}

func (DimStock) TableName() string {
	return "dim_stocks"
}
