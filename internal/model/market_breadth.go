package model

import "time"

// MarketBreadth is one row per date: cross-sectional counts, percentages and
// averages over every symbol's classified indicators that day. Fully rebuilt
// on every run.
type MarketBreadth struct {
	Date time.Time `gorm:"column:date;primarykey"`

	TotalStocks int `gorm:"column:total_stocks;not null"`

	StrongUptrendCount   int `gorm:"column:strong_uptrend_count;not null"`
	UptrendCount         int `gorm:"column:uptrend_count;not null"`
	SidewaysCount        int `gorm:"column:sideways_count;not null"`
	DowntrendCount       int `gorm:"column:downtrend_count;not null"`
	StrongDowntrendCount int `gorm:"column:strong_downtrend_count;not null"`

	OverboughtCount       int `gorm:"column:overbought_count;not null"`
	OversoldCount         int `gorm:"column:oversold_count;not null"`
	BullishCrossoverCount int `gorm:"column:bullish_crossover_count;not null"`
	BearishCrossoverCount int `gorm:"column:bearish_crossover_count;not null"`

	PctInUptrend   float64 `gorm:"column:pct_in_uptrend"`
	PctInDowntrend float64 `gorm:"column:pct_in_downtrend"`
	PctOverbought  float64 `gorm:"column:pct_overbought"`
	PctOversold    float64 `gorm:"column:pct_oversold"`

	// Averages skip null inputs the way SQL AVG does; they stay null when no
	// row that day carried the metric.
	AvgRSI14          *float64 `gorm:"column:avg_rsi_14"`
	AvgADX14          *float64 `gorm:"column:avg_adx_14"`
	AvgReturns20D     *float64 `gorm:"column:avg_returns_20d"`
	AvgDailyReturnPct *float64 `gorm:"column:avg_daily_return_pct"`

	TotalVolumeMillions float64 `gorm:"column:total_volume_millions"`

	MarketHealthScore float64 `gorm:"column:market_health_score;not null"`
	MarketPhase       string  `gorm:"column:market_phase;not null"`

	RefreshedAt time.Time `gorm:"column:refreshed_at"`
}

func (MarketBreadth) TableName() string {
	return "fact_market_breadth"
}
