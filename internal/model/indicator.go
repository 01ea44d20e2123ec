package model

import "time"

// IndicatorRow is a silver-zone technical indicator snapshot for one symbol
// and date. Indicator columns are nullable: the upstream computation leaves
// them empty until its warm-up window is filled (e.g. sma_200 needs 200
// sessions).
type IndicatorRow struct {
	Symbol string    `gorm:"column:symbol"`
	Date   time.Time `gorm:"column:date"`
	Close  float64   `gorm:"column:close"`
	Volume int64     `gorm:"column:volume"`

	SMA20  *float64 `gorm:"column:sma_20"`
	SMA50  *float64 `gorm:"column:sma_50"`
	SMA200 *float64 `gorm:"column:sma_200"`
	EMA12  *float64 `gorm:"column:ema_12"`
	EMA26  *float64 `gorm:"column:ema_26"`

	RSI14 *float64 `gorm:"column:rsi_14"`

	MACD       *float64 `gorm:"column:macd"`
	MACDSignal *float64 `gorm:"column:macd_signal"`
	MACDHist   *float64 `gorm:"column:macd_hist"`

	BBUpper  *float64 `gorm:"column:bb_upper"`
	BBMiddle *float64 `gorm:"column:bb_middle"`
	BBLower  *float64 `gorm:"column:bb_lower"`

	ATR14 *float64 `gorm:"column:atr_14"`
	ADX14 *float64 `gorm:"column:adx_14"`

	Returns1D  *float64 `gorm:"column:returns_1d"`
	Returns5D  *float64 `gorm:"column:returns_5d"`
	Returns20D *float64 `gorm:"column:returns_20d"`
}

func (IndicatorRow) TableName() string {
	return "silver.indicators"
}

// ClassifiedIndicator is the staging view over silver indicators: every raw
// row maps to exactly one classified row, labels always populated. A null
// comparand fails its branch and the row falls through to the default label,
// mirroring null-tolerant SQL comparisons.
type ClassifiedIndicator struct {
	Symbol string
	Date   time.Time
	Close  float64
	Volume int64

	SMA20      *float64
	SMA50      *float64
	SMA200     *float64
	RSI14      *float64
	MACDHist   *float64
	ADX14      *float64
	ATR14      *float64
	Returns20D *float64

	RSISignal       string
	MACDSignalType  string
	BBPosition      string
	TrendRegime     string
	MarketCondition string
	ATRPct          *float64
}
