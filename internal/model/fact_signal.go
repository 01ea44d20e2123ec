package model

import (
	"time"

	"gorm.io/datatypes"
)

// FactSignal is one scanner signal enriched with the indicator context at the
// signal date. Appended incrementally: only rows dated after the persisted
// watermark are inserted. Context columns stay null when the indicator row
// for (symbol, date) is missing.
type FactSignal struct {
	ID            uint           `gorm:"primarykey"`
	Symbol        string         `gorm:"column:symbol;not null"`
	Date          time.Time      `gorm:"column:date;not null"`
	Strategy      string         `gorm:"column:strategy"`
	Signal        string         `gorm:"column:signal"`
	Entry         *float64       `gorm:"column:entry"`
	Stop          *float64       `gorm:"column:stop"`
	Target        *float64       `gorm:"column:target"`
	RiskReward    *float64       `gorm:"column:risk_reward"`
	Confidence    string         `gorm:"column:confidence"`
	ScanTimestamp time.Time      `gorm:"column:scan_timestamp"`
	Details       datatypes.JSON `gorm:"column:details;type:jsonb"`

	RSI14           *float64 `gorm:"column:rsi_14"`
	RSISignal       *string  `gorm:"column:rsi_signal"`
	MACDSignalType  *string  `gorm:"column:macd_signal_type"`
	TrendRegime     *string  `gorm:"column:trend_regime"`
	MarketCondition *string  `gorm:"column:market_condition"`
	ATRPct          *float64 `gorm:"column:atr_pct"`

	PotentialReturnPct *float64 `gorm:"column:potential_return_pct"`
	RiskPct            *float64 `gorm:"column:risk_pct"`
	QualityScore       int      `gorm:"column:quality_score;not null"`

	LoadedAt time.Time `gorm:"column:loaded_at;autoCreateTime"`
}

func (FactSignal) TableName() string {
	return "fact_signals"
}
