package model

import (
	"time"

	"gorm.io/datatypes"
)

// Signal is a scanner signal in the gold zone, produced by the external
// strategy scanner. Read-only input to the fact_signals mart.
type Signal struct {
	Symbol        string    `gorm:"column:symbol"`
	Date          time.Time `gorm:"column:date"`
	Strategy      string    `gorm:"column:strategy"`
	Signal        string    `gorm:"column:signal"`
	Entry         *float64  `gorm:"column:entry"`
	Stop          *float64  `gorm:"column:stop"`
	Target        *float64  `gorm:"column:target"`
	RiskReward    *float64  `gorm:"column:risk_reward"`
	Confidence    string    `gorm:"column:confidence"`
	ScanTimestamp time.Time `gorm:"column:scan_timestamp"`
	// Raw scanner payload, kept as-is for downstream consumers.
	Details datatypes.JSON `gorm:"column:details;type:jsonb"`
}

func (Signal) TableName() string {
	return "gold.signals"
}
