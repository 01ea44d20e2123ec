package model

import "time"

// OHLCVBar is a raw daily price record in the bronze zone, populated by the
// external ingestion pipeline. Read-only here.
type OHLCVBar struct {
	Symbol   string    `gorm:"column:symbol"`
	Date     time.Time `gorm:"column:date"`
	Open     float64   `gorm:"column:open"`
	High     float64   `gorm:"column:high"`
	Low      float64   `gorm:"column:low"`
	Close    float64   `gorm:"column:close"`
	Volume   int64     `gorm:"column:volume"`
	Exchange string    `gorm:"column:exchange"`
	LoadedAt time.Time `gorm:"column:loaded_at"`
}

func (OHLCVBar) TableName() string {
	return "bronze.ohlcv"
}

// CleanedOHLCV is the staging view over bronze OHLCV: rows failing the price
// sanity filter are dropped, the rest gain derived daily metrics. Recomputed
// on every pipeline run, never persisted.
type CleanedOHLCV struct {
	Symbol   string
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   int64
	Exchange string

	DailyReturnPct       float64
	DailyRangePct        float64
	VolumeMillions       float64
	ClosePositionInRange float64
	// TrueRange needs the prior session's close, so the first row of each
	// symbol has none.
	TrueRange *float64
	GapType   string
}
