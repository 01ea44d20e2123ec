package model

import "time"

// Fundamental is a bronze-zone fundamentals snapshot for one symbol and date.
// Fields are nullable since coverage varies by source.
type Fundamental struct {
	Symbol        string    `gorm:"column:symbol"`
	Date          time.Time `gorm:"column:date"`
	MarketCap     *float64  `gorm:"column:market_cap"`
	PERatio       *float64  `gorm:"column:pe_ratio"`
	PBRatio       *float64  `gorm:"column:pb_ratio"`
	ROE           *float64  `gorm:"column:roe"`
	DebtEquity    *float64  `gorm:"column:debt_equity"`
	RevenueGrowth *float64  `gorm:"column:revenue_growth"`
	ProfitGrowth  *float64  `gorm:"column:profit_growth"`
	Source        string    `gorm:"column:source"`
}

func (Fundamental) TableName() string {
	return "bronze.fundamentals"
}
